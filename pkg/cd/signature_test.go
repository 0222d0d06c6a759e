package cd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_Components(t *testing.T) {
	tests := []struct {
		name     string
		sig      Signature
		family   byte
		class    LengthClass
		constant uint16
		str      string
	}{
		{"byte paragraph", SigParagraph, 129, ClassByte, 129, "129|BYTE"},
		{"word text", SigText, 133, ClassWord, 0xFF85, "133|WORD"},
		{"long file header", SigFileHeader, 97, ClassLong, 97, "97|LONG"},
		{"word pre-table", SigPreTableBegin, 251, ClassWord, 0xFFFB, "251|WORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.family, tt.sig.Family())
			assert.Equal(t, tt.class, tt.sig.Class())
			assert.Equal(t, tt.constant, tt.sig.Constant())
			assert.Equal(t, tt.str, tt.sig.String())
			assert.Equal(t, tt.sig, MakeSignature(tt.family, tt.class))
		})
	}
}

func TestSignature_SameFamilyDifferentClass(t *testing.T) {
	b := MakeSignature(6, ClassByte)
	w := MakeSignature(6, ClassWord)

	assert.NotEqual(t, b, w)
	assert.Equal(t, b.Family(), w.Family())
	assert.Equal(t, SigLargeParagraph, w)
}

func TestLengthClass(t *testing.T) {
	assert.Equal(t, 2, ClassByte.HeaderSize())
	assert.Equal(t, 4, ClassWord.HeaderSize())
	assert.Equal(t, 6, ClassLong.HeaderSize())
	assert.Equal(t, 0, LengthClass(0).HeaderSize())

	assert.Equal(t, int64(254), ClassByte.MaxLength())
	assert.Equal(t, int64(65535), ClassWord.MaxLength())
	assert.Equal(t, int64(4294967295), ClassLong.MaxLength())

	assert.False(t, LengthClass(0).Valid())
	assert.False(t, LengthClass(4).Valid())
	assert.Equal(t, "LengthClass(9)", LengthClass(9).String())
}

func TestItemKind(t *testing.T) {
	for _, tc := range []struct {
		typ  uint16
		kind ItemKind
		name string
	}{
		{TypeComposite, KindComposite, "composite"},
		{TypeAction, KindAction, "action"},
		{TypeQuery, KindQuery, "query"},
		{TypeViewmapLayout, KindViewmapLayout, "viewmap"},
		{TypeViewmapDataset, KindViewmapDataset, "viewmap-dataset"},
	} {
		k, err := ItemKindFromType(tc.typ)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, k)
		assert.Equal(t, tc.name, k.String())

		parsed, err := ParseItemKind(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, parsed)
	}

	_, err := ItemKindFromType(2)
	assert.Error(t, err)

	k, err := ParseItemKind("")
	require.NoError(t, err)
	assert.Equal(t, KindComposite, k)

	_, err = ParseItemKind("spreadsheet")
	assert.Error(t, err)
}
