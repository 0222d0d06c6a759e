package cd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_BodySizeMatchesFixedSize(t *testing.T) {
	records := []Record{
		&Paragraph{}, &PabReference{}, &Text{}, &TableBegin{}, &TableCell{},
		&TableEnd{}, &PreTableBegin{}, &BeginRecord{}, &EndRecord{},
		&FileHeader{}, &FileSegment{}, &ImageHeader{}, &ImageSegment{},
		&Event{}, &BlobPart{}, &Graphic{}, &Caption{}, &HotspotBegin{},
		&HotspotEnd{},
	}

	for _, r := range records {
		t.Run(r.Signature().String(), func(t *testing.T) {
			body := r.MarshalBody(nil)
			assert.Len(t, body, r.FixedSize(), "zero record marshals to its fixed part")
			assert.NoError(t, r.UnmarshalBody(body))
		})
	}
}

func TestRecords_ShortBodyIsMalformed(t *testing.T) {
	for _, r := range []Record{&TableCell{}, &Event{}, &FileHeader{}, NewGeneric(SigDocument, 22)} {
		err := r.UnmarshalBody(make([]byte, r.FixedSize()-1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRecord), "got %v", err)
	}
}

func TestTableCell_RoundTrip(t *testing.T) {
	in := &TableCell{
		Row: 3, Column: 7, LeftMargin: 10, RightMargin: 20, FractionalWidth: 0x1234,
		Border: [4]uint8{1, 2, 3, 4}, Flags: 0x8001, V42Border: 9,
		RowSpan: 2, ColumnSpan: 1, BackgroundColor: 0xBEEF,
	}
	var out TableCell
	require.NoError(t, out.UnmarshalBody(in.MarshalBody(nil)))
	assert.Equal(t, *in, out)
}

func TestText_TailIsCopied(t *testing.T) {
	in := &Text{FontID: 0x00010203, Text: []byte("hello")}
	body := in.MarshalBody(nil)

	var out Text
	require.NoError(t, out.UnmarshalBody(body))
	body[4] = 'J'

	assert.Equal(t, "hello", string(out.Text))
	assert.Equal(t, uint32(0x00010203), out.FontID)
}

func TestGeneric_SplitsAtFixedSize(t *testing.T) {
	g := NewGeneric(SigDocument, 4)
	require.NoError(t, g.UnmarshalBody([]byte{1, 2, 3, 4, 5, 6}))

	assert.Equal(t, []byte{1, 2, 3, 4}, g.Fixed)
	assert.Equal(t, []byte{5, 6}, g.Tail)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, g.MarshalBody(nil))

	require.NoError(t, g.UnmarshalBody([]byte{9, 9, 9, 9}))
	assert.Nil(t, g.Tail)
}

func TestUnknown_KeepsBodyVerbatim(t *testing.T) {
	u := &Unknown{Sig: MakeSignature(0x7F, ClassWord)}
	require.NoError(t, u.UnmarshalBody([]byte{0xDE, 0xAD}))
	assert.Equal(t, []byte{0xDE, 0xAD}, u.MarshalBody(nil))
	assert.Equal(t, 0, u.FixedSize())
}

func TestSegments_PayloadPadding(t *testing.T) {
	var fs FileSegment
	fs.SetPayload([]byte{1, 2, 3})
	assert.Equal(t, uint16(3), fs.DataSize)
	assert.Equal(t, uint16(4), fs.SegSize)
	assert.Equal(t, []byte{1, 2, 3, 0}, fs.Data)
	assert.Equal(t, []byte{1, 2, 3}, fs.Payload())

	var is ImageSegment
	is.SetPayload([]byte{1, 2})
	assert.Equal(t, uint16(2), is.SegSize)
	assert.Equal(t, []byte{1, 2}, is.Payload())

	var bp BlobPart
	bp.SetPayload([]byte{1, 2, 3})
	assert.Equal(t, uint16(3), bp.Length)
	assert.Equal(t, []byte{1, 2, 3}, bp.Data)
}

func TestResourceHeaders(t *testing.T) {
	var h ResourceHeader = &FileHeader{}
	h.SetResourceLayout(25000, 3)
	assert.Equal(t, int64(25000), h.ResourceSize())
	assert.Equal(t, uint32(3), h.(*FileHeader).SegCount)

	h = &Event{}
	h.SetResourceLayout(42, 1)
	assert.Equal(t, int64(42), h.ResourceSize())
}

func TestFileHeader_FileName(t *testing.T) {
	h := &FileHeader{FileExtLen: 8, Name: []byte("logo.png\x00\x00")}
	assert.Equal(t, "logo.png", h.FileName())

	h.FileExtLen = 40
	assert.Equal(t, "logo.png\x00\x00", h.FileName())
}

func TestBeginRecord_Encloses(t *testing.T) {
	b := NewBeginRecord(SigPreTableBegin)
	assert.Equal(t, uint16(0xFFFB), b.Enclosed)
	assert.True(t, b.Encloses(SigPreTableBegin))
	assert.False(t, b.Encloses(SigTableBegin))

	e := NewEndRecord(SigPreTableBegin)
	assert.True(t, e.Encloses(SigPreTableBegin))
}

func TestErrors_Unwrap(t *testing.T) {
	var err error = &RecordError{Op: "decode", Offset: 12, Signature: SigText, Length: 99, Err: ErrTruncatedRecord}
	assert.True(t, errors.Is(err, ErrTruncatedRecord))
	assert.Contains(t, err.Error(), "offset 12")

	err = &TableError{TableIndex: 1, Depth: 2, Err: ErrUnbalancedTable}
	assert.True(t, errors.Is(err, ErrUnbalancedTable))

	err = &ResourceError{Kind: "file", Declared: 10, Actual: 9, Err: ErrResourceSizeMismatch}
	assert.True(t, errors.Is(err, ErrResourceSizeMismatch))

	err = UsageError("append after %s", "finalize")
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Contains(t, err.Error(), "append after finalize")
}
