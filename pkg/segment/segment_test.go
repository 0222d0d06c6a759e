package segment

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
)

func payloadOf(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i * 7)
	}
	return p
}

func TestSplit_FileResource(t *testing.T) {
	payload := payloadOf(25000)
	header := &cd.FileHeader{FileExtLen: 8, Name: []byte("data.bin")}

	records, err := Split(File, header, payload)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Same(t, header, records[0])
	assert.Equal(t, uint32(25000), header.FileDataSize)
	assert.Equal(t, uint32(3), header.SegCount)

	var sizes []int
	for _, r := range records[1:] {
		seg, ok := r.(*cd.FileSegment)
		require.True(t, ok)
		sizes = append(sizes, int(seg.DataSize))
	}
	assert.Equal(t, []int{10240, 10240, 4520}, sizes)

	resources, err := Extract(records)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, payload, resources[0].Data)
	assert.Equal(t, "file", resources[0].Kind)
	assert.Equal(t, "data.bin", resources[0].Name())
	assert.Equal(t, 3, resources[0].Segments)
}

func TestSplit_OddFinalSegmentSurvivesEncoding(t *testing.T) {
	payload := payloadOf(1001)

	records, err := Split(Image.WithCapacity(400), &cd.ImageHeader{ImageType: cd.ImagePNG}, payload)
	require.NoError(t, err)
	require.Len(t, records, 4)

	last := records[3].(*cd.ImageSegment)
	assert.Equal(t, uint16(201), last.DataSize)
	assert.Equal(t, uint16(202), last.SegSize)

	buf, err := codec.Stream(records).Encode()
	require.NoError(t, err)
	decoded, err := codec.DecodeAll(buf, cd.KindComposite)
	require.NoError(t, err)

	resources, err := Extract(decoded, Image)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, payload, resources[0].Data)
	assert.Equal(t, "", resources[0].Name())
}

func TestSplit_Blob(t *testing.T) {
	payload := []byte("@Command([FileSave])")
	event := &cd.Event{ActionType: cd.ActionTypeFormula}

	records, err := Split(Blob.WithCapacity(8), event, payload)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, uint32(len(payload)), event.ActionLength)

	for _, r := range records[1:] {
		part := r.(*cd.BlobPart)
		assert.Equal(t, cd.SigEvent.Constant(), part.OwnerSig)
		assert.Equal(t, uint16(8), part.BlobMax)
	}

	resources, err := Extract(records, Blob)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, payload, resources[0].Data)
}

func TestSplit_EmptyPayload(t *testing.T) {
	header := &cd.FileHeader{}
	records, err := Split(File, header, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, uint32(0), header.SegCount)

	resources, err := Extract(records)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Empty(t, resources[0].Data)
}

func TestSplit_Errors(t *testing.T) {
	_, err := Split(File, &cd.ImageHeader{}, []byte("x"))
	assert.ErrorIs(t, err, cd.ErrUsage)

	_, err = Split(File.WithCapacity(0), &cd.FileHeader{}, []byte("x"))
	assert.ErrorIs(t, err, cd.ErrUsage)

	_, err = Split(Blob.WithCapacity(70000), &cd.Event{}, []byte("x"))
	assert.ErrorIs(t, err, cd.ErrUsage)

	_, err = Split(Kind{Name: "custom", Capacity: 10}, &cd.FileHeader{}, []byte("x"))
	assert.ErrorIs(t, err, cd.ErrUsage)
}

func TestSegmentCount(t *testing.T) {
	assert.Equal(t, 0, File.SegmentCount(0))
	assert.Equal(t, 1, File.SegmentCount(1))
	assert.Equal(t, 1, File.SegmentCount(DefaultCapacity))
	assert.Equal(t, 2, File.SegmentCount(DefaultCapacity+1))
	assert.Equal(t, 3, File.SegmentCount(25000))
}

func TestAssembler_Overflow(t *testing.T) {
	header := &cd.FileHeader{FileDataSize: 5}
	a, err := NewAssembler(File, header)
	require.NoError(t, err)

	seg := &cd.FileSegment{}
	seg.SetPayload([]byte("abc"))
	complete, err := a.Add(seg)
	require.NoError(t, err)
	assert.False(t, complete)

	_, err = a.Add(seg)
	require.ErrorIs(t, err, cd.ErrResourceSizeMismatch)

	var resErr *cd.ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, int64(5), resErr.Declared)
	assert.Equal(t, int64(6), resErr.Actual)
}

func TestAssembler_Short(t *testing.T) {
	a, err := NewAssembler(Image, &cd.ImageHeader{ImageDataSize: 10})
	require.NoError(t, err)

	seg := &cd.ImageSegment{}
	seg.SetPayload([]byte("1234"))
	complete, err := a.Add(seg)
	require.NoError(t, err)
	assert.False(t, complete)

	_, err = a.Bytes()
	assert.ErrorIs(t, err, cd.ErrResourceSizeMismatch)
}

func TestAssembler_WrongSegmentKind(t *testing.T) {
	a, err := NewAssembler(File, &cd.FileHeader{FileDataSize: 4})
	require.NoError(t, err)

	_, err = a.Add(&cd.ImageSegment{})
	assert.ErrorIs(t, err, cd.ErrUsage)

	_, err = NewAssembler(File, &cd.Event{})
	assert.ErrorIs(t, err, cd.ErrUsage)
}

func TestExtract_NonMatchingRecordEndsResource(t *testing.T) {
	first, err := Split(File.WithCapacity(4), &cd.FileHeader{}, []byte("abcdefgh"))
	require.NoError(t, err)
	second, err := Split(Image.WithCapacity(4), &cd.ImageHeader{}, []byte("ijk"))
	require.NoError(t, err)

	var records []cd.Record
	records = append(records, &cd.Paragraph{})
	records = append(records, first...)
	records = append(records, &cd.Text{Text: []byte("between")})
	records = append(records, second...)
	// an orphan segment is not a resource
	orphan := &cd.FileSegment{}
	orphan.SetPayload([]byte("zz"))
	records = append(records, &cd.Paragraph{}, orphan)

	resources, err := Extract(records)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	assert.Equal(t, 1, resources[0].Index)
	assert.Equal(t, []byte("abcdefgh"), resources[0].Data)
	assert.Equal(t, "image", resources[1].Kind)
	assert.Equal(t, []byte("ijk"), resources[1].Data)
}

func TestExtract_TruncatedResource(t *testing.T) {
	records, err := Split(File.WithCapacity(4), &cd.FileHeader{}, []byte("abcdefgh"))
	require.NoError(t, err)

	// drop the last segment
	records = append(records[:2], &cd.Paragraph{})

	_, err = Extract(records)
	assert.ErrorIs(t, err, cd.ErrResourceSizeMismatch)
}

func TestExtract_OnlyRequestedKinds(t *testing.T) {
	records, err := Split(File, &cd.FileHeader{}, bytes.Repeat([]byte("x"), 10))
	require.NoError(t, err)

	resources, err := Extract(records, Image, Blob)
	require.NoError(t, err)
	assert.Empty(t, resources)
}
