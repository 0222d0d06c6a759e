package cd

import "encoding/binary"

var le = binary.LittleEndian

// Paragraph starts a new paragraph.
type Paragraph struct{}

func (*Paragraph) Signature() Signature            { return SigParagraph }
func (*Paragraph) FixedSize() int                  { return 0 }
func (*Paragraph) MarshalBody(dst []byte) []byte   { return dst }
func (*Paragraph) UnmarshalBody(body []byte) error { return nil }

// PabReference selects a paragraph attribute block for the following text.
type PabReference struct {
	PabID uint16
}

func (*PabReference) Signature() Signature { return SigPabReference }
func (*PabReference) FixedSize() int       { return 2 }

func (r *PabReference) MarshalBody(dst []byte) []byte {
	return le.AppendUint16(dst, r.PabID)
}

func (r *PabReference) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	r.PabID = le.Uint16(body)
	return nil
}

// Text is a run of LMBCS text in a single font.
type Text struct {
	FontID uint32
	Text   []byte
}

func (*Text) Signature() Signature { return SigText }
func (*Text) FixedSize() int       { return 4 }

func (r *Text) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint32(dst, r.FontID)
	return append(dst, r.Text...)
}

func (r *Text) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.FontID = f.u32()
	r.Text = f.rest()
	return nil
}

// TableBegin opens a table.
type TableBegin struct {
	LeftMargin            uint16
	HorizInterCellSpace   uint16
	VertInterCellSpace    uint16
	V4HorizInterCellSpace uint16
	V4VertInterCellSpace  uint16
	Flags                 uint16
}

func (*TableBegin) Signature() Signature { return SigTableBegin }
func (*TableBegin) FixedSize() int       { return 12 }

func (r *TableBegin) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.LeftMargin)
	dst = le.AppendUint16(dst, r.HorizInterCellSpace)
	dst = le.AppendUint16(dst, r.VertInterCellSpace)
	dst = le.AppendUint16(dst, r.V4HorizInterCellSpace)
	dst = le.AppendUint16(dst, r.V4VertInterCellSpace)
	return le.AppendUint16(dst, r.Flags)
}

func (r *TableBegin) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.LeftMargin = f.u16()
	r.HorizInterCellSpace = f.u16()
	r.VertInterCellSpace = f.u16()
	r.V4HorizInterCellSpace = f.u16()
	r.V4VertInterCellSpace = f.u16()
	r.Flags = f.u16()
	return nil
}

// TableCell marks the start of a cell. Row and Column are zero based.
type TableCell struct {
	Row             uint8
	Column          uint8
	LeftMargin      uint16
	RightMargin     uint16
	FractionalWidth uint16
	Border          [4]uint8
	Flags           uint16
	V42Border       uint16
	RowSpan         uint8
	ColumnSpan      uint8
	BackgroundColor uint16
}

func (*TableCell) Signature() Signature { return SigTableCell }
func (*TableCell) FixedSize() int       { return 20 }

func (r *TableCell) MarshalBody(dst []byte) []byte {
	dst = append(dst, r.Row, r.Column)
	dst = le.AppendUint16(dst, r.LeftMargin)
	dst = le.AppendUint16(dst, r.RightMargin)
	dst = le.AppendUint16(dst, r.FractionalWidth)
	dst = append(dst, r.Border[:]...)
	dst = le.AppendUint16(dst, r.Flags)
	dst = le.AppendUint16(dst, r.V42Border)
	dst = append(dst, r.RowSpan, r.ColumnSpan)
	return le.AppendUint16(dst, r.BackgroundColor)
}

func (r *TableCell) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.Row = f.u8()
	r.Column = f.u8()
	r.LeftMargin = f.u16()
	r.RightMargin = f.u16()
	r.FractionalWidth = f.u16()
	f.read(r.Border[:])
	r.Flags = f.u16()
	r.V42Border = f.u16()
	r.RowSpan = f.u8()
	r.ColumnSpan = f.u8()
	r.BackgroundColor = f.u16()
	return nil
}

// TableEnd closes a table.
type TableEnd struct {
	Spare uint32
}

func (*TableEnd) Signature() Signature { return SigTableEnd }
func (*TableEnd) FixedSize() int       { return 4 }

func (r *TableEnd) MarshalBody(dst []byte) []byte {
	return le.AppendUint32(dst, r.Spare)
}

func (r *TableEnd) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	r.Spare = le.Uint32(body)
	return nil
}

// PreTableBegin carries R5+ table metadata ahead of the TableBegin.
type PreTableBegin struct {
	Flags             uint16
	Rows              uint8
	Columns           uint8
	ColumnSizingBits1 uint32
	ColumnSizingBits2 uint32
	Tail              []byte
}

func (*PreTableBegin) Signature() Signature { return SigPreTableBegin }
func (*PreTableBegin) FixedSize() int       { return 12 }

func (r *PreTableBegin) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.Flags)
	dst = append(dst, r.Rows, r.Columns)
	dst = le.AppendUint32(dst, r.ColumnSizingBits1)
	dst = le.AppendUint32(dst, r.ColumnSizingBits2)
	return append(dst, r.Tail...)
}

func (r *PreTableBegin) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.Flags = f.u16()
	r.Rows = f.u8()
	r.Columns = f.u8()
	r.ColumnSizingBits1 = f.u32()
	r.ColumnSizingBits2 = f.u32()
	r.Tail = f.rest()
	return nil
}

// BeginRecord opens a block of records belonging to the enclosed signature.
type BeginRecord struct {
	Version  uint16
	Enclosed uint16 // signature in Constant form
}

// NewBeginRecord returns a BeginRecord enclosing sig.
func NewBeginRecord(sig Signature) *BeginRecord {
	return &BeginRecord{Enclosed: sig.Constant()}
}

func (*BeginRecord) Signature() Signature { return SigBegin }
func (*BeginRecord) FixedSize() int       { return 4 }

// Encloses reports whether the block belongs to sig.
func (r *BeginRecord) Encloses(sig Signature) bool { return r.Enclosed == sig.Constant() }

func (r *BeginRecord) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.Version)
	return le.AppendUint16(dst, r.Enclosed)
}

func (r *BeginRecord) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	r.Version = le.Uint16(body)
	r.Enclosed = le.Uint16(body[2:])
	return nil
}

// EndRecord closes a block opened by a BeginRecord.
type EndRecord struct {
	Version  uint16
	Enclosed uint16
}

// NewEndRecord returns an EndRecord closing a block of sig.
func NewEndRecord(sig Signature) *EndRecord {
	return &EndRecord{Enclosed: sig.Constant()}
}

func (*EndRecord) Signature() Signature { return SigEnd }
func (*EndRecord) FixedSize() int       { return 4 }

// Encloses reports whether the block belongs to sig.
func (r *EndRecord) Encloses(sig Signature) bool { return r.Enclosed == sig.Constant() }

func (r *EndRecord) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.Version)
	return le.AppendUint16(dst, r.Enclosed)
}

func (r *EndRecord) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	r.Version = le.Uint16(body)
	r.Enclosed = le.Uint16(body[2:])
	return nil
}

// FileHeader announces a file resource. Name holds FileExtLen bytes of
// file name.
type FileHeader struct {
	FileExtLen   uint16
	FileDataSize uint32
	SegCount     uint32
	Flags        uint32
	Reserved     uint32
	Name         []byte
}

func (*FileHeader) Signature() Signature { return SigFileHeader }
func (*FileHeader) FixedSize() int       { return 18 }

func (r *FileHeader) ResourceSize() int64 { return int64(r.FileDataSize) }

func (r *FileHeader) SetResourceLayout(size int64, segments int) {
	r.FileDataSize = uint32(size)
	r.SegCount = uint32(segments)
}

func (r *FileHeader) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.FileExtLen)
	dst = le.AppendUint32(dst, r.FileDataSize)
	dst = le.AppendUint32(dst, r.SegCount)
	dst = le.AppendUint32(dst, r.Flags)
	dst = le.AppendUint32(dst, r.Reserved)
	return append(dst, r.Name...)
}

func (r *FileHeader) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.FileExtLen = f.u16()
	r.FileDataSize = f.u32()
	r.SegCount = f.u32()
	r.Flags = f.u32()
	r.Reserved = f.u32()
	r.Name = f.rest()
	return nil
}

// FileName returns the declared file name.
func (r *FileHeader) FileName() string {
	n := int(r.FileExtLen)
	if n > len(r.Name) {
		n = len(r.Name)
	}
	return string(r.Name[:n])
}

// FileSegment carries one chunk of a file resource. Data is SegSize bytes,
// the first DataSize of which are payload.
type FileSegment struct {
	DataSize uint16
	SegSize  uint16
	Flags    uint32
	Reserved uint32
	Data     []byte
}

func (*FileSegment) Signature() Signature { return SigFileSegment }
func (*FileSegment) FixedSize() int       { return 12 }

func (r *FileSegment) Payload() []byte { return payload(r.Data, r.DataSize) }

func (r *FileSegment) SetPayload(p []byte) {
	r.DataSize, r.SegSize, r.Data = padded(p)
}

func (r *FileSegment) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.DataSize)
	dst = le.AppendUint16(dst, r.SegSize)
	dst = le.AppendUint32(dst, r.Flags)
	dst = le.AppendUint32(dst, r.Reserved)
	return append(dst, r.Data...)
}

func (r *FileSegment) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.DataSize = f.u16()
	r.SegSize = f.u16()
	r.Flags = f.u32()
	r.Reserved = f.u32()
	r.Data = f.rest()
	return nil
}

// ImageHeader announces an image resource.
type ImageHeader struct {
	ImageType     uint16
	Width         uint16
	Height        uint16
	ImageDataSize uint32
	SegCount      uint32
	Flags         uint32
	Reserved      uint32
}

// Image types.
const (
	ImageGIF  uint16 = 1
	ImageJPEG uint16 = 2
	ImageBMP  uint16 = 3
	ImagePNG  uint16 = 4
	ImageSVG  uint16 = 5
)

func (*ImageHeader) Signature() Signature { return SigImageHeader }
func (*ImageHeader) FixedSize() int       { return 22 }

func (r *ImageHeader) ResourceSize() int64 { return int64(r.ImageDataSize) }

func (r *ImageHeader) SetResourceLayout(size int64, segments int) {
	r.ImageDataSize = uint32(size)
	r.SegCount = uint32(segments)
}

func (r *ImageHeader) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.ImageType)
	dst = le.AppendUint16(dst, r.Width)
	dst = le.AppendUint16(dst, r.Height)
	dst = le.AppendUint32(dst, r.ImageDataSize)
	dst = le.AppendUint32(dst, r.SegCount)
	dst = le.AppendUint32(dst, r.Flags)
	return le.AppendUint32(dst, r.Reserved)
}

func (r *ImageHeader) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.ImageType = f.u16()
	r.Width = f.u16()
	r.Height = f.u16()
	r.ImageDataSize = f.u32()
	r.SegCount = f.u32()
	r.Flags = f.u32()
	r.Reserved = f.u32()
	return nil
}

// ImageSegment carries one chunk of an image resource.
type ImageSegment struct {
	DataSize uint16
	SegSize  uint16
	Data     []byte
}

func (*ImageSegment) Signature() Signature { return SigImageSegment }
func (*ImageSegment) FixedSize() int       { return 4 }

func (r *ImageSegment) Payload() []byte { return payload(r.Data, r.DataSize) }

func (r *ImageSegment) SetPayload(p []byte) {
	r.DataSize, r.SegSize, r.Data = padded(p)
}

func (r *ImageSegment) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.DataSize)
	dst = le.AppendUint16(dst, r.SegSize)
	return append(dst, r.Data...)
}

func (r *ImageSegment) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.DataSize = f.u16()
	r.SegSize = f.u16()
	r.Data = f.rest()
	return nil
}

// Event holds an event handler whose action body follows as BlobPart
// records. ActionLength is the total size of that body.
type Event struct {
	Flags           uint16
	EventType       uint16
	ActionType      uint16
	ActionLength    uint32
	SignatureLength uint16
	Reserved        [14]byte
	Tail            []byte
}

// Event action types.
const (
	ActionTypeFormula     uint16 = 1
	ActionTypeLotusScript uint16 = 2
	ActionTypeJavaScript  uint16 = 3
)

func (*Event) Signature() Signature { return SigEvent }
func (*Event) FixedSize() int       { return 26 }

func (r *Event) ResourceSize() int64 { return int64(r.ActionLength) }

func (r *Event) SetResourceLayout(size int64, _ int) { r.ActionLength = uint32(size) }

func (r *Event) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.Flags)
	dst = le.AppendUint16(dst, r.EventType)
	dst = le.AppendUint16(dst, r.ActionType)
	dst = le.AppendUint32(dst, r.ActionLength)
	dst = le.AppendUint16(dst, r.SignatureLength)
	dst = append(dst, r.Reserved[:]...)
	return append(dst, r.Tail...)
}

func (r *Event) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.Flags = f.u16()
	r.EventType = f.u16()
	r.ActionType = f.u16()
	r.ActionLength = f.u32()
	r.SignatureLength = f.u16()
	f.read(r.Reserved[:])
	r.Tail = f.rest()
	return nil
}

// BlobPart carries one chunk of a blob owned by the preceding record.
type BlobPart struct {
	OwnerSig uint16 // owner signature in Constant form
	Length   uint16
	BlobMax  uint16
	Reserved [8]byte
	Data     []byte
}

func (*BlobPart) Signature() Signature { return SigBlobPart }
func (*BlobPart) FixedSize() int       { return 14 }

func (r *BlobPart) Payload() []byte { return payload(r.Data, r.Length) }

func (r *BlobPart) SetPayload(p []byte) {
	r.Length = uint16(len(p))
	r.Data = clone(p)
}

func (r *BlobPart) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.OwnerSig)
	dst = le.AppendUint16(dst, r.Length)
	dst = le.AppendUint16(dst, r.BlobMax)
	dst = append(dst, r.Reserved[:]...)
	return append(dst, r.Data...)
}

func (r *BlobPart) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.OwnerSig = f.u16()
	r.Length = f.u16()
	r.BlobMax = f.u16()
	f.read(r.Reserved[:])
	r.Data = f.rest()
	return nil
}

// Graphic precedes the records of an inline picture.
type Graphic struct {
	DestWidth  uint16
	DestHeight uint16
	CropWidth  uint16
	CropHeight uint16
	CropLeft   uint16
	CropTop    uint16
	CropRight  uint16
	CropBottom uint16
	Resize     uint16
	Version    uint8
	Flags      uint8
	Reserved   uint16
}

func (*Graphic) Signature() Signature { return SigGraphic }
func (*Graphic) FixedSize() int       { return 22 }

func (r *Graphic) MarshalBody(dst []byte) []byte {
	for _, v := range [...]uint16{
		r.DestWidth, r.DestHeight, r.CropWidth, r.CropHeight,
		r.CropLeft, r.CropTop, r.CropRight, r.CropBottom, r.Resize,
	} {
		dst = le.AppendUint16(dst, v)
	}
	dst = append(dst, r.Version, r.Flags)
	return le.AppendUint16(dst, r.Reserved)
}

func (r *Graphic) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	for _, p := range [...]*uint16{
		&r.DestWidth, &r.DestHeight, &r.CropWidth, &r.CropHeight,
		&r.CropLeft, &r.CropTop, &r.CropRight, &r.CropBottom, &r.Resize,
	} {
		*p = f.u16()
	}
	r.Version = f.u8()
	r.Flags = f.u8()
	r.Reserved = f.u16()
	return nil
}

// Caption attaches text to the preceding graphic.
type Caption struct {
	Length    uint16
	Position  uint8
	FontID    uint32
	FontColor [6]byte
	Reserved  [11]byte
	Text      []byte
}

func (*Caption) Signature() Signature { return SigCaption }
func (*Caption) FixedSize() int       { return 24 }

func (r *Caption) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.Length)
	dst = append(dst, r.Position)
	dst = le.AppendUint32(dst, r.FontID)
	dst = append(dst, r.FontColor[:]...)
	dst = append(dst, r.Reserved[:]...)
	return append(dst, r.Text...)
}

func (r *Caption) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.Length = f.u16()
	r.Position = f.u8()
	r.FontID = f.u32()
	f.read(r.FontColor[:])
	f.read(r.Reserved[:])
	r.Text = f.rest()
	return nil
}

// HotspotBegin opens an interactive region.
type HotspotBegin struct {
	Type       uint16
	Flags      uint32
	DataLength uint16
	Data       []byte
}

// Hotspot types.
const (
	HotspotPopup     uint16 = 1
	HotspotLink      uint16 = 4
	HotspotButton    uint16 = 8
	HotspotFile      uint16 = 9
	HotspotURL       uint16 = 17
	HotspotAnchor    uint16 = 22
	HotspotFormula   uint16 = 24
	HotspotActiveObj uint16 = 25
)

func (*HotspotBegin) Signature() Signature { return SigHotspotBegin }
func (*HotspotBegin) FixedSize() int       { return 8 }

func (r *HotspotBegin) MarshalBody(dst []byte) []byte {
	dst = le.AppendUint16(dst, r.Type)
	dst = le.AppendUint32(dst, r.Flags)
	dst = le.AppendUint16(dst, r.DataLength)
	return append(dst, r.Data...)
}

func (r *HotspotBegin) UnmarshalBody(body []byte) error {
	if err := check(r, body); err != nil {
		return err
	}
	f := fields{b: body}
	r.Type = f.u16()
	r.Flags = f.u32()
	r.DataLength = f.u16()
	r.Data = f.rest()
	return nil
}

// HotspotEnd closes the innermost hotspot.
type HotspotEnd struct{}

func (*HotspotEnd) Signature() Signature            { return SigHotspotEnd }
func (*HotspotEnd) FixedSize() int                  { return 0 }
func (*HotspotEnd) MarshalBody(dst []byte) []byte   { return dst }
func (*HotspotEnd) UnmarshalBody(body []byte) error { return nil }

// --------------------------------------------------------------------

func payload(data []byte, n uint16) []byte {
	if int(n) > len(data) {
		return data
	}
	return data[:n]
}

// padded returns p padded to an even length along with both sizes.
func padded(p []byte) (dataSize, segSize uint16, data []byte) {
	data = clone(p)
	if len(p)%2 != 0 {
		data = append(data, 0)
	}
	return uint16(len(p)), uint16(len(data)), data
}
