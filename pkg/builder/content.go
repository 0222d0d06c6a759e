package builder

import (
	"strings"

	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
	"github.com/ssargent/cdstream/pkg/lmbcs"
	"github.com/ssargent/cdstream/pkg/segment"
)

// maxTextRun is the largest LMBCS run one Text record can carry.
var maxTextRun = int(codec.MaxBodySize(cd.ClassWord)) - (&cd.Text{}).FixedSize()

// TextOptions control AddText.
type TextOptions struct {
	FontID uint32
	PabID  uint16 // paragraph attributes; zero writes no reference

	// SplitLines starts a new paragraph at every line break instead of
	// keeping the breaks inside the text run.
	SplitLines bool
}

// AddText appends a paragraph holding text. Runs too long for one record
// are split across several Text records.
func (b *Builder) AddText(text string, opts TextOptions) error {
	lines := []string{text}
	if opts.SplitLines {
		lines = strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	}

	var records []cd.Record
	for _, line := range lines {
		records = append(records, &cd.Paragraph{})
		if opts.PabID != 0 {
			records = append(records, &cd.PabReference{PabID: opts.PabID})
		}
		for _, chunk := range lmbcs.EncodeChunks(line, maxTextRun) {
			records = append(records, &cd.Text{FontID: opts.FontID, Text: chunk})
		}
	}
	return b.appendAll("add text", records...)
}

// Image describes an inline picture.
type Image struct {
	Type    uint16 // cd.ImageGIF, cd.ImageJPEG, ...
	Width   uint16
	Height  uint16
	Data    []byte
	Caption string
}

// AddImage appends a graphic: the Graphic record, the image header and its
// segments, and a Caption when one is set.
func (b *Builder) AddImage(img Image) error {
	if err := b.checkOpen("add image"); err != nil {
		return err
	}

	header := &cd.ImageHeader{ImageType: img.Type, Width: img.Width, Height: img.Height}
	resource, err := segment.Split(b.kinds[segment.Image.Name], header, img.Data)
	if err != nil {
		return err
	}

	records := []cd.Record{&cd.Graphic{
		DestWidth:  img.Width,
		DestHeight: img.Height,
		CropWidth:  img.Width,
		CropHeight: img.Height,
		Version:    3,
	}}
	records = append(records, resource...)
	if img.Caption != "" {
		text := lmbcs.Encode(img.Caption)
		records = append(records, &cd.Caption{Length: uint16(len(text)), Text: text})
	}
	return b.appendAll("add image", records...)
}

// AddFile appends a file resource.
func (b *Builder) AddFile(name string, data []byte) error {
	if err := b.checkOpen("add file"); err != nil {
		return err
	}
	if len(name) > 0xFFFF {
		return cd.UsageError("file name of %d bytes", len(name))
	}

	header := &cd.FileHeader{FileExtLen: uint16(len(name)), Name: []byte(name)}
	records, err := segment.Split(b.kinds[segment.File.Name], header, data)
	if err != nil {
		return err
	}
	return b.appendAll("add file", records...)
}

// AddBlob appends an event record followed by data as blob parts. A nil
// event writes a zero event.
func (b *Builder) AddBlob(event *cd.Event, data []byte) error {
	if err := b.checkOpen("add blob"); err != nil {
		return err
	}
	if event == nil {
		event = &cd.Event{}
	}

	records, err := segment.Split(b.kinds[segment.Blob.Name], event, data)
	if err != nil {
		return err
	}
	return b.appendAll("add blob", records...)
}

// TableOptions describe a table opened by BeginTable.
type TableOptions struct {
	LeftMargin uint16
	HorizSpace uint16
	VertSpace  uint16
	Flags      uint16

	// Rows and Columns, when set, are written in a table header block ahead
	// of the table.
	Rows    uint8
	Columns uint8
}

// BeginTable opens a table. Tables nest: a BeginTable after a Cell opens a
// table inside that cell.
func (b *Builder) BeginTable(opts TableOptions) error {
	var records []cd.Record
	if opts.Rows > 0 || opts.Columns > 0 {
		records = append(records,
			cd.NewBeginRecord(cd.SigPreTableBegin),
			&cd.PreTableBegin{Rows: opts.Rows, Columns: opts.Columns},
			cd.NewEndRecord(cd.SigPreTableBegin),
		)
	}
	records = append(records, &cd.TableBegin{
		LeftMargin:            opts.LeftMargin,
		HorizInterCellSpace:   opts.HorizSpace,
		VertInterCellSpace:    opts.VertSpace,
		V4HorizInterCellSpace: opts.HorizSpace,
		V4VertInterCellSpace:  opts.VertSpace,
		Flags:                 opts.Flags,
	})
	return b.appendAll("begin table", records...)
}

// Cell starts the cell at row and col of the innermost open table.
func (b *Builder) Cell(row, col int) error {
	if err := b.checkOpen("cell"); err != nil {
		return err
	}
	if b.depth == 0 {
		return cd.UsageError("cell outside a table")
	}
	if row < 0 || row > 0xFF || col < 0 || col > 0xFF {
		return cd.UsageError("cell position %d,%d out of range", row, col)
	}
	return b.appendAll("cell", &cd.TableCell{
		Row:        uint8(row),
		Column:     uint8(col),
		RowSpan:    1,
		ColumnSpan: 1,
	})
}

// EndTable closes the innermost open table.
func (b *Builder) EndTable() error {
	if err := b.checkOpen("end table"); err != nil {
		return err
	}
	if b.depth == 0 {
		return cd.UsageError("end table without an open table")
	}
	return b.appendAll("end table", &cd.TableEnd{})
}
