// Package table recovers table structure from a flat record stream.
//
// Tables are not nested in the stream itself: a table is a table-begin
// record, cell markers and content records, and a table-end record, all at
// the same level. Walk rebuilds tables, rows and cells from that sequence in
// a single pass and reports them to a Visitor in stream order.
package table

import (
	"errors"

	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
)

// ErrStop is returned by a Visitor to end a walk early. Walk then returns
// nil; events already delivered stand.
var ErrStop = errors.New("table: stop walk")

// Source yields records in stream order. *codec.Decoder and
// *codec.Iterator implement it.
type Source interface {
	Next() bool
	Record() cd.Record
	Err() error
}

// Begin describes a top-level table when its structure starts.
type Begin struct {
	Index  int         // 0-based, counts top-level tables
	Header []cd.Record // header block preceding the table-begin, if any
	Record cd.Record   // the table-begin record
	PreRow []cd.Record // records between the table-begin and the first cell
}

// Row is one row of a top-level table. Records start with the row's first
// cell marker and include every cell marker and nested table record.
type Row struct {
	TableIndex int
	Index      int // row index read from the cell markers
	Records    []cd.Record
}

// Cell is one cell of a row. Content excludes the cell marker itself.
type Cell struct {
	TableIndex int
	Row        int
	Column     int
	Marker     cd.Record
	Content    []cd.Record
}

// Visitor receives the events of a walk. Row is delivered right before the
// Cell events of that row.
type Visitor interface {
	NonTableRecord(rec cd.Record) error
	TableBegin(b Begin) error
	Row(r Row) error
	Cell(c Cell) error
	TableEnd(index int, rec cd.Record) error
}

// Walk reads src to the end and reports its table structure to v.
//
// A stray table-end outside any table, or a stream that ends inside a table,
// fails with cd.ErrUnbalancedTable and no further events. Errors returned by
// v other than ErrStop end the walk and are returned unchanged.
func Walk(src Source, v Visitor, opts ...Option) error {
	m, err := resolve(opts)
	if err != nil {
		return err
	}

	w := &walker{v: v, m: m}
	for src.Next() {
		if err := w.step(src.Record()); err != nil {
			return stopped(err)
		}
	}
	if err := src.Err(); err != nil {
		return err
	}
	return stopped(w.finish())
}

// WalkRecords walks an in-memory record sequence.
func WalkRecords(records []cd.Record, v Visitor, opts ...Option) error {
	return Walk(codec.Stream(records).Iter(), v, opts...)
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

type walker struct {
	v Visitor
	m Markers

	// header block, outside tables
	header      []cd.Record
	inHeader    bool
	headerReady bool

	// current top-level table
	depth  int
	tables int
	index  int
	begin  Begin
	begun  bool
	row    []cd.Record
	rowIdx int
	inRow  bool
}

func (w *walker) step(rec cd.Record) error {
	if w.depth == 0 {
		return w.scan(rec)
	}

	switch rec.Signature() {
	case w.m.Begin:
		w.depth++
	case w.m.End:
		w.depth--
		if w.depth == 0 {
			return w.closeTable(rec)
		}
	case w.m.Cell:
		if w.depth == 1 {
			return w.cellMarker(rec)
		}
	}
	w.buffer(rec)
	return nil
}

// scan handles a record outside any table.
func (w *walker) scan(rec cd.Record) error {
	sig := rec.Signature()

	if w.inHeader {
		if sig == w.m.Begin {
			// header block never closed; its records are ordinary content
			if err := w.flushHeader(); err != nil {
				return err
			}
			return w.openTable(rec)
		}
		w.header = append(w.header, rec)
		if w.isHeaderEnd(rec) {
			w.inHeader, w.headerReady = false, true
		}
		return nil
	}

	if w.headerReady {
		if sig == w.m.Begin {
			return w.openTable(rec)
		}
		if err := w.flushHeader(); err != nil {
			return err
		}
	}

	switch {
	case sig == w.m.Begin:
		return w.openTable(rec)
	case sig == w.m.End:
		return &cd.TableError{TableIndex: w.tables, Depth: 0, Err: cd.ErrUnbalancedTable}
	case w.isHeaderBegin(rec):
		w.header = []cd.Record{rec}
		w.inHeader = true
		return nil
	}
	return w.v.NonTableRecord(rec)
}

func (w *walker) finish() error {
	if w.depth > 0 {
		return &cd.TableError{TableIndex: w.index, Depth: w.depth, Err: cd.ErrUnbalancedTable}
	}
	if w.inHeader || w.headerReady {
		return w.flushHeader()
	}
	return nil
}

func (w *walker) isHeaderBegin(rec cd.Record) bool {
	b, ok := rec.(*cd.BeginRecord)
	return ok && w.m.Header != 0 && b.Encloses(w.m.Header)
}

func (w *walker) isHeaderEnd(rec cd.Record) bool {
	e, ok := rec.(*cd.EndRecord)
	return ok && w.m.Header != 0 && e.Encloses(w.m.Header)
}

func (w *walker) flushHeader() error {
	header := w.header
	w.header, w.inHeader, w.headerReady = nil, false, false
	for _, rec := range header {
		if err := w.v.NonTableRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) openTable(rec cd.Record) error {
	w.index = w.tables
	w.tables++
	w.depth = 1
	w.begin = Begin{Index: w.index, Header: w.header, Record: rec}
	w.begun = false
	w.row, w.inRow = nil, false
	w.header, w.inHeader, w.headerReady = nil, false, false
	return nil
}

func (w *walker) buffer(rec cd.Record) {
	if w.inRow {
		w.row = append(w.row, rec)
		return
	}
	w.begin.PreRow = append(w.begin.PreRow, rec)
}

func (w *walker) emitBegin() error {
	if w.begun {
		return nil
	}
	w.begun = true
	return w.v.TableBegin(w.begin)
}

func (w *walker) cellMarker(rec cd.Record) error {
	row, _, err := cellPosition(rec)
	if err != nil {
		return err
	}
	if err := w.emitBegin(); err != nil {
		return err
	}

	if w.inRow && row == w.rowIdx {
		w.row = append(w.row, rec)
		return nil
	}
	if w.inRow {
		if err := w.flushRow(); err != nil {
			return err
		}
	}
	w.inRow, w.rowIdx, w.row = true, row, []cd.Record{rec}
	return nil
}

func (w *walker) closeTable(rec cd.Record) error {
	if err := w.emitBegin(); err != nil {
		return err
	}
	if w.inRow {
		if err := w.flushRow(); err != nil {
			return err
		}
	}
	w.row, w.inRow = nil, false
	w.begin = Begin{}
	return w.v.TableEnd(w.index, rec)
}

func (w *walker) flushRow() error {
	records := w.row
	w.row, w.inRow = nil, false

	if err := w.v.Row(Row{TableIndex: w.index, Index: w.rowIdx, Records: records}); err != nil {
		return err
	}
	cells, err := w.splitCells(records)
	if err != nil {
		return err
	}
	for _, c := range cells {
		if err := w.v.Cell(c); err != nil {
			return err
		}
	}
	return nil
}

// splitCells groups the records of a row by top-level cell marker. Nested
// tables, markers included, stay inside the cell that contains them.
func (w *walker) splitCells(records []cd.Record) ([]Cell, error) {
	var cells []Cell
	depth := 0
	for _, rec := range records {
		switch rec.Signature() {
		case w.m.Begin:
			depth++
		case w.m.End:
			depth--
		case w.m.Cell:
			if depth == 0 {
				row, col, err := cellPosition(rec)
				if err != nil {
					return nil, err
				}
				cells = append(cells, Cell{TableIndex: w.index, Row: row, Column: col, Marker: rec})
				continue
			}
		}
		last := &cells[len(cells)-1]
		last.Content = append(last.Content, rec)
	}
	return cells, nil
}
