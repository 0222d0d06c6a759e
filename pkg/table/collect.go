package table

import "github.com/ssargent/cdstream/pkg/cd"

// Funcs adapts optional callbacks to a Visitor. Nil callbacks ignore their
// event.
type Funcs struct {
	OnNonTable   func(rec cd.Record) error
	OnTableBegin func(b Begin) error
	OnRow        func(r Row) error
	OnCell       func(c Cell) error
	OnTableEnd   func(index int, rec cd.Record) error
}

func (f Funcs) NonTableRecord(rec cd.Record) error {
	if f.OnNonTable == nil {
		return nil
	}
	return f.OnNonTable(rec)
}

func (f Funcs) TableBegin(b Begin) error {
	if f.OnTableBegin == nil {
		return nil
	}
	return f.OnTableBegin(b)
}

func (f Funcs) Row(r Row) error {
	if f.OnRow == nil {
		return nil
	}
	return f.OnRow(r)
}

func (f Funcs) Cell(c Cell) error {
	if f.OnCell == nil {
		return nil
	}
	return f.OnCell(c)
}

func (f Funcs) TableEnd(index int, rec cd.Record) error {
	if f.OnTableEnd == nil {
		return nil
	}
	return f.OnTableEnd(index, rec)
}

// Table is a fully collected top-level table.
type Table struct {
	Begin
	Rows []TableRow
	End  cd.Record
}

// TableRow is a collected row.
type TableRow struct {
	Index int
	Cells []Cell
}

// Columns returns one more than the largest column index of any cell.
func (t Table) Columns() int {
	n := 0
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			if c.Column+1 > n {
				n = c.Column + 1
			}
		}
	}
	return n
}

// Collect walks src and returns its top-level tables. Records outside tables
// are dropped.
func Collect(src Source, opts ...Option) ([]Table, error) {
	var tables []Table
	cur := func() *Table { return &tables[len(tables)-1] }

	err := Walk(src, Funcs{
		OnTableBegin: func(b Begin) error {
			tables = append(tables, Table{Begin: b})
			return nil
		},
		OnRow: func(r Row) error {
			t := cur()
			t.Rows = append(t.Rows, TableRow{Index: r.Index})
			return nil
		},
		OnCell: func(c Cell) error {
			row := &cur().Rows[len(cur().Rows)-1]
			row.Cells = append(row.Cells, c)
			return nil
		},
		OnTableEnd: func(_ int, rec cd.Record) error {
			cur().End = rec
			return nil
		},
	}, opts...)
	if err != nil {
		return nil, err
	}
	return tables, nil
}
