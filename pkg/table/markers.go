package table

import (
	"fmt"

	"github.com/ssargent/cdstream/pkg/cd"
)

// Markers name the records that structure a table.
type Markers struct {
	Begin cd.Signature
	End   cd.Signature
	Cell  cd.Signature

	// Header is the signature enclosed by the BeginRecord/EndRecord pair of
	// a table header block. Zero disables header block detection.
	Header cd.Signature
}

var (
	// CompositeMarkers are the table markers of rich text items.
	CompositeMarkers = Markers{
		Begin:  cd.SigTableBegin,
		End:    cd.SigTableEnd,
		Cell:   cd.SigTableCell,
		Header: cd.SigPreTableBegin,
	}

	// NestedMarkers are the markers of the nested table records some
	// editors write inside table cells.
	NestedMarkers = Markers{
		Begin: cd.SigNestedTableBegin,
		End:   cd.SigNestedTableEnd,
		Cell:  cd.SigNestedTableCell,
	}
)

// MarkersFor returns the table markers of an item kind.
func MarkersFor(kind cd.ItemKind) (Markers, error) {
	if kind == cd.KindComposite {
		return CompositeMarkers, nil
	}
	return Markers{}, cd.UsageError("%s items have no tables", kind)
}

// Option configures a walk.
type Option func(*options)

type options struct {
	kind    cd.ItemKind
	markers *Markers
}

// WithItemKind selects the markers of kind. The default is KindComposite.
func WithItemKind(kind cd.ItemKind) Option {
	return func(o *options) { o.kind = kind }
}

// WithMarkers sets the markers explicitly, overriding WithItemKind.
func WithMarkers(m Markers) Option {
	return func(o *options) { o.markers = &m }
}

func resolve(opts []Option) (Markers, error) {
	o := options{kind: cd.KindComposite}
	for _, opt := range opts {
		opt(&o)
	}
	if o.markers != nil {
		return *o.markers, nil
	}
	return MarkersFor(o.kind)
}

// cellPosition reads the row and column of a cell marker. Marker records
// without a dedicated type share the TableCell layout: row, then column.
func cellPosition(rec cd.Record) (row, col int, err error) {
	switch c := rec.(type) {
	case *cd.TableCell:
		return int(c.Row), int(c.Column), nil
	case *cd.Generic:
		if len(c.Fixed) >= 2 {
			return int(c.Fixed[0]), int(c.Fixed[1]), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: cell marker %s has no row and column", cd.ErrMalformedRecord, rec.Signature())
}
