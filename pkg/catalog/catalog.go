// Package catalog maps record signatures to their shape.
//
// Each item kind has its own namespace: the composite namespace covers rich
// text, while action, query and viewmap items reuse the same family values
// for unrelated records. Lookups therefore always take the item kind.
//
// The catalog is built on first use and never modified afterwards, so it can
// be shared by any number of goroutines.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ssargent/cdstream/pkg/cd"
)

// Entry describes one catalogued signature.
type Entry struct {
	Kind      cd.ItemKind
	Signature cd.Signature
	Name      string
	FixedSize int

	newTyped func() cd.Record
}

// New returns an empty record for the entry: the dedicated Go type when
// there is one, a Generic with FixedSize zeroed bytes otherwise.
func (e Entry) New() cd.Record {
	if e.newTyped != nil {
		return e.newTyped()
	}
	return cd.NewGeneric(e.Signature, e.FixedSize)
}

// Typed reports whether the entry decodes into a dedicated Go type.
func (e Entry) Typed() bool { return e.newTyped != nil }

type namespace struct {
	bySig   map[cd.Signature]Entry
	entries []Entry
}

var (
	buildOnce  sync.Once
	namespaces map[cd.ItemKind]*namespace
)

func load() map[cd.ItemKind]*namespace {
	buildOnce.Do(func() {
		namespaces = map[cd.ItemKind]*namespace{
			cd.KindComposite:      build(cd.KindComposite, compositeRows, typed),
			cd.KindAction:         build(cd.KindAction, actionRows, nil),
			cd.KindQuery:          build(cd.KindQuery, queryRows, nil),
			cd.KindViewmapLayout:  build(cd.KindViewmapLayout, viewmapRows, nil),
			cd.KindViewmapDataset: build(cd.KindViewmapDataset, viewmapRows, nil),
		}
	})
	return namespaces
}

// build panics on inconsistent tables; they are static, so a panic means a
// broken build rather than bad input.
func build(kind cd.ItemKind, rows []row, ctors map[cd.Signature]func() cd.Record) *namespace {
	ns := &namespace{bySig: make(map[cd.Signature]Entry, len(rows))}
	for _, r := range rows {
		if _, dup := ns.bySig[r.sig]; dup {
			panic(fmt.Sprintf("catalog: duplicate %s signature %s (%s)", kind, r.sig, r.name))
		}
		if !r.sig.Class().Valid() {
			panic(fmt.Sprintf("catalog: %s has no length class", r.name))
		}
		if int64(r.sig.Class().HeaderSize()+r.fixed) > r.sig.Class().MaxLength() {
			panic(fmt.Sprintf("catalog: %s fixed size %d overflows %s", r.name, r.fixed, r.sig.Class()))
		}

		e := Entry{Kind: kind, Signature: r.sig, Name: r.name, FixedSize: r.fixed}
		if ctor, ok := ctors[r.sig]; ok {
			if n := ctor().FixedSize(); n != r.fixed {
				panic(fmt.Sprintf("catalog: %s fixed size %d, type says %d", r.name, r.fixed, n))
			}
			e.newTyped = ctor
		}
		ns.bySig[r.sig] = e
		ns.entries = append(ns.entries, e)
	}
	sort.Slice(ns.entries, func(i, j int) bool {
		return ns.entries[i].Signature < ns.entries[j].Signature
	})
	return ns
}

// Lookup returns the entry of sig within the namespace of kind.
func Lookup(kind cd.ItemKind, sig cd.Signature) (Entry, bool) {
	ns, ok := load()[kind]
	if !ok {
		return Entry{}, false
	}
	e, ok := ns.bySig[sig]
	return e, ok
}

// Entries returns the entries of a namespace ordered by signature.
func Entries(kind cd.ItemKind) []Entry {
	ns, ok := load()[kind]
	if !ok {
		return nil
	}
	return append([]Entry(nil), ns.entries...)
}

// Kinds returns the item kinds that have a namespace.
func Kinds() []cd.ItemKind {
	kinds := make([]cd.ItemKind, 0, len(load()))
	for k := range load() {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Name returns the catalog name of sig, or a descriptive placeholder when
// the signature is unknown.
func Name(kind cd.ItemKind, sig cd.Signature) string {
	if e, ok := Lookup(kind, sig); ok {
		return e.Name
	}
	return "UNKNOWN(" + sig.String() + ")"
}

// Size returns the number of catalogued signatures across all namespaces.
func Size() int {
	n := 0
	for _, ns := range load() {
		n += len(ns.entries)
	}
	return n
}
