// Package richtext is the entry point for callers that hold the raw bytes
// of a rich text (or other CD) item and want records, tables, text or
// attachments out of it.
package richtext

import (
	"sort"
	"strings"

	"github.com/ssargent/cdstream/pkg/catalog"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
	"github.com/ssargent/cdstream/pkg/lmbcs"
	"github.com/ssargent/cdstream/pkg/segment"
	"github.com/ssargent/cdstream/pkg/table"
)

// Decode decodes every record of data. On error the records decoded before
// the failure are returned with it.
func Decode(data []byte, kind cd.ItemKind) (codec.Stream, error) {
	return codec.DecodeAll(data, kind)
}

// Encode encodes records back into a stream.
func Encode(records []cd.Record) ([]byte, error) {
	return codec.Stream(records).Encode()
}

// Walk decodes data incrementally and reports its table structure to v.
func Walk(data []byte, kind cd.ItemKind, v table.Visitor) error {
	return table.Walk(codec.NewDecoder(data, kind), v, table.WithItemKind(kind))
}

// Tables decodes data and collects its top-level tables.
func Tables(data []byte, kind cd.ItemKind) ([]table.Table, error) {
	return table.Collect(codec.NewDecoder(data, kind), table.WithItemKind(kind))
}

// PlainText renders the text runs of records. Paragraphs and table rows
// start new lines; cells after the first in a row are separated by a tab.
func PlainText(records []cd.Record) string {
	var sb strings.Builder
	sep := ""
	for _, rec := range records {
		switch r := rec.(type) {
		case *cd.Paragraph, *cd.TableEnd:
			if sep == "" {
				sep = "\n"
			}
		case *cd.TableCell:
			if r.Column > 0 {
				sep = "\t"
			} else {
				sep = "\n"
			}
		case *cd.Text:
			if len(r.Text) == 0 {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString(sep)
			}
			sep = ""
			sb.WriteString(lmbcs.Decode(r.Text))
		}
	}
	return sb.String()
}

// Resources reassembles every file, image and blob in records.
func Resources(records []cd.Record) ([]segment.Resource, error) {
	return segment.Extract(records)
}

// Summary counts what a stream holds.
type Summary struct {
	Kind      string         `json:"kind"`
	Records   int            `json:"records"`
	Bytes     int            `json:"bytes"`
	Unknown   int            `json:"unknown"`
	Tables    int            `json:"tables"`
	Resources int            `json:"resources"`
	Names     map[string]int `json:"names"`
}

// TopNames returns the record names of s ordered by count, most frequent
// first, ties by name.
func (s Summary) TopNames() []string {
	names := make([]string, 0, len(s.Names))
	for n := range s.Names {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.Names[names[i]] != s.Names[names[j]] {
			return s.Names[names[i]] > s.Names[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Summarize decodes data and counts its records by catalog name. Decoding,
// table and resource errors are returned with the summary of what was read.
func Summarize(data []byte, kind cd.ItemKind) (Summary, error) {
	s := Summary{Kind: kind.String(), Bytes: len(data), Names: make(map[string]int)}

	stream, err := codec.DecodeAll(data, kind)
	s.Records = len(stream)
	for _, rec := range stream {
		if _, ok := rec.(*cd.Unknown); ok {
			s.Unknown++
		}
		s.Names[catalog.Name(kind, rec.Signature())]++
	}
	if err != nil {
		return s, err
	}

	if _, terr := table.MarkersFor(kind); terr == nil {
		tables, err := table.Collect(stream.Iter())
		s.Tables = len(tables)
		if err != nil {
			return s, err
		}
	}

	resources, err := segment.Extract(stream)
	s.Resources = len(resources)
	return s, err
}
