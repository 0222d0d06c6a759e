package codec

import (
	"io"

	"github.com/ssargent/cdstream/pkg/cd"
)

// Stream is an ordered sequence of decoded records.
type Stream []cd.Record

// DecodeAll decodes every record of buf. On a framing error it returns the
// records decoded before the failure together with the error.
func DecodeAll(buf []byte, kind cd.ItemKind) (Stream, error) {
	var s Stream
	d := NewDecoder(buf, kind)
	for d.Next() {
		s = append(s, d.Record())
	}
	return s, d.Err()
}

// Len returns the number of records.
func (s Stream) Len() int { return len(s) }

// Encode returns the encoded stream.
func (s Stream) Encode() ([]byte, error) {
	var buf []byte
	for _, rec := range s {
		var err error
		if buf, err = EncodeOne(buf, rec); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// WriteTo writes the encoded stream to w.
func (s Stream) WriteTo(w io.Writer) (int64, error) {
	buf, err := s.Encode()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Filter returns the records whose signature is one of sigs.
func (s Stream) Filter(sigs ...cd.Signature) Stream {
	var out Stream
	for _, rec := range s {
		for _, sig := range sigs {
			if rec.Signature() == sig {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// Iter returns a cursor over the stream with the same shape as a Decoder.
func (s Stream) Iter() *Iterator {
	return &Iterator{records: s, pos: -1}
}

// Iterator walks a Stream.
type Iterator struct {
	records Stream
	pos     int
}

// Next advances to the next record.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.records) {
		it.pos = len(it.records)
		return false
	}
	it.pos++
	return true
}

// Record returns the current record.
func (it *Iterator) Record() cd.Record {
	if it.pos < 0 || it.pos >= len(it.records) {
		return nil
	}
	return it.records[it.pos]
}

// Err always returns nil; a stream in memory cannot fail.
func (it *Iterator) Err() error { return nil }
