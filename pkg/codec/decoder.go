package codec

import (
	"github.com/ssargent/cdstream/pkg/cd"
)

// Decoder provides sequential access to the records of a buffer.
//
//	d := codec.NewDecoder(buf, cd.KindComposite)
//	for d.Next() {
//	    rec := d.Record()
//	    ...
//	}
//	if err := d.Err(); err != nil {
//	    ...
//	}
//
// The first framing error stops the decoder; there is no resynchronisation.
type Decoder struct {
	buf    []byte
	kind   cd.ItemKind
	offset int // offset of the next record
	start  int // offset of the current record
	count  int
	rec    cd.Record
	err    error
}

// NewDecoder creates a decoder over buf. The buffer is not copied and must
// not change while the decoder is in use.
func NewDecoder(buf []byte, kind cd.ItemKind) *Decoder {
	return &Decoder{buf: buf, kind: kind}
}

// Next decodes the next record. It returns false at the end of the buffer or
// after an error.
func (d *Decoder) Next() bool {
	if d.err != nil || d.offset >= len(d.buf) {
		d.rec = nil
		return false
	}

	rec, n, err := decodeAt(d.buf[d.offset:], d.offset, d.kind)
	if err != nil {
		d.rec, d.err = nil, err
		return false
	}

	d.start = d.offset
	d.offset += n
	d.count++
	d.rec = rec
	return true
}

// Record returns the record decoded by the last call to Next.
func (d *Decoder) Record() cd.Record { return d.rec }

// Err returns the error that stopped the decoder, if any.
func (d *Decoder) Err() error { return d.err }

// Offset returns the offset of the next record.
func (d *Decoder) Offset() int { return d.offset }

// RecordOffset returns the offset of the record returned by Record.
func (d *Decoder) RecordOffset() int { return d.start }

// Count returns the number of records decoded so far.
func (d *Decoder) Count() int { return d.count }

// Kind returns the item kind the decoder resolves signatures in.
func (d *Decoder) Kind() cd.ItemKind { return d.kind }

// Reset rewinds the decoder over a new buffer.
func (d *Decoder) Reset(buf []byte) {
	*d = Decoder{buf: buf, kind: d.kind}
}
