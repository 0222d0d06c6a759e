package cd

import (
	"encoding/binary"
	"fmt"
)

// Record is one decoded unit of a CD stream. The header (signature and
// length) is not part of the body: the codec derives it from Signature and
// the marshaled body size.
type Record interface {
	// Signature returns the record's signature, length class included.
	Signature() Signature

	// FixedSize returns the number of body bytes taken by fixed fields.
	// Anything after them is the variable tail.
	FixedSize() int

	// MarshalBody appends the body (fixed fields, then tail) to dst.
	MarshalBody(dst []byte) []byte

	// UnmarshalBody parses a body. The slice is not retained.
	UnmarshalBody(body []byte) error
}

// ResourceHeader is a record announcing a segmented payload.
type ResourceHeader interface {
	Record
	ResourceSize() int64
	SetResourceLayout(size int64, segments int)
}

// ResourceSegment is a record carrying one chunk of a segmented payload.
type ResourceSegment interface {
	Record
	Payload() []byte
	SetPayload(p []byte)
}

// Generic is a catalogued record without a dedicated Go type. Fixed holds
// exactly the catalog's fixed body size; its length decides where the tail
// starts when unmarshaling.
type Generic struct {
	Sig   Signature
	Fixed []byte
	Tail  []byte
}

// NewGeneric returns a Generic with a zeroed fixed part of n bytes.
func NewGeneric(sig Signature, n int) *Generic {
	return &Generic{Sig: sig, Fixed: make([]byte, n)}
}

func (g *Generic) Signature() Signature { return g.Sig }
func (g *Generic) FixedSize() int       { return len(g.Fixed) }

func (g *Generic) MarshalBody(dst []byte) []byte {
	dst = append(dst, g.Fixed...)
	return append(dst, g.Tail...)
}

func (g *Generic) UnmarshalBody(body []byte) error {
	n := len(g.Fixed)
	if len(body) < n {
		return shortBody(g.Sig, n, len(body))
	}
	g.Fixed = append(g.Fixed[:0], body[:n]...)
	g.Tail = clone(body[n:])
	return nil
}

// Unknown is a record whose signature is not in the catalog. The body is
// kept verbatim so it re-encodes byte for byte.
type Unknown struct {
	Sig  Signature
	Body []byte
}

func (u *Unknown) Signature() Signature { return u.Sig }
func (u *Unknown) FixedSize() int       { return 0 }

func (u *Unknown) MarshalBody(dst []byte) []byte { return append(dst, u.Body...) }

func (u *Unknown) UnmarshalBody(body []byte) error {
	u.Body = clone(body)
	return nil
}

// --------------------------------------------------------------------

func shortBody(sig Signature, want, got int) error {
	return fmt.Errorf("%w: %s needs %d fixed bytes, body has %d", ErrMalformedRecord, sig, want, got)
}

func clone(p []byte) []byte {
	if len(p) == 0 {
		return nil
	}
	return append([]byte(nil), p...)
}

// fields reads little-endian fixed fields off a body. Callers check the body
// length against FixedSize first, so reads never run past the end.
type fields struct {
	b   []byte
	off int
}

func (f *fields) u8() uint8 {
	v := f.b[f.off]
	f.off++
	return v
}

func (f *fields) u16() uint16 {
	v := binary.LittleEndian.Uint16(f.b[f.off:])
	f.off += 2
	return v
}

func (f *fields) u32() uint32 {
	v := binary.LittleEndian.Uint32(f.b[f.off:])
	f.off += 4
	return v
}

func (f *fields) read(dst []byte) {
	f.off += copy(dst, f.b[f.off:])
}

func (f *fields) rest() []byte { return clone(f.b[f.off:]) }

func check(r Record, body []byte) error {
	if n := r.FixedSize(); len(body) < n {
		return shortBody(r.Signature(), n, len(body))
	}
	return nil
}
