package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ssargent/cdstream/pkg/catalog"
	"github.com/ssargent/cdstream/pkg/cd"
)

// Length markers stored in the second header byte.
const (
	wordMarker = 0xFF
	longMarker = 0x00
)

// header is a parsed record header.
type header struct {
	sig    cd.Signature
	length int64 // total record length, header included
	size   int   // header bytes
}

// readHeader parses the header at the start of buf.
func readHeader(buf []byte) (header, error) {
	if len(buf) < cd.ByteHeaderSize {
		return header{}, cd.ErrTruncatedRecord
	}

	family, marker := buf[0], buf[1]
	var h header
	switch marker {
	case wordMarker:
		if len(buf) < cd.WordHeaderSize {
			return header{}, cd.ErrTruncatedRecord
		}
		h = header{
			sig:    cd.MakeSignature(family, cd.ClassWord),
			length: int64(binary.LittleEndian.Uint16(buf[2:])),
			size:   cd.WordHeaderSize,
		}
	case longMarker:
		if len(buf) < cd.LongHeaderSize {
			return header{}, cd.ErrTruncatedRecord
		}
		h = header{
			sig:    cd.MakeSignature(family, cd.ClassLong),
			length: int64(binary.LittleEndian.Uint32(buf[2:])),
			size:   cd.LongHeaderSize,
		}
	default:
		h = header{
			sig:    cd.MakeSignature(family, cd.ClassByte),
			length: int64(marker),
			size:   cd.ByteHeaderSize,
		}
	}

	if h.length < int64(h.size) {
		return h, cd.ErrMalformedRecord
	}
	return h, nil
}

// DecodeOne decodes the record at the start of buf. Signatures are resolved
// in the namespace of kind; signatures the catalog does not know decode to
// *cd.Unknown. The returned count includes the pad byte that follows a record
// of odd length, so buf[n:] starts at the next record.
func DecodeOne(buf []byte, kind cd.ItemKind) (cd.Record, int, error) {
	return decodeAt(buf, 0, kind)
}

func decodeAt(buf []byte, offset int, kind cd.ItemKind) (cd.Record, int, error) {
	h, err := readHeader(buf)
	if err != nil {
		return nil, 0, &cd.RecordError{Op: "decode", Offset: offset, Signature: h.sig, Length: h.length, Err: err}
	}
	if h.length > int64(len(buf)) {
		return nil, 0, &cd.RecordError{Op: "decode", Offset: offset, Signature: h.sig, Length: h.length, Err: cd.ErrTruncatedRecord}
	}

	n := int(h.length)
	body := buf[h.size:n]

	var rec cd.Record
	if e, ok := catalog.Lookup(kind, h.sig); ok {
		rec = e.New()
	} else {
		rec = &cd.Unknown{Sig: h.sig}
	}
	if err := rec.UnmarshalBody(body); err != nil {
		return nil, 0, &cd.RecordError{Op: "decode", Offset: offset, Signature: h.sig, Length: h.length, Err: err}
	}

	if n%2 != 0 && n < len(buf) {
		n++
	}
	return rec, n, nil
}

// EncodeOne appends the encoded form of rec to dst: header, body and, for
// records of odd length, one zero pad byte. The length field is always
// computed from the marshaled body. On error dst is returned unchanged.
func EncodeOne(dst []byte, rec cd.Record) ([]byte, error) {
	sig := rec.Signature()
	class := sig.Class()
	if !class.Valid() {
		return dst, &cd.RecordError{Op: "encode", Offset: len(dst), Signature: sig, Err: fmt.Errorf("%w: no length class", cd.ErrMalformedRecord)}
	}

	start := len(dst)
	hsize := class.HeaderSize()
	for i := 0; i < hsize; i++ {
		dst = append(dst, 0)
	}
	dst = rec.MarshalBody(dst)

	total := int64(len(dst) - start)
	if total > class.MaxLength() {
		return dst[:start], &cd.RecordError{Op: "encode", Offset: start, Signature: sig, Length: total, Err: cd.ErrRecordTooLarge}
	}

	hdr := dst[start : start+hsize]
	hdr[0] = sig.Family()
	switch class {
	case cd.ClassByte:
		hdr[1] = byte(total)
	case cd.ClassWord:
		hdr[1] = wordMarker
		binary.LittleEndian.PutUint16(hdr[2:], uint16(total))
	case cd.ClassLong:
		hdr[1] = longMarker
		binary.LittleEndian.PutUint32(hdr[2:], uint32(total))
	}

	if total%2 != 0 {
		dst = append(dst, 0)
	}
	return dst, nil
}

// EncodedSize returns the number of bytes EncodeOne appends for rec, pad
// included.
func EncodedSize(rec cd.Record) (int, error) {
	buf, err := EncodeOne(nil, rec)
	return len(buf), err
}

// MaxBodySize returns the largest body a record of the given class can carry.
func MaxBodySize(class cd.LengthClass) int64 {
	if !class.Valid() {
		return 0
	}
	return class.MaxLength() - int64(class.HeaderSize())
}
