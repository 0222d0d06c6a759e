// Package codec frames and unframes Composite Document (CD) records.
//
// A CD stream is a flat sequence of variable-length, self-describing binary
// records. The codec turns a byte buffer into typed records and back; it does
// not interpret what the records mean.
//
// # Record Format
//
// Every record starts with a header whose shape depends on the length class
// of its signature. All multi-byte values are little-endian:
//
//	BYTE  [family(1)][total(1)]
//	WORD  [family(1)][0xFF(1)][total(2)]
//	LONG  [family(1)][0x00(1)][total(4)]
//
// The total length includes the header. A BYTE record stores its length in
// the second byte, which is why a BYTE record cannot be longer than 254
// bytes: the values 0xFF and 0x00 mark the WORD and LONG headers.
//
// The header is followed by the body: the fixed fields of the record kind
// and then a variable tail. Records start on even offsets, so a record of
// odd total length is followed by one zero pad byte. The pad is not part of
// the record's length. A missing pad after the last record of a buffer is
// accepted.
//
// # Signatures
//
// The family byte alone is ambiguous: the same value is reused for unrelated
// records in action, query and viewmap items, and the same family can exist
// under two length classes. Decoding therefore takes the item kind of the
// buffer and resolves (kind, family, class) through the catalog.
// Signatures the catalog does not know decode to *cd.Unknown, which keeps the
// body verbatim and re-encodes to the same bytes.
//
// # Usage
//
// Decoding a whole buffer:
//
//	stream, err := codec.DecodeAll(buf, cd.KindComposite)
//	if err != nil {
//	    return err // stream holds the records decoded before the failure
//	}
//
// Streaming over a buffer:
//
//	d := codec.NewDecoder(buf, cd.KindComposite)
//	for d.Next() {
//	    fmt.Println(d.RecordOffset(), d.Record().Signature())
//	}
//	if err := d.Err(); err != nil {
//	    return err
//	}
//
// Encoding:
//
//	buf, err := codec.EncodeOne(nil, &cd.TableCell{Row: 0, Column: 1})
//
// # Error Handling
//
// All errors are *cd.RecordError values carrying the offset and signature of
// the failing record. They unwrap to one of:
//   - cd.ErrTruncatedRecord: fewer bytes remain than the header declares
//   - cd.ErrMalformedRecord: the declared length is smaller than the header,
//     or the body is smaller than the fixed fields of the record kind
//   - cd.ErrRecordTooLarge: an encoded record does not fit its length class
//
// Framing errors are fatal for the buffer: the decoder stops and does not
// try to find the next record.
//
// # Thread Safety
//
// The package functions are safe for concurrent use. A Decoder is not; use
// one per goroutine.
package codec
