package itemstore

import (
	"encoding/binary"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/ssargent/cdstream/pkg/cd"
)

// Payload codecs, stored in the last byte of every value.
const (
	codecNone   byte = 0
	codecSnappy byte = 1
)

const valueHeaderSize = 4

// encodeValue lays out an item as
//
//	[kind u16][name length u16][name][payload][codec]
//
// The payload is snappy compressed when that saves at least a quarter of
// its size.
func encodeValue(item Item, compress bool) []byte {
	out := make([]byte, valueHeaderSize, valueHeaderSize+len(item.Name)+len(item.Data)+1)
	binary.LittleEndian.PutUint16(out[0:], uint16(item.Kind))
	binary.LittleEndian.PutUint16(out[2:], uint16(len(item.Name)))
	out = append(out, item.Name...)

	if compress && len(item.Data) > 0 {
		snp := snappy.Encode(nil, item.Data)
		if len(snp) < len(item.Data)-len(item.Data)/4 {
			out = append(out, snp...)
			return append(out, codecSnappy)
		}
	}
	out = append(out, item.Data...)
	return append(out, codecNone)
}

// value is a decoded header with the payload still in stored form.
type value struct {
	kind    cd.ItemKind
	name    string
	payload []byte
	codec   byte
}

func parseValue(raw []byte) (value, error) {
	if len(raw) < valueHeaderSize+1 {
		return value{}, errors.Errorf("itemstore: value of %d bytes is too short", len(raw))
	}
	nameLen := int(binary.LittleEndian.Uint16(raw[2:]))
	end := len(raw) - 1
	if valueHeaderSize+nameLen > end {
		return value{}, errors.Errorf("itemstore: name of %d bytes overruns value", nameLen)
	}

	v := value{
		kind:    cd.ItemKind(binary.LittleEndian.Uint16(raw[0:])),
		name:    string(raw[valueHeaderSize : valueHeaderSize+nameLen]),
		payload: raw[valueHeaderSize+nameLen : end],
		codec:   raw[end],
	}
	if v.codec != codecNone && v.codec != codecSnappy {
		return value{}, ErrBadCompression
	}
	return v, nil
}

// size returns the uncompressed payload size.
func (v value) size() (int, error) {
	if v.codec == codecSnappy {
		n, err := snappy.DecodedLen(v.payload)
		return n, errors.Wrap(err, "itemstore: snappy length")
	}
	return len(v.payload), nil
}

// data returns the uncompressed payload in a fresh slice.
func (v value) data() ([]byte, error) {
	if v.codec == codecSnappy {
		plain, err := snappy.Decode(nil, v.payload)
		if err != nil {
			return nil, errors.Wrap(err, "itemstore: snappy decode")
		}
		return plain, nil
	}
	return append([]byte(nil), v.payload...), nil
}
