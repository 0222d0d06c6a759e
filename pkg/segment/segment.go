// Package segment splits large payloads into header and segment records and
// reassembles them.
//
// Files, images and blobs share one algorithm: a header record declares the
// total payload size and is followed by ceil(size/capacity) segment records,
// each holding at most capacity bytes. A Kind carries everything that
// differs between them.
package segment

import (
	"github.com/ssargent/cdstream/pkg/cd"
)

// DefaultCapacity is the payload capacity of one segment.
const DefaultCapacity = 10240

// Kind parameterizes the segmenter for one resource family.
type Kind struct {
	Name     string
	Capacity int
	Header   cd.Signature
	Segment  cd.Signature

	maxCapacity int
	newSegment  func(k Kind) cd.ResourceSegment
}

// Predefined kinds.
var (
	File = Kind{
		Name:        "file",
		Capacity:    DefaultCapacity,
		Header:      cd.SigFileHeader,
		Segment:     cd.SigFileSegment,
		maxCapacity: 0xFFFE,
		newSegment:  func(Kind) cd.ResourceSegment { return new(cd.FileSegment) },
	}

	Image = Kind{
		Name:        "image",
		Capacity:    DefaultCapacity,
		Header:      cd.SigImageHeader,
		Segment:     cd.SigImageSegment,
		maxCapacity: 0xFFFE,
		newSegment:  func(Kind) cd.ResourceSegment { return new(cd.ImageSegment) },
	}

	// Blob is the action body of an event handler, carried by BlobPart
	// records after a CDEVENT.
	Blob = Kind{
		Name:        "blob",
		Capacity:    DefaultCapacity,
		Header:      cd.SigEvent,
		Segment:     cd.SigBlobPart,
		maxCapacity: cd.MaxWordLength - cd.WordHeaderSize - 14,
		newSegment: func(k Kind) cd.ResourceSegment {
			return &cd.BlobPart{OwnerSig: k.Header.Constant(), BlobMax: uint16(k.Capacity)}
		},
	}
)

// Kinds returns the predefined kinds.
func Kinds() []Kind { return []Kind{File, Image, Blob} }

// WithCapacity returns a copy of k with a different segment capacity.
func (k Kind) WithCapacity(n int) Kind {
	k.Capacity = n
	return k
}

// Validate reports whether the kind can produce encodable segments.
func (k Kind) Validate() error {
	if k.newSegment == nil {
		return cd.UsageError("segment kind %q is not one of the predefined kinds", k.Name)
	}
	if k.Capacity <= 0 || k.Capacity > k.maxCapacity {
		return cd.UsageError("%s segment capacity %d outside 1..%d", k.Name, k.Capacity, k.maxCapacity)
	}
	return nil
}

// SegmentCount returns how many segments a payload of size bytes needs.
func (k Kind) SegmentCount(size int) int {
	if size <= 0 || k.Capacity <= 0 {
		return 0
	}
	return (size + k.Capacity - 1) / k.Capacity
}

// Split returns header followed by the segments carrying payload. The
// header's size and segment count fields are overwritten.
func Split(k Kind, header cd.ResourceHeader, payload []byte) ([]cd.Record, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if header.Signature() != k.Header {
		return nil, cd.UsageError("%s resource needs a %s header, got %s", k.Name, k.Header, header.Signature())
	}
	if int64(len(payload)) > cd.MaxLongLength {
		return nil, &cd.ResourceError{Kind: k.Name, Declared: cd.MaxLongLength, Actual: int64(len(payload)), Err: cd.ErrRecordTooLarge}
	}

	n := k.SegmentCount(len(payload))
	header.SetResourceLayout(int64(len(payload)), n)

	records := make([]cd.Record, 0, n+1)
	records = append(records, header)
	for off := 0; off < len(payload); off += k.Capacity {
		end := off + k.Capacity
		if end > len(payload) {
			end = len(payload)
		}
		seg := k.newSegment(k)
		seg.SetPayload(payload[off:end])
		records = append(records, seg)
	}
	return records, nil
}
