package segment

import (
	"github.com/ssargent/cdstream/pkg/cd"
)

// Assembler accumulates segment payloads until they add up to the size
// declared by the header.
type Assembler struct {
	kind     Kind
	header   cd.ResourceHeader
	declared int64
	data     []byte
	segments int
}

// NewAssembler starts reassembling the resource announced by header.
func NewAssembler(k Kind, header cd.ResourceHeader) (*Assembler, error) {
	if header.Signature() != k.Header {
		return nil, cd.UsageError("%s resource needs a %s header, got %s", k.Name, k.Header, header.Signature())
	}
	declared := header.ResourceSize()
	capHint := declared
	if capHint > 1<<20 {
		capHint = 1 << 20
	}
	return &Assembler{
		kind:     k,
		header:   header,
		declared: declared,
		data:     make([]byte, 0, capHint),
	}, nil
}

// Add appends the payload of seg. It reports whether the resource is
// complete. A segment that would take the resource past its declared size
// is rejected with ErrResourceSizeMismatch.
func (a *Assembler) Add(seg cd.ResourceSegment) (bool, error) {
	if seg.Signature() != a.kind.Segment {
		return false, cd.UsageError("%s resource cannot take a %s segment", a.kind.Name, seg.Signature())
	}

	p := seg.Payload()
	if got := int64(len(a.data) + len(p)); got > a.declared {
		return false, &cd.ResourceError{Kind: a.kind.Name, Declared: a.declared, Actual: got, Err: cd.ErrResourceSizeMismatch}
	}
	a.data = append(a.data, p...)
	a.segments++
	return a.Complete(), nil
}

// Complete reports whether the declared size has been reached.
func (a *Assembler) Complete() bool { return int64(len(a.data)) == a.declared }

// Segments returns the number of segments added so far.
func (a *Assembler) Segments() int { return a.segments }

// Header returns the header the assembler was started with.
func (a *Assembler) Header() cd.ResourceHeader { return a.header }

// Bytes closes the resource and returns its payload. Fewer bytes than
// declared is ErrResourceSizeMismatch.
func (a *Assembler) Bytes() ([]byte, error) {
	if !a.Complete() {
		return nil, &cd.ResourceError{Kind: a.kind.Name, Declared: a.declared, Actual: int64(len(a.data)), Err: cd.ErrResourceSizeMismatch}
	}
	return a.data, nil
}

// Resource is a reassembled payload.
type Resource struct {
	Kind     string
	Index    int // position of the header record in the stream
	Header   cd.ResourceHeader
	Data     []byte
	Segments int
}

// Name returns the file name for file resources and an empty string
// otherwise.
func (r Resource) Name() string {
	if fh, ok := r.Header.(*cd.FileHeader); ok {
		return fh.FileName()
	}
	return ""
}

// Extract finds every resource of the given kinds in records, all
// predefined kinds when none are given. A resource ends at the first record
// that is not one of its segments. Segments without a preceding header are
// ignored.
func Extract(records []cd.Record, kinds ...Kind) ([]Resource, error) {
	if len(kinds) == 0 {
		kinds = Kinds()
	}

	var out []Resource
	for i := 0; i < len(records); i++ {
		k, header, ok := match(records[i], kinds)
		if !ok {
			continue
		}

		a, err := NewAssembler(k, header)
		if err != nil {
			return out, err
		}
		j := i + 1
		for ; j < len(records); j++ {
			seg, ok := records[j].(cd.ResourceSegment)
			if !ok || seg.Signature() != k.Segment {
				break
			}
			if _, err := a.Add(seg); err != nil {
				return out, err
			}
		}

		data, err := a.Bytes()
		if err != nil {
			return out, err
		}
		out = append(out, Resource{Kind: k.Name, Index: i, Header: header, Data: data, Segments: a.Segments()})
		i = j - 1
	}
	return out, nil
}

func match(rec cd.Record, kinds []Kind) (Kind, cd.ResourceHeader, bool) {
	h, ok := rec.(cd.ResourceHeader)
	if !ok {
		return Kind{}, nil, false
	}
	for _, k := range kinds {
		if k.Header == h.Signature() {
			return k, h, true
		}
	}
	return Kind{}, nil, false
}
