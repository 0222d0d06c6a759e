// Package builder produces CD record streams.
//
// A Builder is an append-only accumulator: every record is encoded when it
// is appended and written after the bytes already produced, which are never
// touched again. This lets a Builder stream straight into an io.Writer.
// The convenience operations (text, images, files, blobs, tables) are all
// expressed as appends.
//
// A Builder must be ended with Finalize or Discard. Any call after that is
// a usage error.
package builder

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
	"github.com/ssargent/cdstream/pkg/segment"
)

type state int

const (
	stateOpen state = iota
	stateFinalized
	stateDiscarded
)

func (s state) String() string {
	switch s {
	case stateFinalized:
		return "finalized"
	case stateDiscarded:
		return "discarded"
	default:
		return "open"
	}
}

// Builder accumulates encoded records.
type Builder struct {
	buf     []byte
	writer  *bufio.Writer
	scratch []byte
	offset  int64 // bytes produced so far
	records int
	depth   int // open tables
	kinds   map[string]segment.Kind
	log     logrus.FieldLogger
	state   state
}

// Option configures a Builder.
type Option func(*Builder)

// WithWriter streams the encoded records into w instead of keeping them in
// memory. Finalize flushes w and returns no bytes.
func WithWriter(w io.Writer) Option {
	return func(b *Builder) { b.writer = bufio.NewWriter(w) }
}

// WithCapacity sets the segment capacity used for resources of kind k.
func WithCapacity(k segment.Kind, n int) Option {
	return func(b *Builder) { b.kinds[k.Name] = k.WithCapacity(n) }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) { b.log = l }
}

// New creates an open Builder.
func New(opts ...Option) *Builder {
	b := &Builder{kinds: make(map[string]segment.Kind)}
	for _, k := range segment.Kinds() {
		b.kinds[k.Name] = k
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		b.log = l
	}
	return b
}

func (b *Builder) checkOpen(op string) error {
	if b.state != stateOpen {
		return cd.UsageError("%s on a %s builder", op, b.state)
	}
	return nil
}

// Append encodes rec and adds it to the stream. Table begin and end records
// are tracked so Finalize can refuse an unbalanced stream.
func (b *Builder) Append(rec cd.Record) error {
	return b.appendAll("append", rec)
}

// appendAll encodes every record before writing any of them, so a failing
// record leaves the stream as it was.
func (b *Builder) appendAll(op string, records ...cd.Record) error {
	if err := b.checkOpen(op); err != nil {
		return err
	}

	depth := b.depth
	out := b.scratch[:0]
	for _, rec := range records {
		switch rec.Signature() {
		case cd.SigTableBegin:
			depth++
		case cd.SigTableEnd:
			if depth == 0 {
				return cd.UsageError("%s: table end without an open table", op)
			}
			depth--
		}

		var err error
		if out, err = codec.EncodeOne(out, rec); err != nil {
			return err
		}
	}
	b.scratch = out

	if err := b.write(out); err != nil {
		return err
	}
	b.depth = depth
	b.records += len(records)
	return nil
}

func (b *Builder) write(p []byte) error {
	if b.writer != nil {
		n, err := b.writer.Write(p)
		b.offset += int64(n)
		return err
	}
	b.buf = append(b.buf, p...)
	b.offset += int64(len(p))
	return nil
}

// Finalize ends the builder and returns the encoded stream. With WithWriter
// the bytes have gone to the writer and Finalize returns nil bytes after
// flushing it. Finalizing with a table still open is a usage error and
// leaves the builder open.
func (b *Builder) Finalize() ([]byte, error) {
	if err := b.checkOpen("finalize"); err != nil {
		return nil, err
	}
	if b.depth > 0 {
		return nil, cd.UsageError("finalize with %d open table(s)", b.depth)
	}

	if b.writer != nil {
		if err := b.writer.Flush(); err != nil {
			return nil, err
		}
	}
	b.state = stateFinalized
	b.log.WithFields(logrus.Fields{
		"records": b.records,
		"bytes":   b.offset,
	}).Debug("stream finalized")

	out := b.buf
	b.buf, b.scratch = nil, nil
	return out, nil
}

// Discard ends the builder and drops everything appended so far. Buffered
// bytes not yet flushed to a writer are not written.
func (b *Builder) Discard() {
	if b.state == stateOpen {
		b.log.WithField("records", b.records).Debug("stream discarded")
	}
	b.state = stateDiscarded
	b.buf, b.scratch = nil, nil
	if b.writer != nil {
		b.writer.Reset(io.Discard)
	}
}

// Len returns the number of bytes produced so far.
func (b *Builder) Len() int64 { return b.offset }

// Records returns the number of records appended so far.
func (b *Builder) Records() int { return b.records }

// OpenTables returns the nesting depth of open tables.
func (b *Builder) OpenTables() int { return b.depth }
