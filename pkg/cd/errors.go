package cd

import (
	"errors"
	"fmt"
)

// Errors. Every failure of the codec, segmenter, table parser and builder
// unwraps to one of these; none of them is recoverable for the operation
// that produced it.
var (
	// ErrTruncatedRecord is returned when fewer bytes remain than a record
	// header declares. The rest of the buffer is unusable.
	ErrTruncatedRecord = errors.New("cd: truncated record")

	// ErrMalformedRecord is returned when a declared length is inconsistent
	// with the header size or the fixed body of the signature.
	ErrMalformedRecord = errors.New("cd: malformed record")

	// ErrRecordTooLarge is returned when a record does not fit the length
	// class of its signature.
	ErrRecordTooLarge = errors.New("cd: record exceeds its length class")

	// ErrUnbalancedTable is returned when table begin and end markers do not
	// pair up.
	ErrUnbalancedTable = errors.New("cd: unbalanced table")

	// ErrResourceSizeMismatch is returned when resource segments do not add
	// up to the size declared by their header.
	ErrResourceSizeMismatch = errors.New("cd: resource size mismatch")

	// ErrUsage is returned when an API is called out of order.
	ErrUsage = errors.New("cd: usage error")
)

// RecordError describes a framing failure at a position in a buffer.
type RecordError struct {
	Op        string // "decode" or "encode"
	Offset    int
	Signature Signature
	Length    int64 // declared or computed total length
	Err       error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %s at offset %d (length %d): %v", e.Op, e.Signature, e.Offset, e.Length, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// TableError describes a table structure failure.
type TableError struct {
	TableIndex int
	Depth      int
	Err        error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %d (depth %d): %v", e.TableIndex, e.Depth, e.Err)
}

func (e *TableError) Unwrap() error { return e.Err }

// ResourceError describes a resource whose segments disagree with its header.
type ResourceError struct {
	Kind     string
	Declared int64
	Actual   int64
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s resource: declared %d bytes, got %d: %v", e.Kind, e.Declared, e.Actual, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// UsageError returns an ErrUsage carrying the offending call.
func UsageError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
