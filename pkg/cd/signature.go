package cd

import "fmt"

// LengthClass selects the width of a record's length field.
type LengthClass uint8

// Length classes. The zero value is invalid so an unset class is caught early.
const (
	ClassByte LengthClass = iota + 1
	ClassWord
	ClassLong
)

// Header sizes and limits of each length class.
const (
	ByteHeaderSize = 2
	WordHeaderSize = 4
	LongHeaderSize = 6

	// MaxByteLength is 254 rather than 255 because a length byte of 0xFF
	// marks a WORD header on the wire.
	MaxByteLength = 0xFE
	MaxWordLength = 0xFFFF
	MaxLongLength = 0xFFFFFFFF
)

// HeaderSize returns the number of header bytes for the class.
func (c LengthClass) HeaderSize() int {
	switch c {
	case ClassByte:
		return ByteHeaderSize
	case ClassWord:
		return WordHeaderSize
	case ClassLong:
		return LongHeaderSize
	default:
		return 0
	}
}

// MaxLength returns the largest total record length (header included) the
// class can represent.
func (c LengthClass) MaxLength() int64 {
	switch c {
	case ClassByte:
		return MaxByteLength
	case ClassWord:
		return MaxWordLength
	case ClassLong:
		return MaxLongLength
	default:
		return 0
	}
}

// Valid reports whether c is one of the three length classes.
func (c LengthClass) Valid() bool {
	return c >= ClassByte && c <= ClassLong
}

func (c LengthClass) String() string {
	switch c {
	case ClassByte:
		return "BYTE"
	case ClassWord:
		return "WORD"
	case ClassLong:
		return "LONG"
	default:
		return fmt.Sprintf("LengthClass(%d)", uint8(c))
	}
}

// Signature identifies a record kind. The low byte is the record family as
// stored on the wire, the high byte holds the LengthClass, so the same family
// under two classes yields two distinct signatures.
type Signature uint16

const (
	byteSig = Signature(ClassByte) << 8
	wordSig = Signature(ClassWord) << 8
	longSig = Signature(ClassLong) << 8
)

// MakeSignature combines a family byte and a length class.
func MakeSignature(family byte, class LengthClass) Signature {
	return Signature(class)<<8 | Signature(family)
}

// Family returns the family byte written to the wire.
func (s Signature) Family() byte { return byte(s) }

// Class returns the length class folded into the signature.
func (s Signature) Class() LengthClass { return LengthClass(s >> 8) }

// Constant returns the signature in its historical header-constant form,
// as it appears inside records that reference other signatures (e.g. the
// enclosed signature of a BeginRecord). WORD signatures carry 0xFF in the
// high byte, BYTE and LONG signatures carry zero.
func (s Signature) Constant() uint16 {
	if s.Class() == ClassWord {
		return 0xFF00 | uint16(s.Family())
	}
	return uint16(s.Family())
}

func (s Signature) String() string {
	return fmt.Sprintf("%d|%s", s.Family(), s.Class())
}
