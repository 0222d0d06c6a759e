// Package lmbcs converts between Go strings and LMBCS, the multi-group
// character set used by text runs in rich text records.
//
// LMBCS bytes below 0x80 are ASCII except for the group bytes, which select a
// character set for the following byte(s). Bytes 0x80 and above without a
// group byte belong to group 1 (code page 850). A NUL byte is a line break.
//
// Encode always produces group 1 or Unicode (group 0x14) sequences; Decode
// understands every single-byte group plus Unicode. Double-byte Asian groups
// decode to U+FFFD.
package lmbcs

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Group bytes.
const (
	GroupCP850   = 0x01
	GroupCP852   = 0x02
	GroupCP1255  = 0x03
	GroupCP1256  = 0x04
	GroupCP1251  = 0x05
	GroupCP1253  = 0x06
	GroupCP1254  = 0x08
	GroupCP874   = 0x0B
	GroupJIS     = 0x10
	GroupKSC     = 0x11
	GroupBig5    = 0x12
	GroupGB      = 0x13
	GroupUnicode = 0x14
	GroupUser    = 0x19
)

var singleByte = map[byte]*charmap.Charmap{
	GroupCP850:  charmap.CodePage850,
	GroupCP852:  charmap.CodePage852,
	GroupCP1255: charmap.Windows1255,
	GroupCP1256: charmap.Windows1256,
	GroupCP1251: charmap.Windows1251,
	GroupCP1253: charmap.Windows1253,
	GroupCP1254: charmap.Windows1254,
	GroupCP874:  charmap.Windows874,
}

// Decode converts LMBCS bytes to a string. Malformed or unsupported
// sequences become U+FFFD.
func Decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0x00:
			sb.WriteByte('\n')
			i++

		case c >= 0x80:
			sb.WriteRune(charmap.CodePage850.DecodeByte(c))
			i++

		case singleByte[c] != nil:
			if i+1 >= len(b) {
				sb.WriteRune(utf8.RuneError)
				i = len(b)
				continue
			}
			sb.WriteRune(singleByte[c].DecodeByte(b[i+1]))
			i += 2

		case c == GroupUnicode:
			r, n := decodeUnicode(b[i:])
			sb.WriteRune(r)
			i += n

		case c >= GroupJIS && c <= GroupGB:
			sb.WriteRune(utf8.RuneError)
			i += 3

		case c == GroupUser:
			sb.WriteRune(utf8.RuneError)
			i += 2

		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// decodeUnicode decodes a group 0x14 sequence at the start of b, joining a
// following low surrogate sequence when the first unit is a high surrogate.
func decodeUnicode(b []byte) (rune, int) {
	if len(b) < 3 {
		return utf8.RuneError, len(b)
	}
	r1 := rune(b[1])<<8 | rune(b[2])
	if !utf16.IsSurrogate(r1) {
		return r1, 3
	}
	if len(b) >= 6 && b[3] == GroupUnicode {
		r2 := rune(b[4])<<8 | rune(b[5])
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, 6
		}
	}
	return utf8.RuneError, 3
}

// Encode converts s to LMBCS. Line breaks ("\n" and "\r\n") become NUL.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	eachSequence(s, func(seq []byte) { out = append(out, seq...) })
	return out
}

// EncodeChunks encodes s like Encode and cuts the result into chunks of at
// most limit bytes. Chunks never split a multi-byte sequence.
func EncodeChunks(s string, limit int) [][]byte {
	var chunks [][]byte
	var cur []byte
	eachSequence(s, func(seq []byte) {
		if len(cur) > 0 && len(cur)+len(seq) > limit {
			chunks = append(chunks, cur)
			cur = nil
		}
		cur = append(cur, seq...)
	})
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// eachSequence calls fn with the LMBCS encoding of each character of s. The
// slice is reused between calls.
func eachSequence(s string, fn func(seq []byte)) {
	var scratch [6]byte
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		seq := scratch[:0]
		switch {
		case r == '\r' && i < len(s) && s[i] == '\n':
			continue // folded into the following line feed
		case r == '\n':
			seq = append(seq, 0x00)
		case r < 0x80 && !isGroupByte(byte(r)):
			seq = append(seq, byte(r))
		case r < 0x80:
			// a control character that doubles as a group byte
			seq = appendUnicode(seq, r)
		default:
			if b, ok := charmap.CodePage850.EncodeRune(r); ok && b >= 0x80 {
				seq = append(seq, b)
			} else {
				seq = appendUnicode(seq, r)
			}
		}
		fn(seq)
	}
}

func appendUnicode(out []byte, r rune) []byte {
	if r >= 0x10000 {
		r1, r2 := utf16.EncodeRune(r)
		out = append(out, GroupUnicode, byte(r1>>8), byte(r1))
		return append(out, GroupUnicode, byte(r2>>8), byte(r2))
	}
	return append(out, GroupUnicode, byte(r>>8), byte(r))
}

func isGroupByte(c byte) bool {
	if singleByte[c] != nil {
		return true
	}
	return c >= GroupJIS && c <= GroupUnicode || c == GroupUser
}
