//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ssargent/cdstream/pkg/cd"
)

// FuzzDecodeAll_NoPanic feeds arbitrary buffers to the decoder. Every buffer
// must either decode or fail with one of the framing errors.
func FuzzDecodeAll_NoPanic(f *testing.F) {
	seed, _ := Stream{
		&cd.Paragraph{},
		&cd.Text{FontID: 1, Text: []byte("seed")},
		&cd.TableBegin{},
		&cd.TableCell{},
		&cd.TableEnd{},
	}.Encode()

	f.Add([]byte{})
	f.Add([]byte{0x81})
	f.Add([]byte{0x85, 0xFF, 0x04, 0x00})
	f.Add([]byte{0x61, 0x00, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add(seed)

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("Input too large for fuzz test")
		}

		for _, kind := range []cd.ItemKind{cd.KindComposite, cd.KindAction, cd.KindQuery} {
			_, err := DecodeAll(data, kind)
			if err == nil {
				continue
			}
			if !errors.Is(err, cd.ErrTruncatedRecord) && !errors.Is(err, cd.ErrMalformedRecord) {
				t.Fatalf("unexpected error kind: %v", err)
			}
		}
	})
}

// FuzzReencode_Stable checks that any buffer that decodes re-encodes to bytes
// that decode to the same records.
func FuzzReencode_Stable(f *testing.F) {
	f.Add([]byte{0x7F, 0xFF, 0x05, 0x00, 0x01, 0x00})
	f.Add([]byte{0x83, 0x04, 0x01, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("Input too large for fuzz test")
		}

		stream, err := DecodeAll(data, cd.KindComposite)
		if err != nil {
			t.Skip("not a valid stream")
		}

		first, err := stream.Encode()
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		again, err := DecodeAll(first, cd.KindComposite)
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		second, err := again.Encode()
		if err != nil {
			t.Fatalf("second Encode failed: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("encoding not stable:\n% x\n% x", first, second)
		}
	})
}
