package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/ssargent/cdstream/pkg/catalog"
	"github.com/ssargent/cdstream/pkg/cd"
)

// longTail keeps LONG records past the 64 KiB WORD limit without building
// multi-gigabyte buffers.
const longTail = 70000

func TestEncodeDecode_EveryCatalogEntry(t *testing.T) {
	for _, kind := range catalog.Kinds() {
		for _, e := range catalog.Entries(kind) {
			e := e
			t.Run(kind.String()+"/"+e.Name, func(t *testing.T) {
				// minimum size body: fixed fields only
				roundTrip(t, kind, e.New())

				g, ok := e.New().(*cd.Generic)
				if !ok {
					return
				}

				// maximum size body for the class
				tail := int(MaxBodySize(e.Signature.Class())) - e.FixedSize
				if e.Signature.Class() == cd.ClassLong {
					tail = longTail
				}
				g.Tail = bytes.Repeat([]byte{0xA5}, tail)
				for i := range g.Fixed {
					g.Fixed[i] = byte(i + 1)
				}
				roundTrip(t, kind, g)
			})
		}
	}
}

func roundTrip(t *testing.T, kind cd.ItemKind, rec cd.Record) {
	t.Helper()

	encoded, err := EncodeOne(nil, rec)
	if err != nil {
		t.Fatalf("EncodeOne failed: %v", err)
	}
	if len(encoded)%2 != 0 {
		t.Fatalf("encoded length %d is odd", len(encoded))
	}

	decoded, n, err := DecodeOne(encoded, kind)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	if n != len(encoded) {
		t.Errorf("consumed %d bytes, want %d", n, len(encoded))
	}
	if !reflect.DeepEqual(decoded, rec) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", decoded, rec)
	}

	again, err := EncodeOne(nil, decoded)
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if !bytes.Equal(again, encoded) {
		t.Errorf("re-encoded bytes differ")
	}
}

func TestEncodeOne_LengthClassBoundaries(t *testing.T) {
	byteSig := cd.MakeSignature(0x70, cd.ClassByte)
	wordSig := cd.MakeSignature(0x70, cd.ClassWord)
	longSig := cd.MakeSignature(0x70, cd.ClassLong)

	testCases := []struct {
		name    string
		sig     cd.Signature
		body    int
		wantErr bool
	}{
		{"byte largest", byteSig, 252, false},
		{"byte one over", byteSig, 253, true},
		{"byte far over", byteSig, 300, true},
		{"word largest", wordSig, 65531, false},
		{"word one over", wordSig, 65532, true},
		{"long beyond word range", longSig, longTail, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &cd.Unknown{Sig: tc.sig, Body: bytes.Repeat([]byte{0x11}, tc.body)}
			prefix := []byte{0xEE, 0xEE}

			out, err := EncodeOne(prefix, rec)
			if tc.wantErr {
				if !errors.Is(err, cd.ErrRecordTooLarge) {
					t.Fatalf("expected ErrRecordTooLarge, got %v", err)
				}
				if !bytes.Equal(out, prefix) {
					t.Errorf("dst modified on error: %d bytes", len(out))
				}
				return
			}
			if err != nil {
				t.Fatalf("EncodeOne failed: %v", err)
			}

			decoded, n, err := DecodeOne(out[len(prefix):], cd.KindComposite)
			if err != nil {
				t.Fatalf("DecodeOne failed: %v", err)
			}
			if n != len(out)-len(prefix) {
				t.Errorf("consumed %d, want %d", n, len(out)-len(prefix))
			}
			if got := decoded.(*cd.Unknown); !bytes.Equal(got.Body, rec.Body) || got.Sig != tc.sig {
				t.Errorf("decoded %s with %d body bytes", got.Sig, len(got.Body))
			}
		})
	}
}

func TestEncodeOne_HeaderLayout(t *testing.T) {
	testCases := []struct {
		name string
		rec  cd.Record
		want []byte
	}{
		{
			name: "byte",
			rec:  &cd.PabReference{PabID: 0x0102},
			want: []byte{131, 4, 0x02, 0x01},
		},
		{
			name: "word",
			rec:  &cd.Text{FontID: 1, Text: []byte("Hi")},
			want: []byte{133, 0xFF, 10, 0, 1, 0, 0, 0, 'H', 'i'},
		},
		{
			name: "long with pad",
			rec:  &cd.Unknown{Sig: cd.MakeSignature(0x60, cd.ClassLong), Body: []byte{7}},
			want: []byte{0x60, 0x00, 7, 0, 0, 0, 7, 0},
		},
		{
			name: "byte with pad",
			rec:  &cd.Unknown{Sig: cd.MakeSignature(0x61, cd.ClassByte), Body: []byte{9}},
			want: []byte{0x61, 3, 9, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeOne(nil, tc.rec)
			if err != nil {
				t.Fatalf("EncodeOne failed: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("got % x, want % x", got, tc.want)
			}
		})
	}
}

func TestEncodeOne_InvalidClass(t *testing.T) {
	_, err := EncodeOne(nil, &cd.Unknown{Sig: cd.Signature(0x0042)})
	if !errors.Is(err, cd.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestDecodeOne_Padding(t *testing.T) {
	odd := &cd.Unknown{Sig: cd.MakeSignature(0x61, cd.ClassByte), Body: []byte{9}}
	buf, _ := EncodeOne(nil, odd)
	buf, _ = EncodeOne(buf, &cd.PabReference{PabID: 7})

	rec, n, err := DecodeOne(buf, cd.KindComposite)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("consumed %d, want 4 (record + pad)", n)
	}
	if !reflect.DeepEqual(rec, odd) {
		t.Errorf("got %#v", rec)
	}

	rec, _, err = DecodeOne(buf[n:], cd.KindComposite)
	if err != nil {
		t.Fatalf("second DecodeOne failed: %v", err)
	}
	if ref, ok := rec.(*cd.PabReference); !ok || ref.PabID != 7 {
		t.Errorf("second record = %#v", rec)
	}

	// a missing pad at the end of the buffer is accepted
	rec, n, err = DecodeOne(buf[:3], cd.KindComposite)
	if err != nil || n != 3 {
		t.Fatalf("unpadded tail: n=%d err=%v", n, err)
	}
	if !reflect.DeepEqual(rec, odd) {
		t.Errorf("got %#v", rec)
	}
}

func TestDecodeOne_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, cd.ErrTruncatedRecord},
		{"one byte", []byte{129}, cd.ErrTruncatedRecord},
		{"word header cut", []byte{133, 0xFF, 10}, cd.ErrTruncatedRecord},
		{"long header cut", []byte{97, 0x00, 10, 0, 0}, cd.ErrTruncatedRecord},
		{"body cut", []byte{133, 0xFF, 10, 0, 1, 0, 0, 0}, cd.ErrTruncatedRecord},
		{"byte length below header", []byte{129, 1}, cd.ErrMalformedRecord},
		{"word length below header", []byte{133, 0xFF, 3, 0}, cd.ErrMalformedRecord},
		{"long length below header", []byte{97, 0x00, 5, 0, 0, 0}, cd.ErrMalformedRecord},
		{"body shorter than fixed fields", []byte{164, 4, 0, 0}, cd.ErrMalformedRecord},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeOne(tc.data, cd.KindComposite)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var recErr *cd.RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected *cd.RecordError, got %T", err)
			}
			if recErr.Op != "decode" {
				t.Errorf("Op = %q", recErr.Op)
			}
		})
	}
}

func TestDecodeOne_UnknownRoundTrip(t *testing.T) {
	raw := []byte{0x7F, 0xFF, 9, 0, 'a', 'b', 'c', 'd', 'e', 0}

	rec, n, err := DecodeOne(raw, cd.KindComposite)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	u, ok := rec.(*cd.Unknown)
	if !ok {
		t.Fatalf("expected *cd.Unknown, got %T", rec)
	}
	if u.Sig != cd.MakeSignature(0x7F, cd.ClassWord) || string(u.Body) != "abcde" {
		t.Errorf("got %s %q", u.Sig, u.Body)
	}
	if n != len(raw) {
		t.Errorf("consumed %d", n)
	}

	out, err := EncodeOne(nil, u)
	if err != nil {
		t.Fatalf("EncodeOne failed: %v", err)
	}
	if !bytes.Equal(out, raw) {
		t.Errorf("got % x, want % x", out, raw)
	}
}

func TestDecodeOne_ItemKindSelectsNamespace(t *testing.T) {
	raw := []byte{129, 4, 1, 0}

	rec, _, err := DecodeOne(raw, cd.KindComposite)
	if err != nil {
		t.Fatalf("composite: %v", err)
	}
	if _, ok := rec.(*cd.Paragraph); !ok {
		t.Errorf("composite decoded to %T", rec)
	}

	rec, _, err = DecodeOne(raw, cd.KindAction)
	if err != nil {
		t.Fatalf("action: %v", err)
	}
	g, ok := rec.(*cd.Generic)
	if !ok || g.Sig != cd.SigActionHeader || !bytes.Equal(g.Fixed, []byte{1, 0}) {
		t.Errorf("action decoded to %#v", rec)
	}
	if name := catalog.Name(cd.KindAction, g.Sig); name != "ACTION_HEADER" {
		t.Errorf("name = %s", name)
	}
}

func TestDecoder_Sequence(t *testing.T) {
	stream := Stream{
		&cd.Paragraph{},
		&cd.PabReference{PabID: 3},
		&cd.Text{FontID: 0x0A, Text: []byte("odd")},
		&cd.TableEnd{},
	}
	buf, err := stream.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	d := NewDecoder(buf, cd.KindComposite)
	var offsets []int
	var got Stream
	for d.Next() {
		offsets = append(offsets, d.RecordOffset())
		got = append(got, d.Record())
	}
	if err := d.Err(); err != nil {
		t.Fatalf("decoder error: %v", err)
	}

	// 2 + 4 + (11 + pad) + 6
	wantOffsets := []int{0, 2, 6, 18}
	if !reflect.DeepEqual(offsets, wantOffsets) {
		t.Errorf("offsets = %v, want %v", offsets, wantOffsets)
	}
	if d.Count() != 4 || d.Offset() != len(buf) {
		t.Errorf("count=%d offset=%d len=%d", d.Count(), d.Offset(), len(buf))
	}
	if !reflect.DeepEqual(got, stream) {
		t.Errorf("decoded stream differs")
	}
	if d.Next() || d.Record() != nil {
		t.Errorf("Next after end returned a record")
	}

	d.Reset(buf[:2])
	if !d.Next() || d.Count() != 1 || d.Kind() != cd.KindComposite {
		t.Errorf("reset decoder did not restart")
	}
}

func TestDecodeAll_PartialOnError(t *testing.T) {
	good, _ := Stream{&cd.Paragraph{}, &cd.PabReference{PabID: 1}}.Encode()
	buf := append(good, 133, 0xFF, 40, 0, 1)

	stream, err := DecodeAll(buf, cd.KindComposite)
	if !errors.Is(err, cd.ErrTruncatedRecord) {
		t.Fatalf("expected ErrTruncatedRecord, got %v", err)
	}
	if stream.Len() != 2 {
		t.Errorf("decoded %d records before the failure, want 2", stream.Len())
	}

	var recErr *cd.RecordError
	if !errors.As(err, &recErr) || recErr.Offset != len(good) {
		t.Errorf("error offset = %+v, want %d", recErr, len(good))
	}
}

func TestStream_FilterIterWrite(t *testing.T) {
	stream := Stream{
		&cd.Paragraph{},
		&cd.Text{Text: []byte("a")},
		&cd.Paragraph{},
		&cd.Text{Text: []byte("b")},
	}

	texts := stream.Filter(cd.SigText)
	if texts.Len() != 2 {
		t.Fatalf("Filter returned %d records", texts.Len())
	}
	if len(stream.Filter(cd.SigTableBegin)) != 0 {
		t.Errorf("Filter matched a missing signature")
	}

	it := stream.Iter()
	if it.Record() != nil {
		t.Errorf("Record before Next should be nil")
	}
	n := 0
	for it.Next() {
		if it.Record() != stream[n] {
			t.Errorf("record %d differs", n)
		}
		n++
	}
	if n != 4 || it.Err() != nil || it.Record() != nil {
		t.Errorf("iterated %d records", n)
	}

	var w bytes.Buffer
	written, err := stream.WriteTo(&w)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	want, _ := stream.Encode()
	if written != int64(len(want)) || !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteTo wrote %d bytes", written)
	}
}

func TestEncodedSizeAndMaxBody(t *testing.T) {
	n, err := EncodedSize(&cd.Text{Text: []byte("abc")})
	if err != nil || n != 12 {
		t.Errorf("EncodedSize = %d, %v; want 12", n, err)
	}
	if MaxBodySize(cd.ClassByte) != 252 || MaxBodySize(cd.ClassWord) != 65531 || MaxBodySize(0) != 0 {
		t.Errorf("unexpected MaxBodySize values")
	}
}
