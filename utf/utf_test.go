package utf

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"unicode/utf16"
)

func encodeUTF16(s string, order binary.ByteOrder, bom bool) []byte {
	var buf bytes.Buffer
	if bom {
		var b [2]byte
		order.PutUint16(b[:], 0xFEFF)
		buf.Write(b[:])
	}
	for _, u := range utf16.Encode([]rune(s)) {
		var b [2]byte
		order.PutUint16(b[:], u)
		buf.Write(b[:])
	}
	return buf.Bytes()
}

func encodeUTF32(s string, order binary.ByteOrder, bom bool) []byte {
	var buf bytes.Buffer
	if bom {
		var b [4]byte
		order.PutUint32(b[:], 0xFEFF)
		buf.Write(b[:])
	}
	for _, r := range s {
		var b [4]byte
		order.PutUint32(b[:], uint32(r))
		buf.Write(b[:])
	}
	return buf.Bytes()
}

type detectTest struct {
	name string
	in   []byte
	typ  Type
	out  string
}

func TestDetectAndTranscode(t *testing.T) {
	const doc = "a: 1\n"
	dts := []detectTest{
		{name: "utf8", in: []byte(doc), typ: UTF8, out: doc},
		{name: "utf8 bom", in: append([]byte{0xEF, 0xBB, 0xBF}, doc...), typ: UTF8, out: doc},
		{name: "utf16le", in: encodeUTF16(doc, binary.LittleEndian, false), typ: UTF16LE, out: doc},
		{name: "utf16le bom", in: encodeUTF16(doc, binary.LittleEndian, true), typ: UTF16LE, out: doc},
		{name: "utf16be", in: encodeUTF16(doc, binary.BigEndian, false), typ: UTF16BE, out: doc},
		{name: "utf16be bom", in: encodeUTF16(doc, binary.BigEndian, true), typ: UTF16BE, out: doc},
		{name: "utf32le", in: encodeUTF32(doc, binary.LittleEndian, false), typ: UTF32LE, out: doc},
		{name: "utf32le bom", in: encodeUTF32(doc, binary.LittleEndian, true), typ: UTF32LE, out: doc},
		{name: "utf32be", in: encodeUTF32(doc, binary.BigEndian, false), typ: UTF32BE, out: doc},
		{name: "utf32be bom", in: encodeUTF32(doc, binary.BigEndian, true), typ: UTF32BE, out: doc},
		{name: "empty", in: nil, typ: UTF8, out: ""},
	}
	for _, dt := range dts {
		r := NewReader(bytes.NewReader(dt.in))
		if r.Type() != dt.typ {
			t.Errorf("%s: detected %s, want %s", dt.name, r.Type(), dt.typ)
		}
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("%s: %v", dt.name, err)
		}
		if string(got) != dt.out {
			t.Errorf("%s: got %q, want %q", dt.name, got, dt.out)
		}
	}
}

func TestSupplementaryPlane(t *testing.T) {
	const doc = "a: \U0001F600\n"
	r := NewReader(bytes.NewReader(encodeUTF16(doc, binary.BigEndian, true)))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != doc {
		t.Errorf("got %q, want %q", got, doc)
	}
}

func TestLoneSurrogateReplaced(t *testing.T) {
	// high surrogate followed by a regular unit
	in := []byte{0xFE, 0xFF, 0xD8, 0x00, 0x00, 'a'}
	r := NewReader(bytes.NewReader(in))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "�a" {
		t.Errorf("got %q, want %q", got, "�a")
	}

	// truncated high surrogate at end of stream
	in = []byte{0xFE, 0xFF, 0xD8, 0x00}
	r = NewReader(bytes.NewReader(in))
	got, err = io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "�" {
		t.Errorf("got %q, want %q", got, "�")
	}
}
