package encode

import (
	"strings"
	"testing"

	"github.com/huzife/cyaml/node"
)

func scalar(v string) *node.Node { return node.FromScalar(v) }

func seqOf(style node.Style, vals ...*node.Node) *node.Node {
	s := node.NewType(node.SeqType)
	s.SetStyle(style)
	for _, v := range vals {
		s.PushBack(v)
	}
	return s
}

func mapOf(style node.Style, kvs ...*node.Node) *node.Node {
	m := node.NewType(node.MapType)
	m.SetStyle(style)
	for i := 0; i+1 < len(kvs); i += 2 {
		m.Insert(kvs[i], kvs[i+1])
	}
	return m
}

func encodeString(t *testing.T, n *node.Node, opts ...Option) string {
	t.Helper()
	var sb strings.Builder
	if err := Encode(n, &sb, opts...); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

type encodeTest struct {
	name string
	n    *node.Node
	out  string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "scalar",
			n:    scalar("hello"),
			out:  "hello",
		},
		{
			name: "null",
			n:    node.New(),
			out:  "null",
		},
		{
			name: "block map",
			n:    mapOf(node.BlockStyle, scalar("a"), scalar("1")),
			out:  "a: 1\n",
		},
		{
			name: "block seq",
			n:    seqOf(node.BlockStyle, scalar("1"), scalar("2")),
			out:  "- 1\n- 2\n",
		},
		{
			name: "seq of maps",
			n: seqOf(node.BlockStyle,
				mapOf(node.BlockStyle,
					scalar("a"), scalar("1"),
					scalar("b"), scalar("2")),
				scalar("3")),
			out: "- a: 1\n  b: 2\n- 3\n",
		},
		{
			name: "nested block map",
			n: mapOf(node.BlockStyle,
				scalar("a"), mapOf(node.BlockStyle, scalar("b"), scalar("1"))),
			out: "a: \n  b: 1\n",
		},
		{
			name: "nested block seq",
			n:    seqOf(node.BlockStyle, seqOf(node.BlockStyle, scalar("1"))),
			out:  "- - 1\n",
		},
		{
			name: "flow map",
			n:    mapOf(node.FlowStyle, scalar("a"), scalar("1"), scalar("b"), scalar("2")),
			out:  "{a: 1, b: 2}",
		},
		{
			name: "flow seq",
			n:    seqOf(node.FlowStyle, scalar("1"), scalar("2")),
			out:  "[1, 2]",
		},
		{
			name: "flow in block",
			n: mapOf(node.BlockStyle,
				scalar("a"), seqOf(node.FlowStyle, scalar("1"), scalar("2"))),
			out: "a: [1, 2]\n",
		},
		{
			name: "complex key",
			n: mapOf(node.BlockStyle,
				seqOf(node.FlowStyle, scalar("4"), scalar("5")),
				mapOf(node.FlowStyle, scalar("c"), scalar("6"))),
			out: "? [4, 5]: {c: 6}\n",
		},
		{
			name: "null value",
			n:    mapOf(node.BlockStyle, scalar("a"), node.New()),
			out:  "a: null\n",
		},
		{
			name: "empty flow seq",
			n:    seqOf(node.FlowStyle),
			out:  "[]",
		},
		{
			name: "empty flow map",
			n:    mapOf(node.FlowStyle),
			out:  "{}",
		},
	}
	for _, et := range ets {
		if got := encodeString(t, et.n); got != et.out {
			t.Errorf("%s: got %q, want %q", et.name, got, et.out)
		}
	}
}

// scalars that would reparse as null round-trip as strings
func TestEncodeQuotesNullLike(t *testing.T) {
	for in, want := range map[string]string{
		"":     `""`,
		"~":    `"~"`,
		"null": `"null"`,
	} {
		if got := encodeString(t, scalar(in)); got != want {
			t.Errorf("scalar %q: got %q, want %q", in, got, want)
		}
	}
}

func TestEncodeIndentOption(t *testing.T) {
	n := mapOf(node.BlockStyle,
		scalar("a"), mapOf(node.BlockStyle, scalar("b"), scalar("1")))
	got := encodeString(t, n, Indent(4))
	want := "a: \n    b: 1\n"
	if got != want {
		t.Errorf("indent 4: got %q, want %q", got, want)
	}
}

func TestEncodeColorsKeepColumns(t *testing.T) {
	n := mapOf(node.BlockStyle,
		scalar("a"), scalar("1"),
		scalar("b"), scalar("2"))
	plain := encodeString(t, n)
	colored := encodeString(t, n, WithColors(NewColors()))
	strip := stripANSI(colored)
	if strip != plain {
		t.Errorf("colored output differs beyond escapes:\n%q\n%q", strip, plain)
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
