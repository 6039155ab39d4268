package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, in string) []string {
	t.Helper()
	s := NewScanner(strings.NewReader(in))
	var got []string
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("scan %q: %v", in, err)
		}
		if tok.Type == TNone {
			return got
		}
		got = append(got, tok.Info())
	}
}

type scanTest struct {
	in   string
	toks []string
}

func TestScanBlock(t *testing.T) {
	sts := []scanTest{
		{
			in: `a: 1`,
			toks: []string{
				"TBlockMapStart", "TKey", `TScalar "a"`, "TValue", `TScalar "1"`,
				"TBlockMapEnd",
			},
		},
		{
			in: "a: 1\nb: 2",
			toks: []string{
				"TBlockMapStart",
				"TKey", `TScalar "a"`, "TValue", `TScalar "1"`,
				"TKey", `TScalar "b"`, "TValue", `TScalar "2"`,
				"TBlockMapEnd",
			},
		},
		{
			in: "- 1\n- 2",
			toks: []string{
				"TBlockSeqStart",
				`TBlockEntry "-"`, `TScalar "1"`,
				`TBlockEntry "-"`, `TScalar "2"`,
				"TBlockSeqEnd",
			},
		},
		{
			in: "- a: 1\n  b: 2\n- 3",
			toks: []string{
				"TBlockSeqStart", `TBlockEntry "-"`,
				"TBlockMapStart",
				"TKey", `TScalar "a"`, "TValue", `TScalar "1"`,
				"TKey", `TScalar "b"`, "TValue", `TScalar "2"`,
				"TBlockMapEnd",
				`TBlockEntry "-"`, `TScalar "3"`,
				"TBlockSeqEnd",
			},
		},
		{
			in: "a:\n- 1\n- 2",
			toks: []string{
				"TBlockMapStart", "TKey", `TScalar "a"`, "TValue",
				`TBlockEntry "-"`, `TScalar "1"`,
				`TBlockEntry "-"`, `TScalar "2"`,
				"TBlockMapEnd",
			},
		},
		{
			in: "a:\n  b: 1\nc: 2",
			toks: []string{
				"TBlockMapStart", "TKey", `TScalar "a"`, "TValue",
				"TBlockMapStart", "TKey", `TScalar "b"`, "TValue", `TScalar "1"`,
				"TBlockMapEnd",
				"TKey", `TScalar "c"`, "TValue", `TScalar "2"`,
				"TBlockMapEnd",
			},
		},
		{
			in: "- - 1",
			toks: []string{
				"TBlockSeqStart", `TBlockEntry "-"`,
				"TBlockSeqStart", `TBlockEntry "-"`, `TScalar "1"`,
				"TBlockSeqEnd", "TBlockSeqEnd",
			},
		},
		{
			in: "? [4, 5]\n: {c: 6}",
			toks: []string{
				"TBlockMapStart", "TKey",
				`TFlowSeqStart "["`, `TScalar "4"`, `TFlowEntry ","`, `TScalar "5"`, `TFlowSeqEnd "]"`,
				"TValue",
				`TFlowMapStart "{"`, "TKey", `TScalar "c"`, "TValue", `TScalar "6"`, `TFlowMapEnd "}"`,
				"TBlockMapEnd",
			},
		},
		{
			// comment termination: '#' preceded by whitespace
			in: "a: 1 # note\nb: 2",
			toks: []string{
				"TBlockMapStart",
				"TKey", `TScalar "a"`, "TValue", `TScalar "1"`,
				"TKey", `TScalar "b"`, "TValue", `TScalar "2"`,
				"TBlockMapEnd",
			},
		},
		{
			// '#' not preceded by whitespace stays in the scalar
			in:   `a#b`,
			toks: []string{`TScalar "a#b"`},
		},
		{
			// '-' not followed by whitespace is a plain scalar
			in:   `-foo`,
			toks: []string{`TScalar "-foo"`},
		},
		{
			in:   "hello\nworld",
			toks: []string{`TScalar "hello world"`},
		},
		{
			in: "---\na: 1\n...",
			toks: []string{
				`TDocStart "---"`,
				"TBlockMapStart", "TKey", `TScalar "a"`, "TValue", `TScalar "1"`,
				"TBlockMapEnd",
				`TDocEnd "..."`,
			},
		},
		{
			in: "a: 1\n---\nb: 2",
			toks: []string{
				"TBlockMapStart", "TKey", `TScalar "a"`, "TValue", `TScalar "1"`,
				"TBlockMapEnd",
				`TDocStart "---"`,
				"TBlockMapStart", "TKey", `TScalar "b"`, "TValue", `TScalar "2"`,
				"TBlockMapEnd",
			},
		},
		{
			// column > 1 or no trailing delimiter: not a document marker
			in:   "---x",
			toks: []string{`TScalar "---x"`},
		},
	}
	for _, st := range sts {
		got := collect(t, st.in)
		if d := cmp.Diff(st.toks, got); d != "" {
			t.Errorf("scan %q: (-want +got)\n%s", st.in, d)
		}
	}
}

func TestScanFlow(t *testing.T) {
	sts := []scanTest{
		{
			in: `[1, 2]`,
			toks: []string{
				`TFlowSeqStart "["`, `TScalar "1"`, `TFlowEntry ","`,
				`TScalar "2"`, `TFlowSeqEnd "]"`,
			},
		},
		{
			in: `{a: 1}`,
			toks: []string{
				`TFlowMapStart "{"`, "TKey", `TScalar "a"`, "TValue",
				`TScalar "1"`, `TFlowMapEnd "}"`,
			},
		},
		{
			in: `{"a":1}`,
			toks: []string{
				`TFlowMapStart "{"`, "TKey", `TScalar "a"`, "TValue",
				`TScalar "1"`, `TFlowMapEnd "}"`,
			},
		},
		{
			in: `[a: b]`,
			toks: []string{
				`TFlowSeqStart "["`, "TKey", `TScalar "a"`, "TValue",
				`TScalar "b"`, `TFlowSeqEnd "]"`,
			},
		},
		{
			in: `[[1], {a: 2}]`,
			toks: []string{
				`TFlowSeqStart "["`,
				`TFlowSeqStart "["`, `TScalar "1"`, `TFlowSeqEnd "]"`,
				`TFlowEntry ","`,
				`TFlowMapStart "{"`, "TKey", `TScalar "a"`, "TValue", `TScalar "2"`, `TFlowMapEnd "}"`,
				`TFlowSeqEnd "]"`,
			},
		},
	}
	for _, st := range sts {
		got := collect(t, st.in)
		if d := cmp.Diff(st.toks, got); d != "" {
			t.Errorf("scan %q: (-want +got)\n%s", st.in, d)
		}
	}
}

func TestScanAnchorAlias(t *testing.T) {
	sts := []scanTest{
		{
			in: "a: &x 1\nb: *x",
			toks: []string{
				"TBlockMapStart",
				"TKey", `TScalar "a"`, "TValue", `TAnchor "x"`, `TScalar "1"`,
				"TKey", `TScalar "b"`, "TValue", `TAlias "x"`,
				"TBlockMapEnd",
			},
		},
		{
			in: "&a\n  key: value",
			toks: []string{
				`TAnchor "a"`,
				"TBlockMapStart", "TKey", `TScalar "key"`, "TValue", `TScalar "value"`,
				"TBlockMapEnd",
			},
		},
		{
			in: "*x: 1",
			toks: []string{
				"TBlockMapStart", "TKey", `TAlias "x"`, "TValue", `TScalar "1"`,
				"TBlockMapEnd",
			},
		},
	}
	for _, st := range sts {
		got := collect(t, st.in)
		if d := cmp.Diff(st.toks, got); d != "" {
			t.Errorf("scan %q: (-want +got)\n%s", st.in, d)
		}
	}
}

func TestScanErrs(t *testing.T) {
	ets := []struct {
		in string
		e  error
	}{
		{in: `"abc`, e: ErrEOFInScalar},
		{in: `"a\q"`, e: ErrUnknownEscape},
		{in: `a: &`, e: ErrEmptyAnchor},
		{in: `a: *`, e: ErrEmptyAlias},
		{in: `{a: 1`, e: ErrNoMapEnd},
		{in: `[1, 2`, e: ErrNoSeqEnd},
		{in: `[1}`, e: ErrInvalidFlowEnd},
		{in: `]`, e: ErrInvalidFlowEnd},
	}
	for _, et := range ets {
		s := NewScanner(strings.NewReader(et.in))
		var err error
		for {
			var tok Token
			tok, err = s.Next()
			if err != nil || tok.Type == TNone {
				break
			}
		}
		if !errors.Is(err, et.e) {
			t.Errorf("scan %q: got error %v, want %v", et.in, err, et.e)
		}
	}
}

func TestScanNullTokens(t *testing.T) {
	for _, in := range []string{"~", "null", "a: ~"} {
		s := NewScanner(strings.NewReader(in))
		sawNull := false
		for {
			tok, err := s.Next()
			if err != nil {
				t.Fatalf("scan %q: %v", in, err)
			}
			if tok.Type == TNone {
				break
			}
			if tok.Type == TScalar && tok.Null {
				sawNull = true
			}
		}
		if !sawNull {
			t.Errorf("scan %q: no null scalar token", in)
		}
	}

	// quoted "~" stays a string
	s := NewScanner(strings.NewReader(`"~"`))
	tok, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Type != TScalar || tok.Null || tok.Value != "~" {
		t.Errorf(`scan "~": got %s null=%v`, tok.Info(), tok.Null)
	}
}

func TestScanMarks(t *testing.T) {
	s := NewScanner(strings.NewReader("a: 1\nb: 2"))
	var marks []Mark
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type == TNone {
			break
		}
		if tok.Type == TScalar {
			marks = append(marks, tok.Mark)
		}
	}
	want := []Mark{{1, 1}, {1, 4}, {2, 1}, {2, 4}}
	if d := cmp.Diff(want, marks); d != "" {
		t.Errorf("scalar marks: (-want +got)\n%s", d)
	}
}
