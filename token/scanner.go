package token

import (
	"fmt"
	"io"
	"os"

	"github.com/huzife/cyaml/debug"
)

type indentType int

const (
	indentMap indentType = iota
	indentSeq
)

type indentFrame struct {
	typ indentType
	col int
}

type flowType int

const (
	flowMap flowType = iota
	flowSeq
)

// Scanner turns a character stream into a token stream. It keeps the
// queue at least two tokens deep so the parser can look one token ahead.
type Scanner struct {
	input *Stream
	mark  Mark // position of the token being scanned

	tabCnt    int
	curIndent int
	minIndent int
	ignoreTab bool
	scanEnd   bool

	indents []indentFrame
	flows   []flowType
	tokens  []Token

	replace   byte // newline replacement for the scalar under construction
	appendNL  bool // chomping: append one final newline
	inSpecial bool // scanning a literal/folded scalar

	anchorIndent int
	afterAnchor  bool

	canBeJSON bool

	err error
}

func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		input:     NewStream(r),
		replace:   ' ',
		ignoreTab: true,
	}
	s.fill()
	return s
}

// Next consumes and returns the next token. Once the stream is
// exhausted it returns a TNone token.
func (s *Scanner) Next() (Token, error) {
	s.fill()
	if len(s.tokens) == 0 {
		return Token{}, s.err
	}
	t := s.tokens[0]
	s.tokens = s.tokens[1:]
	return t, nil
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (Token, error) {
	s.fill()
	if len(s.tokens) == 0 {
		return Token{}, s.err
	}
	return s.tokens[0], nil
}

// End reports whether all tokens have been produced and consumed.
func (s *Scanner) End() bool {
	s.fill()
	return s.scanEnd && len(s.tokens) == 0 && s.err == nil
}

func (s *Scanner) fill() {
	for s.err == nil && !s.scanEnd && len(s.tokens) < 2 {
		s.err = s.scan()
	}
}

func (s *Scanner) push(t Token) {
	if t.Mark.IsZero() {
		t.Mark = s.mark
	}
	if debug.Tokens() {
		fmt.Fprintf(os.Stderr, "cyaml token: %s %s\n", t.Info(), t.Mark)
	}
	switch t.Type {
	case TScalar, TAlias, TBlockMapStart, TBlockSeqStart, TFlowMapStart, TFlowSeqStart:
		s.afterAnchor = false
	}
	s.tokens = append(s.tokens, t)
}

// next consumes one character, tracking tabs for indent bookkeeping.
func (s *Scanner) next() int {
	c := s.input.Get()
	switch c {
	case '\n':
		s.tabCnt = 0
		s.ignoreTab = true
	case '\t':
		if s.ignoreTab {
			s.tabCnt++
		}
	}
	return c
}

func (s *Scanner) updateIndent() {
	s.ignoreTab = false
	s.curIndent = s.curIndentNow()
}

func (s *Scanner) curIndentNow() int {
	return s.input.Mark().Column - s.tabCnt - 1
}

func isDelimiter(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == EOF
}

func isFlowIndicator(c int) bool {
	switch c {
	case '{', '}', '[', ']', ',':
		return true
	}
	return false
}

func (s *Scanner) isDelimiterAt(i int) bool {
	return isDelimiter(s.input.At(i))
}

func (s *Scanner) inBlock() bool {
	return len(s.flows) == 0
}

// skipToNextToken consumes whitespace and comments up to the next
// significant character.
func (s *Scanner) skipToNextToken() {
	for s.input.Good() {
		c := s.input.Peek()
		if c != EOF && isDelimiter(c) {
			s.next()
			continue
		}
		if c == '#' {
			for s.input.Good() && s.input.Peek() != '\n' {
				s.next()
			}
			continue
		}
		break
	}
}

// scan produces the next token (or tokens, when indent frames close).
func (s *Scanner) scan() error {
	s.skipToNextToken()
	s.mark = s.input.Mark()
	s.updateIndent()

	if !s.input.Good() {
		return s.streamEnd()
	}

	if s.input.Peek() != ':' {
		s.canBeJSON = false
	}

	if s.inBlock() && s.mark.Column == 1 {
		if s.matchIndicator("---") {
			return s.scanDocStart()
		}
		if s.matchIndicator("...") {
			return s.scanDocEnd()
		}
	}

	c := s.input.Peek()
	switch c {
	case '&':
		return s.scanAnchor()
	case '*':
		return s.scanAlias()
	case '{', '[':
		return s.scanFlowStart()
	case '}', ']':
		return s.scanFlowEnd()
	case ',':
		if !s.inBlock() {
			return s.scanFlowEntry()
		}
	case '-':
		if s.inBlock() && s.isDelimiterAt(1) {
			return s.scanBlockEntry()
		}
	case '?':
		if s.inBlock() && s.isDelimiterAt(1) {
			return s.scanKey()
		}
	}

	if s.matchValue() {
		return s.scanValue()
	}

	switch c {
	case '|', '>':
		if s.inBlock() {
			return s.scanSpecialScalar()
		}
		return scanErrAt(ErrUnknownToken, s.mark)
	case '\'', '"':
		return s.scanQuoteScalar()
	}

	return s.scanPlainScalar()
}

// matchIndicator reports whether the stream starts with pat followed by
// a delimiter.
func (s *Scanner) matchIndicator(pat string) bool {
	for i := 0; i < len(pat); i++ {
		if s.input.At(i) != int(pat[i]) {
			return false
		}
	}
	return s.isDelimiterAt(len(pat))
}

// matchValue reports whether the stream is at a mapping-value indicator.
func (s *Scanner) matchValue() bool {
	if s.input.Peek() != ':' {
		return false
	}
	if s.isDelimiterAt(1) {
		return true
	}
	if s.inBlock() {
		return false
	}
	if s.canBeJSON {
		return true
	}
	c := s.input.At(1)
	return c == ']' || c == '}' || c == ','
}

func (s *Scanner) startScalar() {
	s.minIndent = s.curIndent + 1
}

func (s *Scanner) endScalar() {
	s.minIndent = 0
}

// pushIndent opens a block collection frame at col unless col does not
// exceed the column of the innermost open frame.
func (s *Scanner) pushIndent(typ indentType, col int) {
	if !s.inBlock() {
		return
	}
	if len(s.indents) > 0 && col <= s.indents[len(s.indents)-1].col {
		return
	}
	start := TBlockMapStart
	if typ == indentSeq {
		start = TBlockSeqStart
	}
	s.push(Token{Type: start, Mark: s.mark})
	s.indents = append(s.indents, indentFrame{typ: typ, col: col})
}

// popIndent closes block frames after a completed node: every frame
// whose column lies beyond the column of the next token is closed.
func (s *Scanner) popIndent() error {
	if !s.inBlock() || s.afterAnchor {
		return nil
	}
	s.skipToNextToken()
	if !s.input.Good() {
		return nil
	}
	col := s.curIndentNow()
	for len(s.indents) > 0 && s.indents[len(s.indents)-1].col > col {
		s.popOneIndent()
	}
	return nil
}

func (s *Scanner) popOneIndent() {
	top := s.indents[len(s.indents)-1]
	s.indents = s.indents[:len(s.indents)-1]
	end := TBlockMapEnd
	if top.typ == indentSeq {
		end = TBlockSeqEnd
	}
	s.push(Token{Type: end, Mark: s.input.Mark()})
}

func (s *Scanner) popAllIndent() {
	for len(s.indents) > 0 {
		s.popOneIndent()
	}
}

func (s *Scanner) streamEnd() error {
	if len(s.flows) > 0 {
		if s.flows[len(s.flows)-1] == flowMap {
			return scanErrAt(ErrNoMapEnd, s.input.Mark())
		}
		return scanErrAt(ErrNoSeqEnd, s.input.Mark())
	}
	s.popAllIndent()
	s.scanEnd = true
	return nil
}
