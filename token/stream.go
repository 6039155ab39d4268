package token

import (
	"io"

	"github.com/huzife/cyaml/utf"
)

// EOF is returned by Peek, Get and At once the input is exhausted. It is
// distinct from any byte value.
const EOF = -1

// Stream is the scanner's character source. It wraps a byte input behind
// the UTF front-end and exposes single-character peeking, unbounded
// lookahead and the current position.
type Stream struct {
	in   io.Reader
	buf  []byte
	eof  bool
	mark Mark
}

// NewStream wraps r with encoding detection and positions the stream at
// line 1, column 1.
func NewStream(r io.Reader) *Stream {
	s := &Stream{
		in:   utf.NewReader(r),
		mark: Mark{Line: 1, Column: 1},
	}
	s.ReadTo(1)
	return s
}

// Good reports whether there is at least one unconsumed character.
func (s *Stream) Good() bool {
	if len(s.buf) > 0 {
		return true
	}
	return s.ReadTo(1)
}

// Peek returns the next character without consuming it.
func (s *Stream) Peek() int {
	if !s.ReadTo(1) {
		return EOF
	}
	return int(s.buf[0])
}

// At returns the i-th character ahead, 0-based. It returns EOF past the
// end of input.
func (s *Stream) At(i int) int {
	if !s.ReadTo(i + 1) {
		return EOF
	}
	return int(s.buf[i])
}

// Get consumes and returns the next character, updating the position.
// A newline advances the line and resets the column.
func (s *Stream) Get() int {
	if !s.ReadTo(1) {
		return EOF
	}
	c := s.buf[0]
	s.buf = s.buf[1:]
	if c == '\n' {
		s.mark.Line++
		s.mark.Column = 1
	} else {
		s.mark.Column++
	}
	return int(c)
}

// ReadTo ensures at least n characters are buffered. It reports whether
// that many are available.
func (s *Stream) ReadTo(n int) bool {
	for !s.eof && len(s.buf) < n {
		var chunk [256]byte
		m, err := s.in.Read(chunk[:])
		if m > 0 {
			s.buf = append(s.buf, chunk[:m]...)
		}
		if err != nil {
			s.eof = true
		}
	}
	return len(s.buf) >= n
}

// Mark returns the position of the next unconsumed character.
func (s *Stream) Mark() Mark {
	return s.mark
}
