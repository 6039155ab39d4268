package token

var escapeMap = map[int]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'e':  0x1b,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'0':  0,
}

func (s *Scanner) escape() (byte, error) {
	s.next() // backslash
	m := s.input.Mark()
	c := s.next()
	if b, ok := escapeMap[c]; ok {
		return b, nil
	}
	return 0, scanErrAt(ErrUnknownEscape, m)
}

// scanSpecialScalar recognizes the literal/folded indicator and chomping,
// then hands off to the plain scalar loop with the replacement flags set.
func (s *Scanner) scanSpecialScalar() error {
	if s.next() == '|' {
		s.replace = '\n'
	} else {
		s.replace = ' '
	}
	s.inSpecial = true
	switch {
	case s.input.Peek() == '-':
		s.appendNL = false
		s.next()
	case s.input.Peek() != EOF && isDelimiter(s.input.Peek()):
		s.appendNL = true
	default:
		return scanErrAt(ErrNoNewline, s.input.Mark())
	}
	s.skipToNextToken()
	return s.scanPlainScalar()
}

func (s *Scanner) scanQuoteScalar() error {
	startIndent := s.curIndent
	quote := s.next()
	style := SingleQuoted
	if quote == '"' {
		style = DoubleQuoted
	}
	var val []byte
	for {
		c := s.input.Peek()
		if c == EOF {
			return scanErrAt(ErrEOFInScalar, s.input.Mark())
		}
		if c == quote {
			s.next()
			if quote == '\'' && s.input.Peek() == '\'' {
				s.next()
				val = append(val, '\'')
				continue
			}
			break
		}
		switch {
		case c == '\\' && quote == '"':
			b, err := s.escape()
			if err != nil {
				return err
			}
			val = append(val, b)
		case c == '\n':
			val = s.foldNewlines(val, ' ')
			for s.input.Peek() == ' ' {
				s.next()
			}
		default:
			val = append(val, byte(s.next()))
		}
	}
	for s.input.Peek() == ' ' || s.input.Peek() == '\t' {
		s.next()
	}
	s.endScalar()
	s.canBeJSON = true
	if s.matchValue() {
		s.pushIndent(indentMap, startIndent)
		s.push(Token{Type: TKey, Mark: s.mark})
		s.push(Token{Type: TScalar, Value: string(val), Style: style, Mark: s.mark})
		return nil
	}
	s.push(Token{Type: TScalar, Value: string(val), Style: style, Mark: s.mark})
	return s.popIndent()
}

func (s *Scanner) scanPlainScalar() error {
	startIndent := s.curIndent
	wasSpecial := s.inSpecial
	var val []byte
	isKey := false

	if !(s.inBlock() && s.curIndentNow() < s.minIndent) {
	loop:
		for s.input.Good() {
			c := s.input.Peek()
			switch {
			case c == '\n':
				val = s.foldNewlines(val, s.replace)
				for s.input.Peek() == ' ' {
					s.next()
				}
				if !s.input.Good() {
					break loop
				}
				if s.inBlock() && s.curIndentNow() < s.minIndent {
					break loop
				}
				if !wasSpecial && s.inBlock() && s.input.Mark().Column == 1 &&
					(s.matchIndicator("---") || s.matchIndicator("...")) {
					break loop
				}
			case !wasSpecial && c == ':' && s.isDelimiterAt(1):
				isKey = true
				break loop
			case !s.inBlock() && (c == ',' || c == ']' || c == '}'):
				break loop
			case !wasSpecial && c == '#' && len(val) > 0 && isFoldByte(val[len(val)-1]):
				break loop
			default:
				val = append(val, byte(s.next()))
			}
		}
	}

	val = trimTrailing(val)
	if len(val) > 0 && s.appendNL && !isKey {
		val = append(val, '\n')
	}
	s.replace = ' '
	s.appendNL = false
	s.inSpecial = false
	s.endScalar()

	style := PlainScalar
	if wasSpecial {
		style = SpecialScalar
	}

	if isKey {
		s.pushIndent(indentMap, startIndent)
		s.push(Token{Type: TKey, Mark: s.mark})
		s.push(Token{Type: TScalar, Value: string(val), Style: style, Mark: s.mark})
		return nil
	}

	tok := Token{Type: TScalar, Value: string(val), Style: style, Mark: s.mark}
	if !wasSpecial {
		switch string(val) {
		case "", "~", "null":
			tok.Null = true
		}
	}
	s.push(tok)
	return s.popIndent()
}

// foldNewlines consumes a run of newlines and appends its folded form:
// a single newline becomes the replacement character, a run of N
// becomes N-1 literal newlines (N for a literal scalar, whose
// replacement is itself a newline).
func (s *Scanner) foldNewlines(val []byte, replace byte) []byte {
	count := 0
	for s.input.Peek() == '\n' {
		s.next()
		count++
	}
	if count == 1 {
		return append(val, replace)
	}
	if replace == '\n' {
		count++
	}
	for i := 1; i < count; i++ {
		val = append(val, '\n')
	}
	return val
}

func isFoldByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func trimTrailing(val []byte) []byte {
	i := len(val)
	for i > 0 && isFoldByte(val[i-1]) {
		i--
	}
	return val[:i]
}
