// Package parse implements an LL(1) recursive-descent parser over the
// token stream. It allocates no nodes; structure is reported to an
// event.Handler.
package parse

import (
	"io"

	"github.com/huzife/cyaml/event"
	"github.com/huzife/cyaml/node"
	"github.com/huzife/cyaml/token"
)

type Parser struct {
	s *token.Scanner
	h event.Handler
}

func NewParser(r io.Reader, h event.Handler) *Parser {
	return &Parser{s: token.NewScanner(r), h: h}
}

func (p *Parser) peek() (token.Token, error) {
	return p.s.Peek()
}

func (p *Parser) next() (token.Token, error) {
	return p.s.Next()
}

func (p *Parser) expect(want token.Type) (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != want {
		return token.Token{}, expected(want, tok)
	}
	return p.next()
}

func (p *Parser) at(sets ...firstSet) (token.Token, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, false, err
	}
	for _, s := range sets {
		if s[tok.Type] {
			return tok, true, nil
		}
	}
	return tok, false, nil
}

// ParseNextDocument consumes one document, reporting it to the handler.
// It returns false at end of stream so callers can drain multi-document
// inputs.
func (p *Parser) ParseNextDocument() (bool, error) {
	if p.s.End() {
		return false, nil
	}
	if err := p.parseDocument(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) parseDocument() error {
	progressed := false
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Type == token.TDocStart {
		if _, err := p.next(); err != nil {
			return err
		}
		progressed = true
	}
	if err := p.h.OnDocumentStart(tok.Mark); err != nil {
		return err
	}

	tok, ok, err := p.at(blockNodeFirst)
	if err != nil {
		return err
	}
	if ok {
		if err := p.parseBlockNode(); err != nil {
			return err
		}
		progressed = true
	} else {
		if err := p.h.OnNull(tok.Mark, ""); err != nil {
			return err
		}
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type != token.TDocEnd {
			if !progressed && tok.Type != token.TNone {
				return unexpected(tok)
			}
			break
		}
		if _, err := p.next(); err != nil {
			return err
		}
		progressed = true
	}
	return p.h.OnDocumentEnd()
}

func (p *Parser) parseProperties() (string, error) {
	anchor, err := p.expect(token.TAnchor)
	if err != nil {
		return "", err
	}
	return anchor.Value, nil
}

func (p *Parser) parseBlockNode() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Type == token.TAlias {
		alias, err := p.next()
		if err != nil {
			return err
		}
		return p.h.OnAlias(alias.Mark, alias.Value)
	}

	anchor := ""
	if _, ok, err := p.at(propertiesFirst); err != nil {
		return err
	} else if ok {
		if anchor, err = p.parseProperties(); err != nil {
			return err
		}
	}

	tok, ok, err := p.at(blockContentFirst)
	if err != nil {
		return err
	}
	if !ok {
		if anchor != "" {
			return p.h.OnNull(tok.Mark, anchor)
		}
		return unexpected(tok)
	}
	return p.parseBlockContent(anchor)
}

func (p *Parser) parseBlockNodeOrIndentlessSeq() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Type == token.TAlias {
		alias, err := p.next()
		if err != nil {
			return err
		}
		return p.h.OnAlias(alias.Mark, alias.Value)
	}

	anchor := ""
	if _, ok, err := p.at(propertiesFirst); err != nil {
		return err
	} else if ok {
		if anchor, err = p.parseProperties(); err != nil {
			return err
		}
	}

	tok, err = p.peek()
	if err != nil {
		return err
	}
	switch {
	case blockContentFirst[tok.Type]:
		return p.parseBlockContent(anchor)
	case indentlessSeqFirst[tok.Type]:
		return p.parseIndentlessSeq(anchor)
	}
	if anchor != "" {
		return p.h.OnNull(tok.Mark, anchor)
	}
	return unexpected(tok)
}

func (p *Parser) parseFlowNode() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Type == token.TAlias {
		alias, err := p.next()
		if err != nil {
			return err
		}
		return p.h.OnAlias(alias.Mark, alias.Value)
	}

	anchor := ""
	if _, ok, err := p.at(propertiesFirst); err != nil {
		return err
	} else if ok {
		if anchor, err = p.parseProperties(); err != nil {
			return err
		}
	}

	tok, ok, err := p.at(flowContentFirst)
	if err != nil {
		return err
	}
	if !ok {
		if anchor != "" {
			return p.h.OnNull(tok.Mark, anchor)
		}
		return unexpected(tok)
	}
	return p.parseFlowContent(anchor)
}

func (p *Parser) parseBlockContent(anchor string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	switch {
	case blockCollectionFirst[tok.Type]:
		return p.parseBlockCollection(anchor)
	case flowCollectionFirst[tok.Type]:
		return p.parseFlowCollection(anchor)
	case tok.Type == token.TScalar:
		scalar, err := p.next()
		if err != nil {
			return err
		}
		if scalar.Null {
			return p.h.OnNull(scalar.Mark, anchor)
		}
		return p.h.OnScalar(scalar.Mark, anchor, scalar.Value)
	}
	return unexpected(tok)
}

func (p *Parser) parseFlowContent(anchor string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	switch {
	case flowCollectionFirst[tok.Type]:
		return p.parseFlowCollection(anchor)
	case tok.Type == token.TScalar:
		scalar, err := p.next()
		if err != nil {
			return err
		}
		if scalar.Null {
			return p.h.OnNull(scalar.Mark, anchor)
		}
		return p.h.OnScalar(scalar.Mark, anchor, scalar.Value)
	}
	return unexpected(tok)
}

func (p *Parser) parseBlockCollection(anchor string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	switch tok.Type {
	case token.TBlockMapStart:
		return p.parseBlockMap(anchor)
	case token.TBlockSeqStart:
		return p.parseBlockSeq(anchor)
	}
	return unexpected(tok)
}

func (p *Parser) parseFlowCollection(anchor string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	switch tok.Type {
	case token.TFlowMapStart:
		return p.parseFlowMap(anchor)
	case token.TFlowSeqStart:
		return p.parseFlowSeq(anchor)
	}
	return unexpected(tok)
}

func (p *Parser) parseBlockMap(anchor string) error {
	start, err := p.expect(token.TBlockMapStart)
	if err != nil {
		return err
	}
	if err := p.h.OnMapStart(start.Mark, anchor, node.BlockStyle); err != nil {
		return err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type == token.TBlockMapEnd {
			break
		}

		progressed := false
		null := true
		if tok.Type == token.TKey {
			if _, err := p.next(); err != nil {
				return err
			}
			progressed = true
			if _, ok, err := p.at(blockNodeOrIndentlessSeqFirst); err != nil {
				return err
			} else if ok {
				if err := p.parseBlockNodeOrIndentlessSeq(); err != nil {
					return err
				}
				null = false
			}
		}
		if null {
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
		}

		null = true
		tok, err = p.peek()
		if err != nil {
			return err
		}
		if tok.Type == token.TValue {
			if _, err := p.next(); err != nil {
				return err
			}
			progressed = true
			if _, ok, err := p.at(blockNodeOrIndentlessSeqFirst); err != nil {
				return err
			} else if ok {
				if err := p.parseBlockNodeOrIndentlessSeq(); err != nil {
					return err
				}
				null = false
			}
		}
		if null {
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
		}

		if !progressed {
			return unexpected(tok)
		}
	}

	if _, err := p.expect(token.TBlockMapEnd); err != nil {
		return err
	}
	return p.h.OnMapEnd()
}

func (p *Parser) parseBlockSeq(anchor string) error {
	start, err := p.expect(token.TBlockSeqStart)
	if err != nil {
		return err
	}
	if err := p.h.OnSeqStart(start.Mark, anchor, node.BlockStyle); err != nil {
		return err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type == token.TBlockSeqEnd {
			break
		}
		if _, err := p.expect(token.TBlockEntry); err != nil {
			return err
		}
		if tok, ok, err := p.at(blockNodeFirst); err != nil {
			return err
		} else if ok {
			if err := p.parseBlockNode(); err != nil {
				return err
			}
		} else {
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
		}
	}

	if _, err := p.expect(token.TBlockSeqEnd); err != nil {
		return err
	}
	return p.h.OnSeqEnd()
}

func (p *Parser) parseIndentlessSeq(anchor string) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if err := p.h.OnSeqStart(tok.Mark, anchor, node.BlockStyle); err != nil {
		return err
	}

	for {
		if _, err := p.expect(token.TBlockEntry); err != nil {
			return err
		}
		if tok, ok, err := p.at(blockNodeFirst); err != nil {
			return err
		} else if ok {
			if err := p.parseBlockNode(); err != nil {
				return err
			}
		} else {
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
		}

		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type != token.TBlockEntry {
			break
		}
	}
	return p.h.OnSeqEnd()
}

func (p *Parser) parseFlowMap(anchor string) error {
	start, err := p.expect(token.TFlowMapStart)
	if err != nil {
		return err
	}
	if err := p.h.OnMapStart(start.Mark, anchor, node.FlowStyle); err != nil {
		return err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type == token.TFlowMapEnd {
			break
		}

		if tok.Type == token.TKey || flowNodeFirst[tok.Type] {
			if err := p.parseFlowMapEntry(); err != nil {
				return err
			}
		} else {
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
		}

		tok, err = p.peek()
		if err != nil {
			return err
		}
		if tok.Type != token.TFlowMapEnd {
			if _, err := p.expect(token.TFlowEntry); err != nil {
				return err
			}
		}
	}

	if _, err := p.expect(token.TFlowMapEnd); err != nil {
		return err
	}
	return p.h.OnMapEnd()
}

func (p *Parser) parseFlowSeq(anchor string) error {
	start, err := p.expect(token.TFlowSeqStart)
	if err != nil {
		return err
	}
	if err := p.h.OnSeqStart(start.Mark, anchor, node.FlowStyle); err != nil {
		return err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type == token.TFlowSeqEnd {
			break
		}

		if tok.Type == token.TKey || flowNodeFirst[tok.Type] {
			if err := p.parseFlowSeqEntry(); err != nil {
				return err
			}
		} else {
			if err := p.h.OnNull(tok.Mark, ""); err != nil {
				return err
			}
		}

		tok, err = p.peek()
		if err != nil {
			return err
		}
		if tok.Type != token.TFlowSeqEnd {
			if _, err := p.expect(token.TFlowEntry); err != nil {
				return err
			}
		}
	}

	if _, err := p.expect(token.TFlowSeqEnd); err != nil {
		return err
	}
	return p.h.OnSeqEnd()
}

func (p *Parser) parseFlowMapEntry() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if flowNodeFirst[tok.Type] {
		if err := p.parseFlowNode(); err != nil {
			return err
		}
		return p.h.OnNull(tok.Mark, "")
	}
	if tok.Type != token.TKey {
		return unexpected(tok)
	}
	if _, err := p.next(); err != nil {
		return err
	}

	if tok, ok, err := p.at(flowNodeFirst); err != nil {
		return err
	} else if ok {
		if err := p.parseFlowNode(); err != nil {
			return err
		}
	} else {
		if err := p.h.OnNull(tok.Mark, ""); err != nil {
			return err
		}
	}

	null := true
	tok, err = p.peek()
	if err != nil {
		return err
	}
	if tok.Type == token.TValue {
		if _, err := p.next(); err != nil {
			return err
		}
		if _, ok, err := p.at(flowNodeFirst); err != nil {
			return err
		} else if ok {
			if err := p.parseFlowNode(); err != nil {
				return err
			}
			null = false
		}
	}
	if null {
		return p.h.OnNull(tok.Mark, "")
	}
	return nil
}

// parseFlowSeqEntry wraps a key/value pair appearing directly in a flow
// sequence in an implicit single-pair flow map, matching the semantics
// of `[a: b]`.
func (p *Parser) parseFlowSeqEntry() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if flowNodeFirst[tok.Type] {
		return p.parseFlowNode()
	}
	if tok.Type != token.TKey {
		return unexpected(tok)
	}
	if _, err := p.next(); err != nil {
		return err
	}

	if err := p.h.OnMapStart(tok.Mark, "", node.FlowStyle); err != nil {
		return err
	}

	if tok, ok, err := p.at(flowNodeFirst); err != nil {
		return err
	} else if ok {
		if err := p.parseFlowNode(); err != nil {
			return err
		}
	} else {
		if err := p.h.OnNull(tok.Mark, ""); err != nil {
			return err
		}
	}

	null := true
	tok, err = p.peek()
	if err != nil {
		return err
	}
	if tok.Type == token.TValue {
		if _, err := p.next(); err != nil {
			return err
		}
		if _, ok, err := p.at(flowNodeFirst); err != nil {
			return err
		} else if ok {
			if err := p.parseFlowNode(); err != nil {
				return err
			}
			null = false
		}
	}
	if null {
		if err := p.h.OnNull(tok.Mark, ""); err != nil {
			return err
		}
	}
	return p.h.OnMapEnd()
}
