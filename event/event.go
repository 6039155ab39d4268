// Package event defines the SAX-style event surface between the parser
// and its consumers.
package event

import (
	"github.com/huzife/cyaml/node"
	"github.com/huzife/cyaml/token"
)

// Handler receives the event stream of one or more documents. The
// parser guarantees balanced start/end pairs and balanced key/value
// structure: missing keys and values arrive as OnNull.
type Handler interface {
	OnDocumentStart(m token.Mark) error
	OnDocumentEnd() error
	OnMapStart(m token.Mark, anchor string, style node.Style) error
	OnMapEnd() error
	OnSeqStart(m token.Mark, anchor string, style node.Style) error
	OnSeqEnd() error
	OnScalar(m token.Mark, anchor, value string) error
	OnNull(m token.Mark, anchor string) error
	OnAlias(m token.Mark, name string) error
}
