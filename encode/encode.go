// Package encode serializes a node tree back to YAML text.
package encode

import (
	"io"
	"strings"

	"github.com/huzife/cyaml/node"
)

type encState struct {
	line, col int
	indent    int

	color func(node.Type, ColorAttr, string) string
}

// Encode writes n to w. Nodes carrying flow style are written in flow
// form, everything else in block form.
func Encode(n *node.Node, w io.Writer, opts ...Option) error {
	es := &encState{line: 1, col: 1, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es.writeNode(w, n, 0)
}

// write emits s and advances the running cursor.
func (es *encState) write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		es.line += strings.Count(s, "\n")
		es.col = len(s) - i
	} else {
		es.col += len(s)
	}
	return nil
}

// writeColored emits s with optional coloring; the cursor advances by
// the uncolored length.
func (es *encState) writeColored(w io.Writer, t node.Type, attr ColorAttr, s string) error {
	out := s
	if es.color != nil {
		out = es.color(t, attr, s)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	es.col += len(s)
	return nil
}

func (es *encState) writeNewLine(w io.Writer) error {
	return es.write(w, "\n")
}

// fillBlank pads with spaces up to the target indent. Content already
// past it (a `- ` or `? ` prefix) is left alone.
func (es *encState) fillBlank(w io.Writer, indent int) error {
	if es.col < indent+1 {
		return es.write(w, strings.Repeat(" ", indent+1-es.col))
	}
	return nil
}

func (es *encState) increase(indent int) int {
	return indent + es.indent
}

// lineStyle reports whether n is written on a single line.
func lineStyle(n *node.Node) bool {
	return n.IsScalar() || n.IsNull() || n.Style() == node.FlowStyle
}

func (es *encState) writeNode(w io.Writer, n *node.Node, indent int) error {
	if n.Style() == node.BlockStyle {
		return es.writeBlockNode(w, n, indent)
	}
	return es.writeFlowNode(w, n)
}

func (es *encState) writeBlockNode(w io.Writer, n *node.Node, indent int) error {
	switch {
	case n.IsNull():
		return es.writeColored(w, node.NullType, ValueColor, "null")
	case n.IsMap():
		return es.writeBlockMap(w, n, indent)
	case n.IsSeq():
		return es.writeBlockSeq(w, n, indent)
	}
	return es.writeScalar(w, n, ValueColor)
}

func (es *encState) writeFlowNode(w io.Writer, n *node.Node) error {
	switch {
	case n.IsNull():
		return es.writeColored(w, node.NullType, ValueColor, "null")
	case n.IsMap():
		return es.writeFlowMap(w, n)
	case n.IsSeq():
		return es.writeFlowSeq(w, n)
	}
	return es.writeScalar(w, n, ValueColor)
}

// writeScalar quotes the empty string, "~" and "null" so they reparse
// as strings rather than nulls.
func (es *encState) writeScalar(w io.Writer, n *node.Node, attr ColorAttr) error {
	str := n.Scalar()
	switch str {
	case "", "~", "null":
		str = `"` + str + `"`
	}
	return es.writeColored(w, node.ScalarType, attr, str)
}

func (es *encState) writeBlockMap(w io.Writer, n *node.Node, indent int) error {
	for _, kv := range n.Pairs() {
		if err := es.writeKey(w, kv.Key, indent); err != nil {
			return err
		}
		if err := es.writeValue(w, kv.Val, indent); err != nil {
			return err
		}
	}
	return nil
}

func (es *encState) writeBlockSeq(w io.Writer, n *node.Node, indent int) error {
	for _, v := range n.Seq() {
		if err := es.fillBlank(w, indent); err != nil {
			return err
		}
		if err := es.writeColored(w, node.SeqType, SepColor, "- "); err != nil {
			return err
		}
		if err := es.writeNode(w, v, es.increase(indent)); err != nil {
			return err
		}
		if lineStyle(v) {
			if err := es.writeNewLine(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (es *encState) writeFlowMap(w io.Writer, n *node.Node) error {
	if err := es.writeColored(w, node.MapType, SepColor, "{"); err != nil {
		return err
	}
	for i, kv := range n.Pairs() {
		if i > 0 {
			if err := es.writeColored(w, node.MapType, SepColor, ", "); err != nil {
				return err
			}
		}
		if kv.Key.IsScalar() {
			if err := es.writeScalar(w, kv.Key, KeyColor); err != nil {
				return err
			}
		} else {
			if err := es.writeFlowNode(w, kv.Key); err != nil {
				return err
			}
		}
		if err := es.writeColored(w, node.MapType, SepColor, ": "); err != nil {
			return err
		}
		if err := es.writeFlowNode(w, kv.Val); err != nil {
			return err
		}
	}
	return es.writeColored(w, node.MapType, SepColor, "}")
}

func (es *encState) writeFlowSeq(w io.Writer, n *node.Node) error {
	if err := es.writeColored(w, node.SeqType, SepColor, "["); err != nil {
		return err
	}
	for i, v := range n.Seq() {
		if i > 0 {
			if err := es.writeColored(w, node.SeqType, SepColor, ", "); err != nil {
				return err
			}
		}
		if err := es.writeFlowNode(w, v); err != nil {
			return err
		}
	}
	return es.writeColored(w, node.SeqType, SepColor, "]")
}

func (es *encState) writeKey(w io.Writer, key *node.Node, indent int) error {
	if err := es.fillBlank(w, indent); err != nil {
		return err
	}
	if key.IsCollection() {
		if err := es.writeColored(w, node.MapType, SepColor, "? "); err != nil {
			return err
		}
		return es.writeNode(w, key, es.increase(indent))
	}
	if key.IsScalar() {
		return es.writeScalar(w, key, KeyColor)
	}
	return es.writeNode(w, key, es.increase(indent))
}

func (es *encState) writeValue(w io.Writer, val *node.Node, indent int) error {
	if err := es.fillBlank(w, indent); err != nil {
		return err
	}
	if err := es.writeColored(w, node.MapType, SepColor, ":"); err != nil {
		return err
	}
	if err := es.write(w, " "); err != nil {
		return err
	}
	if es.col > es.increase(indent)+1 && !lineStyle(val) {
		if err := es.writeNewLine(w); err != nil {
			return err
		}
	}
	if err := es.writeNode(w, val, es.increase(indent)); err != nil {
		return err
	}
	if lineStyle(val) {
		return es.writeNewLine(w)
	}
	return nil
}
