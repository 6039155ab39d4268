package cyaml

import (
	"errors"
	"fmt"
	"os"

	"github.com/huzife/cyaml/debug"
	"github.com/huzife/cyaml/node"
	"github.com/huzife/cyaml/token"
)

var (
	ErrUnknownAnchor = errors.New("unknown anchor")
	ErrDuplicatedKey = errors.New("duplicated key")
)

func buildErrAt(err error, m token.Mark) error {
	return fmt.Errorf("%s: %w", m, err)
}

// nodeBuilder assembles the document model from the parser's event
// stream. Map pairs alternate key/value through a side stack; the
// complex-key depth counters route children of collection-typed keys.
type nodeBuilder struct {
	stack   []*node.Node
	keys    []*node.Node
	anchors map[string]*node.Node

	mapDepth        int
	complexKeyDepth int

	root *node.Node
	mark token.Mark
}

func newNodeBuilder() *nodeBuilder {
	return &nodeBuilder{anchors: map[string]*node.Node{}}
}

// Root returns the most recently completed document root.
func (b *nodeBuilder) Root() *node.Node {
	return b.root
}

func (b *nodeBuilder) trace(format string, args ...any) {
	if debug.Events() {
		fmt.Fprintf(os.Stderr, "cyaml event: "+format+"\n", args...)
	}
}

func (b *nodeBuilder) OnDocumentStart(m token.Mark) error {
	b.trace("DocumentStart %s", m)
	b.anchors = map[string]*node.Node{}
	b.stack = b.stack[:0]
	b.keys = b.keys[:0]
	b.mapDepth = 0
	b.complexKeyDepth = 0
	return nil
}

func (b *nodeBuilder) OnDocumentEnd() error {
	b.trace("DocumentEnd")
	return nil
}

func (b *nodeBuilder) push(n *node.Node) *node.Node {
	b.stack = append(b.stack, n)
	return n
}

func (b *nodeBuilder) registerAnchor(anchor string, n *node.Node) {
	if anchor != "" {
		b.anchors[anchor] = n
	}
}

func (b *nodeBuilder) OnMapStart(m token.Mark, anchor string, style node.Style) error {
	b.trace("MapStart %s anchor=%q", m, anchor)
	b.mark = m
	n := node.NewType(node.MapType)
	n.SetStyle(style)
	b.push(n)
	b.registerAnchor(anchor, n)

	if b.mapDepth > len(b.keys) {
		b.complexKeyDepth++
	}
	b.mapDepth++
	return nil
}

func (b *nodeBuilder) OnMapEnd() error {
	b.trace("MapEnd")
	if b.complexKeyDepth > 0 {
		b.complexKeyDepth--
	}
	b.mapDepth--
	return b.pop()
}

func (b *nodeBuilder) OnSeqStart(m token.Mark, anchor string, style node.Style) error {
	b.trace("SeqStart %s anchor=%q", m, anchor)
	b.mark = m
	n := node.NewType(node.SeqType)
	n.SetStyle(style)
	b.push(n)
	b.registerAnchor(anchor, n)
	return nil
}

func (b *nodeBuilder) OnSeqEnd() error {
	b.trace("SeqEnd")
	return b.pop()
}

func (b *nodeBuilder) OnScalar(m token.Mark, anchor, value string) error {
	b.trace("Scalar %s %q anchor=%q", m, value, anchor)
	b.mark = m
	n := b.push(node.FromScalar(value))
	b.registerAnchor(anchor, n)
	return b.pop()
}

func (b *nodeBuilder) OnNull(m token.Mark, anchor string) error {
	b.trace("Null %s anchor=%q", m, anchor)
	b.mark = m
	n := b.push(node.New())
	b.registerAnchor(anchor, n)
	return b.pop()
}

func (b *nodeBuilder) OnAlias(m token.Mark, name string) error {
	b.trace("Alias %s *%s", m, name)
	b.mark = m
	target, ok := b.anchors[name]
	if !ok {
		return buildErrAt(fmt.Errorf("%w %q", ErrUnknownAnchor, name), m)
	}
	b.push(node.Ref(target))
	return b.pop()
}

// pop routes a completed child into its parent: appended to a
// sequence, or held as a pending key / married to one for a map.
func (b *nodeBuilder) pop() error {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if len(b.stack) == 0 {
		b.root = n
		return nil
	}

	top := b.stack[len(b.stack)-1]
	switch {
	case top.IsMap():
		depth := b.mapDepth - b.complexKeyDepth
		if len(b.keys) == depth {
			key := b.keys[len(b.keys)-1]
			b.keys = b.keys[:len(b.keys)-1]
			return b.insert(top, key, n)
		}
		b.keys = append(b.keys, n)
	case top.IsSeq():
		top.PushBack(n)
	default:
		return buildErrAt(fmt.Errorf("cannot attach node to %s parent", top.Type()), b.mark)
	}
	return nil
}

func (b *nodeBuilder) insert(parent, key, value *node.Node) error {
	if parent.Contain(key) {
		return buildErrAt(ErrDuplicatedKey, b.mark)
	}
	parent.Insert(key, value)
	return nil
}
