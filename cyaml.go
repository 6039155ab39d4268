// Package cyaml is a YAML 1.2 codec: a streaming scanner and LL(1)
// parser feeding a SAX-style event stream, a builder producing a
// shared-data node model with anchor/alias support, and an emitter
// writing block or flow YAML back out.
package cyaml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huzife/cyaml/encode"
	"github.com/huzife/cyaml/node"
	"github.com/huzife/cyaml/parse"
)

// Load reads the first document from r. Empty input yields a null
// root.
func Load(r io.Reader) (*node.Node, error) {
	b := newNodeBuilder()
	p := parse.NewParser(r, b)
	ok, err := p.ParseNextDocument()
	if err != nil {
		return nil, err
	}
	if !ok {
		return node.New(), nil
	}
	return b.Root(), nil
}

func LoadString(input string) (*node.Node, error) {
	return Load(strings.NewReader(input))
}

func LoadFile(path string) (*node.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cyaml: load %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadAll reads every document from r in order. On error the documents
// completed before it are returned alongside the error.
func LoadAll(r io.Reader) ([]*node.Node, error) {
	b := newNodeBuilder()
	p := parse.NewParser(r, b)
	var docs []*node.Node
	for {
		ok, err := p.ParseNextDocument()
		if err != nil {
			return docs, err
		}
		if !ok {
			return docs, nil
		}
		docs = append(docs, b.Root())
	}
}

func LoadAllString(input string) ([]*node.Node, error) {
	return LoadAll(strings.NewReader(input))
}

func LoadFileAll(path string) ([]*node.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cyaml: load %s: %w", path, err)
	}
	defer f.Close()
	return LoadAll(f)
}

// Dump writes n to w as YAML text.
func Dump(w io.Writer, n *node.Node, opts ...encode.Option) error {
	return encode.Encode(n, w, opts...)
}

func DumpString(n *node.Node, opts ...encode.Option) (string, error) {
	var sb strings.Builder
	if err := encode.Encode(n, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func DumpFile(path string, n *node.Node, opts ...encode.Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cyaml: dump %s: %w", path, err)
	}
	if err := encode.Encode(n, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
