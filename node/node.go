// Package node provides the in-memory YAML document model. Nodes are
// handles over shared data so that anchors and aliases observe each
// other's mutations.
package node

import "fmt"

type Type int

const (
	NullType Type = iota
	MapType
	SeqType
	ScalarType
)

func (t Type) String() string {
	return map[Type]string{
		NullType:   "null",
		MapType:    "map",
		SeqType:    "seq",
		ScalarType: "scalar",
	}[t]
}

type Style int

const (
	BlockStyle Style = iota
	FlowStyle
)

// Node is a handle onto a document value. Multiple handles may share
// one underlying data record; mutation through any handle is observable
// through every handle that shares it.
type Node struct {
	typ   Type
	style Style
	data  *nodeData
}

// New returns a null node.
func New() *Node {
	return NewType(NullType)
}

func NewType(t Type) *Node {
	n := &Node{typ: t, data: newData()}
	n.data.insertRef(n)
	return n
}

// FromScalar returns a scalar node holding v.
func FromScalar(v string) *Node {
	n := NewType(ScalarType)
	n.data.scalar = v
	return n
}

// Ref returns a new handle sharing n's data.
func Ref(n *Node) *Node {
	r := &Node{typ: n.typ, style: n.style, data: n.data}
	r.data.insertRef(r)
	return r
}

func (n *Node) Type() Type {
	return n.typ
}

func (n *Node) Style() Style {
	return n.style
}

func (n *Node) SetStyle(s Style) {
	n.style = s
}

func (n *Node) IsNull() bool   { return n.typ == NullType }
func (n *Node) IsMap() bool    { return n.typ == MapType }
func (n *Node) IsSeq() bool    { return n.typ == SeqType }
func (n *Node) IsScalar() bool { return n.typ == ScalarType }

func (n *Node) IsCollection() bool {
	return n.typ == MapType || n.typ == SeqType
}

// Size returns the length of the populated collection, the scalar
// length for a scalar, and 0 for a null node.
func (n *Node) Size() int {
	switch n.typ {
	case MapType:
		return len(n.data.kvs)
	case SeqType:
		return len(n.data.seq)
	case ScalarType:
		return len(n.data.scalar)
	}
	return 0
}

func (n *Node) Scalar() string {
	return n.data.scalar
}

// Seq returns the element handles of a sequence node.
func (n *Node) Seq() []*Node {
	return n.data.seq
}

// Keys returns the ordered key handles of a map node.
func (n *Node) Keys() []*Node {
	keys := make([]*Node, len(n.data.kvs))
	for i := range n.data.kvs {
		keys[i] = n.data.kvs[i].Key
	}
	return keys
}

// Pairs returns the ordered entries of a map node.
func (n *Node) Pairs() []KeyVal {
	return n.data.kvs
}

// reset re-types the handle in place with fresh data.
func (n *Node) reset(t Type) {
	n.data.removeRef(n)
	n.typ = t
	n.data = newData()
	n.data.insertRef(n)
}

// Index returns the i-th element of a sequence. A null node is upgraded
// to an empty sequence first, so out-of-range indexes still fail.
func (n *Node) Index(i int) (*Node, error) {
	if n.IsNull() {
		n.reset(SeqType)
	}
	if !n.IsSeq() {
		return nil, fmt.Errorf("%w: index on %s node", ErrBadDereference, n.typ)
	}
	if i < 0 || i >= len(n.data.seq) {
		return nil, fmt.Errorf("%w: index %d out of range", ErrBadDereference, i)
	}
	return n.data.seq[i], nil
}

func (n *Node) findEntry(key *Node) int {
	for i := range n.data.kvs {
		if Equal(n.data.kvs[i].Key, key) {
			return i
		}
	}
	return -1
}

// Field returns the value at key, inserting a null-valued entry if the
// key is absent. A null node is upgraded to a map.
func (n *Node) Field(key *Node) (*Node, error) {
	if n.IsNull() {
		n.reset(MapType)
	}
	if !n.IsMap() {
		return nil, fmt.Errorf("%w: key lookup on %s node", ErrBadDereference, n.typ)
	}
	if i := n.findEntry(key); i >= 0 {
		return n.data.kvs[i].Val, nil
	}
	val := New()
	n.data.kvs = append(n.data.kvs, KeyVal{Key: Ref(key), Val: val})
	return val, nil
}

func (n *Node) FieldString(key string) (*Node, error) {
	return n.Field(FromScalar(key))
}

// Lookup is the read-only variant of Field: it never mutates and fails
// on absent keys.
func (n *Node) Lookup(key *Node) (*Node, error) {
	if !n.IsMap() {
		return nil, fmt.Errorf("%w: key lookup on %s node", ErrBadDereference, n.typ)
	}
	if i := n.findEntry(key); i >= 0 {
		return n.data.kvs[i].Val, nil
	}
	return nil, fmt.Errorf("%w: key not found", ErrBadDereference)
}

func (n *Node) LookupString(key string) (*Node, error) {
	return n.Lookup(FromScalar(key))
}

// Contain reports whether key is present. It never mutates.
func (n *Node) Contain(key *Node) bool {
	if !n.IsMap() {
		return false
	}
	return n.findEntry(key) >= 0
}

func (n *Node) ContainString(key string) bool {
	return n.Contain(FromScalar(key))
}

// Insert adds a key/value entry. It returns false if the node is
// neither null nor a map. An existing key is left untouched.
func (n *Node) Insert(key, val *Node) bool {
	if n.IsNull() {
		n.reset(MapType)
	}
	if !n.IsMap() {
		return false
	}
	if n.findEntry(key) >= 0 {
		return true
	}
	n.data.kvs = append(n.data.kvs, KeyVal{Key: Ref(key), Val: Ref(val)})
	return true
}

// PushBack appends an element. It returns false if the node is neither
// null nor a sequence.
func (n *Node) PushBack(val *Node) bool {
	if n.IsNull() {
		n.reset(SeqType)
	}
	if !n.IsSeq() {
		return false
	}
	n.data.seq = append(n.data.seq, Ref(val))
	return true
}

// Erase removes a map entry. It returns false if the key is absent or
// the node is not a map.
func (n *Node) Erase(key *Node) bool {
	if !n.IsMap() {
		return false
	}
	i := n.findEntry(key)
	if i < 0 {
		return false
	}
	n.data.kvs = append(n.data.kvs[:i], n.data.kvs[i+1:]...)
	return true
}

func (n *Node) EraseString(key string) bool {
	return n.Erase(FromScalar(key))
}

// Assign rebinds every handle aliased to n onto rhs: each observes
// rhs's type, style and data afterwards.
func (n *Node) Assign(rhs *Node) {
	old := n.data
	if old == rhs.data {
		return
	}
	for h := range old.refs {
		h.typ = rhs.typ
		h.style = rhs.style
		h.data = rhs.data
		rhs.data.insertRef(h)
	}
	old.refs = map[*Node]struct{}{}
}

// Clone returns a deep, independent copy.
func (n *Node) Clone() *Node {
	c := NewType(n.typ)
	c.style = n.style
	switch n.typ {
	case ScalarType:
		c.data.scalar = n.data.scalar
	case SeqType:
		for _, v := range n.data.seq {
			c.data.seq = append(c.data.seq, v.Clone())
		}
	case MapType:
		for _, kv := range n.data.kvs {
			c.data.kvs = append(c.data.kvs, KeyVal{Key: kv.Key.Clone(), Val: kv.Val.Clone()})
		}
	}
	return c
}

// Clear resets the node to an empty data record of the same type.
func (n *Node) Clear() {
	n.data.removeRef(n)
	n.data = newData()
	n.data.insertRef(n)
}
