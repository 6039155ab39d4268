package node

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash. Map hashing is an XOR fold
// over the pair hashes and therefore insensitive to entry order;
// sequences fold order-dependently.
func (n *Node) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.typ))

	switch n.typ {
	case NullType:
	case ScalarType:
		h.WriteString(n.data.scalar)
	case SeqType:
		var b [8]byte
		for _, v := range n.data.seq {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MapType:
		var fold uint64
		for _, kv := range n.data.kvs {
			var ph maphash.Hash
			ph.SetSeed(hashSeed)
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], kv.Key.Hash())
			ph.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], kv.Val.Hash())
			ph.Write(b[:])
			fold ^= ph.Sum64()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], fold)
		h.Write(b[:])
	}
	return h.Sum64()
}
