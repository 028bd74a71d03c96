package plan

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/gogpu/rendergraph"
)

// Fingerprint computes a stable FNV-1a hash over a frozen pass list. Two
// lists with identical contents produce the same fingerprint, which the
// planner uses as its memoization key. PassList snapshots sort
// dependencies and schemas at freeze time, so equal descriptions hash
// equal regardless of declaration order for those sets; usage order is
// semantically significant and hashes in declaration order.
func Fingerprint(passes rendergraph.PassList) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	writeString := func(s string) {
		writeInt(len(s))
		_, _ = h.Write([]byte(s))
	}

	writeInt(len(passes))
	for i := range passes {
		p := &passes[i]
		writeInt(p.Index)
		writeString(p.Name)
		writeInt(int(p.Stage))

		writeInt(len(p.Usages))
		for _, u := range p.Usages {
			writeString(u.Name)
			writeInt(int(u.Type))
			writeInt(int(u.Access))
			writeInt(int(u.LoadOp))
			writeInt(int(u.StoreOp))
		}

		writeInt(len(p.Dependencies))
		for _, d := range p.Dependencies {
			writeInt(d)
		}

		writeInt(len(p.DescriptorSchemas))
		for _, s := range p.DescriptorSchemas {
			writeString(s)
		}
	}
	return h.Sum64()
}
