package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Tagged computes the xxHash64 of a one-byte kind tag followed by a 64-bit payload and
// an optional string, so values of different kinds with identical bits hash apart.
func Tagged(kind uint8, bits uint64, s string) uint64 {
	var head [9]byte
	head[0] = kind
	binary.LittleEndian.PutUint64(head[1:], bits)

	d := xxhash.New()
	_, _ = d.Write(head[:])
	_, _ = d.WriteString(s)

	return d.Sum64()
}
