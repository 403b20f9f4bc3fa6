package geometry

import (
	"math"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/arloliu/mvtgeom/errs"
)

// AppendPacked appends words to b as the payload of a packed repeated uint32 field, which is
// how the geometry field of an MVT feature is stored on the wire. Only the payload is written;
// the field key and length prefix belong to the feature serializer.
func AppendPacked(b []byte, words []uint32) []byte {
	for _, w := range words {
		b = protowire.AppendVarint(b, uint64(w))
	}

	return b
}

// PackedSize returns the number of bytes AppendPacked would append for words.
func PackedSize(words []uint32) int {
	n := 0
	for _, w := range words {
		n += protowire.SizeVarint(uint64(w))
	}

	return n
}

// UnpackWords parses a packed uint32 payload produced by AppendPacked.
//
// Returns errs.ErrMalformedPacked if the payload contains a truncated or overlong varint, or a
// value that does not fit in 32 bits.
func UnpackWords(b []byte) ([]uint32, error) {
	words := make([]uint32, 0, len(b))
	for off := 0; off < len(b); {
		v, n := protowire.ConsumeVarint(b[off:])
		if n < 0 {
			return nil, errors.Wrapf(errs.ErrMalformedPacked, "offset %d: %v", off, protowire.ParseError(n))
		}
		if v > math.MaxUint32 {
			return nil, errors.Wrapf(errs.ErrMalformedPacked, "offset %d: value %d exceeds uint32", off, v)
		}
		words = append(words, uint32(v))
		off += n
	}

	return words, nil
}
