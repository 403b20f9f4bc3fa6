package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/arloliu/mvtgeom/errs"
)

func TestPacked_RoundTrip(t *testing.T) {
	enc := NewEncoder()
	enc.AddRing([]Point{{0, 0}, {4096, 0}, {4096, 4096}, {0, 4096}})
	enc.AddLineString([]Point{{-100, -100}, {-200, 50}})
	words := enc.Finish()

	packed := AppendPacked(nil, words)
	require.Len(t, packed, PackedSize(words))

	got, err := UnpackWords(packed)
	require.NoError(t, err)
	require.Equal(t, words, got)
}

func TestPacked_AppendsToPrefix(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	out := AppendPacked(prefix, []uint32{9, 0, 0})

	require.Equal(t, []byte{0xAA, 0xBB, 9, 0, 0}, out)
}

func TestPacked_KnownBytes(t *testing.T) {
	// 8192 = 0b10_0000_0000_0000 -> 0x80 0x40
	require.Equal(t, []byte{0x09, 0x80, 0x40, 0x00}, AppendPacked(nil, []uint32{9, 8192, 0}))
	require.Equal(t, 4, PackedSize([]uint32{9, 8192, 0}))
	require.Equal(t, 0, PackedSize(nil))
}

func TestUnpackWords_Empty(t *testing.T) {
	words, err := UnpackWords(nil)
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestUnpackWords_Malformed(t *testing.T) {
	t.Run("truncated varint", func(t *testing.T) {
		_, err := UnpackWords([]byte{0x09, 0x80})
		require.ErrorIs(t, err, errs.ErrMalformedPacked)
	})

	t.Run("value above uint32", func(t *testing.T) {
		payload := protowire.AppendVarint([]byte{0x09}, 1<<32)
		_, err := UnpackWords(payload)
		require.ErrorIs(t, err, errs.ErrMalformedPacked)
	})
}
