package encoding

// ZigZag32 maps a signed 32-bit delta to an unsigned value.
//
// The arithmetic right shift broadcasts the sign bit into a mask, so negative values map to odd
// results and non-negative values to even results:
//   - Positive value v -> 2*v
//   - Negative value v -> 2*|v|-1
//
// Deltas between two int16 coordinates are computed in 32 bits before encoding; shifting a
// 16-bit delta left by one would overflow for half of its range.
func ZigZag32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31)) //nolint:gosec
}

// UnZigZag32 reverses ZigZag32.
func UnZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1) //nolint:gosec
}
