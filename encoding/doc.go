// Package encoding provides the integer transforms shared by the MVT geometry encoder and
// decoder.
//
// Every coordinate written to an MVT geometry stream is a signed delta from the previous
// absolute position. Deltas are mapped to unsigned integers with the zig-zag transform so that
// small magnitudes, positive or negative, stay numerically small:
//
//	 0 -> 0
//	-1 -> 1
//	 1 -> 2
//	-2 -> 3
//	 2 -> 4
//
// This is the same mapping protobuf uses for sint32 fields, so consumers that decode the
// geometry field as packed varints keep the compact encoding.
//
// # Usage
//
//	dx := int32(x) - int32(prevX)
//	word := encoding.ZigZag32(dx)
//	// ...
//	dx = encoding.UnZigZag32(word)
//
// Most users should not call this package directly; see github.com/arloliu/mvtgeom/geometry.
package encoding
