// Package geometry encodes tile-local coordinates into the MVT geometry command stream.
//
// An MVT feature stores its geometry as a flat sequence of uint32 words. Each command word
// packs a command id in its low three bits and a repeat count in the remaining bits; MoveTo
// and LineTo commands are followed by count zig-zag encoded (dx, dy) pairs, ClosePath by none.
// Every pair is a delta from the previous absolute position, starting at (0, 0) and carrying
// across parts, which is what makes MultiLineString and MultiPolygon encoding a sequence of
// calls on one Encoder.
//
// # Encoding
//
//	enc := geometry.NewEncoder()
//	enc.AddRing([]geometry.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}})
//	enc.AddRing([]geometry.Point{{20, 20}, {20, 30}, {30, 30}, {30, 20}})
//	words := enc.Finish() // hand to the feature builder as the geometry field
//
// The encoder drops consecutive duplicate points, so zero-length segments never reach the
// wire. A line string or ring whose points all collapse into the first one is still written
// with a single (0, 0) LineTo pair, so no empty LineTo command is ever produced.
//
// Rings must be supplied in MVT winding order (clockwise exterior, counter-clockwise interior
// in tile space) without repeating the first point; the encoder does not check either.
//
// # Decoding and validation
//
// Decode and Commands read a stream back into absolute points, and Validate checks that a
// stream is well formed for a feature geometry type. They exist mainly for tests and tooling.
//
// # Thread Safety
//
// An Encoder must not be shared between goroutines. Use one encoder per geometry.
package geometry
