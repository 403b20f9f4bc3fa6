// Package mvtgeom encodes feature geometries and attributes into the Mapbox Vector Tile (MVT)
// command stream format.
//
// An MVT feature stores its geometry as a flat list of 32-bit words: command words
// (MoveTo, LineTo, ClosePath) packed with a repeat count, each followed by zig-zag encoded
// coordinate deltas. Deltas chain across every part of a multi-part geometry, so a feature is
// built by feeding all of its parts into one encoder.
//
// # Core Features
//
//   - Delta and zig-zag encoding of int16 tile coordinates
//   - Consecutive duplicate points dropped, command counts back-patched
//   - Degenerate line strings and rings kept well-formed with a zero-length LineTo
//   - Slice and iter.Seq input for every part kind
//   - Decoding and MVT 2.1 validation of command streams
//   - orb geometry adapter and packed varint helpers
//   - Layer-wide key/value deduplication for feature attributes
//
// # Basic Usage
//
// Encoding a polygon with a hole:
//
//	enc := mvtgeom.NewGeometryEncoder()
//	enc.AddRing([]geometry.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
//	enc.AddRing([]geometry.Point{{2, 2}, {2, 8}, {8, 8}, {8, 2}})
//	words := enc.Finish()
//
// Encoding feature attributes:
//
//	tags := mvtgeom.NewTagEncoder()
//	tags.Add("name", tag.String("Main St"))
//	feature.Tags = tags.TakeTags()
//	layer.Keys, layer.Values = tags.Keys(), tags.Values()
//
// # Package Structure
//
// This package provides thin top-level wrappers around the geometry and tag packages for the
// most common use cases. For iterator input, orb geometries or packed payloads, use the
// geometry package directly.
package mvtgeom

import (
	"github.com/paulmach/orb"

	"github.com/arloliu/mvtgeom/format"
	"github.com/arloliu/mvtgeom/geometry"
	"github.com/arloliu/mvtgeom/tag"
)

// NewGeometryEncoder creates a geometry encoder with an empty buffer and the cursor at (0, 0).
//
// Use one encoder per feature: call Finish to take the words, or Reset to reuse the
// encoder for the next feature.
//
// Returns:
//   - *geometry.Encoder: The created encoder.
//
// Example:
//
//	enc := mvtgeom.NewGeometryEncoder()
//	enc.AddLineString([]geometry.Point{{2, 2}, {2, 10}, {10, 10}})
//	feature.Geometry = enc.Finish()
func NewGeometryEncoder() *geometry.Encoder {
	return geometry.NewEncoder()
}

// NewGeometryEncoderWithCapacity creates a geometry encoder whose buffer holds at least
// words words without growing.
//
// Parameters:
//   - words: Expected number of output words; a hint with no effect on the output
//
// Returns:
//   - *geometry.Encoder: The created encoder.
//   - error: errs.ErrInvalidCapacity if words is negative.
func NewGeometryEncoderWithCapacity(words int) (*geometry.Encoder, error) {
	return geometry.NewEncoderWithOptions(geometry.WithCapacity(words))
}

// EncodeGeometry encodes an orb geometry in tile coordinates into a command stream.
//
// Parameters:
//   - g: The geometry, coordinates already projected to tile space
//
// Returns:
//   - format.GeomType: The MVT geometry type for the feature.
//   - []uint32: The command stream, owned by the caller.
//   - error: errs.ErrCoordinateOverflow or errs.ErrUnsupportedGeometry.
//
// See geometry.Encoder.AddOrb for the conversion rules.
func EncodeGeometry(g orb.Geometry) (format.GeomType, []uint32, error) {
	enc := geometry.NewEncoder()

	t, err := enc.AddOrb(g)
	words := enc.Finish()
	if err != nil {
		return format.GeomUnknown, nil, err
	}

	return t, words, nil
}

// DecodeGeometry validates a command stream for a feature of type t and decodes it.
//
// Parameters:
//   - t: The feature's geometry type
//   - words: The command stream
//
// Returns:
//   - []geometry.Command: The decoded commands with absolute coordinates.
//   - error: Any error from geometry.Validate.
func DecodeGeometry(t format.GeomType, words []uint32) ([]geometry.Command, error) {
	if err := geometry.Validate(t, words); err != nil {
		return nil, err
	}

	return geometry.Decode(words)
}

// NewTagEncoder creates an attribute encoder for one layer.
//
// Returns:
//   - *tag.Encoder: The created encoder with empty key and value tables.
func NewTagEncoder() *tag.Encoder {
	return tag.NewEncoder()
}
