// Package errs defines the sentinel errors returned by mvtgeom packages.
//
// Errors returned by the decoder, validator and adapters wrap one of these sentinels with
// context, so callers should match them with errors.Is:
//
//	if _, err := geometry.Decode(words); errors.Is(err, errs.ErrTruncatedGeometry) {
//	    // ...
//	}
package errs

import "github.com/cockroachdb/errors"

// Encoder configuration errors.
var (
	ErrInvalidCapacity = errors.New("invalid buffer capacity")
)

// Geometry stream errors.
var (
	ErrUnknownCommand      = errors.New("unknown geometry command")
	ErrInvalidCommandCount = errors.New("invalid geometry command count")
	ErrTruncatedGeometry   = errors.New("geometry stream truncated")
	ErrCoordinateOverflow  = errors.New("coordinate out of int16 range")
	ErrInvalidGeometry     = errors.New("invalid geometry for type")
	ErrMalformedPacked     = errors.New("malformed packed geometry payload")
)

// Adapter errors.
var (
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
	ErrInvalidGeomType     = errors.New("invalid geometry type")
)

// Tag errors.
var (
	ErrUnsupportedValue = errors.New("unsupported tag value")
)
