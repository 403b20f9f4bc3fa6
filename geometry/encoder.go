package geometry

import (
	"iter"
	"slices"

	"github.com/arloliu/mvtgeom/encoding"
	"github.com/arloliu/mvtgeom/format"
	"github.com/arloliu/mvtgeom/internal/options"
	"github.com/arloliu/mvtgeom/internal/pool"
)

// Encoder accumulates the MVT command stream of one feature geometry.
//
// The encoder appends command and parameter words for points, line strings and polygon rings.
// Each part is delta encoded from the last absolute point written by any earlier part, so a
// multi-part geometry is built by calling the Add methods repeatedly on the same encoder.
//
// Encoding rules:
//   - The first point of a part is a MoveTo, encoded as a delta from the previous part's last point
//     (or from (0, 0) for the first part)
//   - Each following point is a delta from the literal previous input point, and is dropped when
//     that delta is (0, 0); runs of identical points collapse into one
//   - Command counts are back-patched once the number of surviving points is known
//   - A line string or ring always carries at least one LineTo pair; if every point after the
//     first is dropped, a single (0, 0) pair is written instead
//   - A ring ends with a ClosePath command
//
// Internal state:
//   - prevX, prevY: absolute coordinates of the last input point consumed
//   - buf: pooled output buffer, nil after Finish
//   - parts: number of non-empty parts written
//
// None of the Add methods can fail. After Finish the encoder is no longer usable and every
// method except Finish panics.
type Encoder struct {
	prevX int16
	prevY int16
	buf   *pool.WordBuffer
	parts int
}

// NewEncoder creates an encoder with an empty buffer and the cursor at (0, 0).
func NewEncoder() *Encoder {
	return &Encoder{
		buf: pool.GetGeometryBuffer(),
	}
}

// NewEncoderWithOptions creates an encoder configured by opts.
//
// Returns an error if any option is invalid.
func NewEncoderWithOptions(opts ...EncoderOption) (*Encoder, error) {
	cfg := &EncoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	e := NewEncoder()
	e.buf.Grow(cfg.capacity)

	return e, nil
}

// AddPoints encodes a Point or MultiPoint part.
//
// The whole slice becomes a single MoveTo command whose count is the number of points left
// after consecutive duplicates are dropped. An empty slice is a no-op.
func (e *Encoder) AddPoints(points []Point) {
	e.mustBeActive()
	if len(points) == 0 {
		return
	}

	e.buf.Grow(1 + 2*len(points))
	e.AddPointsSeq(slices.Values(points))
}

// AddPointsSeq is the iterator form of AddPoints. The sequence is consumed once.
func (e *Encoder) AddPointsSeq(points iter.Seq[Point]) {
	e.mustBeActive()

	cmdPos := -1
	var count uint32
	for p := range points {
		dx, dy := e.advance(p)
		if cmdPos < 0 {
			cmdPos = e.buf.Len()
			e.buf.Append(format.MoveToOnce, encoding.ZigZag32(dx), encoding.ZigZag32(dy))
			count = 1

			continue
		}

		if dx != 0 || dy != 0 {
			e.buf.Append(encoding.ZigZag32(dx), encoding.ZigZag32(dy))
			count++
		}
	}

	if cmdPos < 0 {
		return
	}

	e.buf.Set(cmdPos, format.Command(format.MoveTo, count))
	e.parts++
}

// AddLineString encodes one LineString part. An empty slice is a no-op.
func (e *Encoder) AddLineString(points []Point) {
	e.mustBeActive()
	if len(points) == 0 {
		return
	}

	e.buf.Grow(2 + 2*len(points))
	e.addPath(slices.Values(points), false)
}

// AddLineStringSeq is the iterator form of AddLineString. The sequence is consumed once.
func (e *Encoder) AddLineStringSeq(points iter.Seq[Point]) {
	e.mustBeActive()
	e.addPath(points, false)
}

// AddRing encodes one polygon ring. An empty slice is a no-op.
//
// A polygon is one exterior ring (clockwise in tile space) followed by zero or more interior
// rings (counter-clockwise). The first point must not be repeated at the end; ClosePath
// closes the ring. Winding order is not checked.
func (e *Encoder) AddRing(points []Point) {
	e.mustBeActive()
	if len(points) == 0 {
		return
	}

	e.buf.Grow(3 + 2*len(points))
	e.addPath(slices.Values(points), true)
}

// AddRingSeq is the iterator form of AddRing. The sequence is consumed once.
func (e *Encoder) AddRingSeq(points iter.Seq[Point]) {
	e.mustBeActive()
	e.addPath(points, true)
}

func (e *Encoder) addPath(points iter.Seq[Point], closePath bool) {
	lineToPos := -1
	var count uint32
	for p := range points {
		dx, dy := e.advance(p)
		if lineToPos < 0 {
			e.buf.Append(format.MoveToOnce, encoding.ZigZag32(dx), encoding.ZigZag32(dy))
			lineToPos = e.buf.Len()
			e.buf.Append(uint32(format.LineTo)) // count is patched below

			continue
		}

		// zero-length segments are common after simplification at low zoom levels
		if dx != 0 || dy != 0 {
			e.buf.Append(encoding.ZigZag32(dx), encoding.ZigZag32(dy))
			count++
		}
	}

	if lineToPos < 0 {
		return
	}

	// every point collapsed into the first: repeat it so the path keeps two vertices
	if count == 0 {
		e.buf.Append(0, 0)
		count = 1
	}

	e.buf.Set(lineToPos, format.Command(format.LineTo, count))

	if closePath {
		e.buf.Append(format.ClosePathOnce)
	}
	e.parts++
}

// advance moves the cursor to p and returns the delta from the previous cursor position.
func (e *Encoder) advance(p Point) (int32, int32) {
	dx := int32(p.X) - int32(e.prevX)
	dy := int32(p.Y) - int32(e.prevY)
	e.prevX, e.prevY = p.X, p.Y

	return dx, dy
}

// Cursor returns the absolute position the next part will be delta encoded from.
func (e *Encoder) Cursor() Point {
	e.mustBeActive()

	return Point{X: e.prevX, Y: e.prevY}
}

// Len returns the number of words written so far.
func (e *Encoder) Len() int {
	e.mustBeActive()

	return e.buf.Len()
}

// Parts returns the number of non-empty parts written so far.
func (e *Encoder) Parts() int {
	e.mustBeActive()

	return e.parts
}

// Size returns the size in bytes the current words occupy as a packed varint field payload.
func (e *Encoder) Size() int {
	e.mustBeActive()

	return PackedSize(e.buf.Words())
}

// Words returns the words written so far.
//
// The returned slice references the internal buffer: it is valid until the next Add, Reset or
// Finish call and must not be modified. Use Finish to take ownership of the result.
func (e *Encoder) Words() []uint32 {
	e.mustBeActive()

	return e.buf.Words()
}

// Reset discards all written words and moves the cursor back to (0, 0), keeping the buffer
// capacity so the encoder can be reused for another feature.
func (e *Encoder) Reset() {
	e.mustBeActive()

	e.buf.Reset()
	e.prevX, e.prevY = 0, 0
	e.parts = 0
}

// Finish returns the encoded geometry and releases the encoder's buffer to the pool.
//
// The returned slice is owned by the caller. After Finish the encoder is no longer usable:
// calling any other method panics, and calling Finish again returns nil.
func (e *Encoder) Finish() []uint32 {
	if e.buf == nil {
		return nil
	}

	words := e.buf.Clone()
	pool.PutGeometryBuffer(e.buf)
	e.buf = nil
	e.prevX, e.prevY = 0, 0
	e.parts = 0

	return words
}

func (e *Encoder) mustBeActive() {
	if e.buf == nil {
		panic("encoder already finished - cannot use after Finish()")
	}
}
