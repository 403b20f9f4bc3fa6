package geometry

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"

	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/format"
	"github.com/arloliu/mvtgeom/internal/pool"
)

var pointPool = pool.NewSlicePool[Point]()

type partKind uint8

const (
	pointsPart partKind = iota
	linePart
	ringPart
)

// AddOrb encodes an orb geometry whose coordinates are already in tile space, and returns the
// MVT geometry type of the feature it belongs to.
//
// Supported geometries:
//   - orb.Point, orb.MultiPoint: GeomPoint
//   - orb.LineString, orb.MultiLineString: GeomLineString
//   - orb.Ring, orb.Polygon, orb.MultiPolygon, orb.Bound: GeomPolygon
//
// Coordinates are rounded to the nearest integer, halves away from zero. A closed ring's
// repeated last point is dropped since ClosePath closes it on the wire. Ring winding order is
// kept as given.
//
// All coordinates are converted before anything is written, so on error the encoder is left
// unchanged. Returns errs.ErrCoordinateOverflow if a coordinate does not fit in int16, and
// errs.ErrUnsupportedGeometry for collections and unknown types.
func (e *Encoder) AddOrb(g orb.Geometry) (format.GeomType, error) {
	e.mustBeActive()

	var (
		geomType format.GeomType
		kind     partKind
		parts    [][]orb.Point
	)

	switch g := g.(type) {
	case orb.Point:
		geomType, kind = format.GeomPoint, pointsPart
		parts = [][]orb.Point{{g}}
	case orb.MultiPoint:
		geomType, kind = format.GeomPoint, pointsPart
		parts = [][]orb.Point{g}
	case orb.LineString:
		geomType, kind = format.GeomLineString, linePart
		parts = [][]orb.Point{g}
	case orb.MultiLineString:
		geomType, kind = format.GeomLineString, linePart
		for _, ls := range g {
			parts = append(parts, ls)
		}
	case orb.Ring:
		geomType, kind = format.GeomPolygon, ringPart
		parts = [][]orb.Point{openRing(g)}
	case orb.Polygon:
		geomType, kind = format.GeomPolygon, ringPart
		parts = appendRings(parts, g)
	case orb.MultiPolygon:
		geomType, kind = format.GeomPolygon, ringPart
		for _, poly := range g {
			parts = appendRings(parts, poly)
		}
	case orb.Bound:
		geomType, kind = format.GeomPolygon, ringPart
		parts = [][]orb.Point{openRing(g.ToRing())}
	case nil:
		return format.GeomUnknown, errors.Wrap(errs.ErrUnsupportedGeometry, "nil geometry")
	default:
		return format.GeomUnknown, errors.Wrapf(errs.ErrUnsupportedGeometry, "%s", g.GeoJSONType())
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}

	flat, release := pointPool.Get(total)
	defer release()

	off := 0
	for _, part := range parts {
		for _, p := range part {
			pt, err := toPoint(p)
			if err != nil {
				return format.GeomUnknown, err
			}
			flat[off] = pt
			off++
		}
	}

	off = 0
	for _, part := range parts {
		pts := flat[off : off+len(part)]
		off += len(part)

		switch kind {
		case pointsPart:
			e.AddPoints(pts)
		case linePart:
			e.AddLineString(pts)
		case ringPart:
			e.AddRing(pts)
		}
	}

	return geomType, nil
}

func appendRings(parts [][]orb.Point, poly orb.Polygon) [][]orb.Point {
	for _, r := range poly {
		parts = append(parts, openRing(r))
	}

	return parts
}

// openRing drops the closing point of a closed ring. orb.Ring.Closed needs at least four
// points, so closure is checked directly to also open short degenerate rings.
func openRing(r orb.Ring) []orb.Point {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}

	return r
}

func toPoint(p orb.Point) (Point, error) {
	x, y := math.Round(p[0]), math.Round(p[1])
	if !inInt16(x) || !inInt16(y) {
		return Point{}, errors.Wrapf(errs.ErrCoordinateOverflow, "(%g, %g)", p[0], p[1])
	}

	return Point{X: int16(x), Y: int16(y)}, nil
}

// inInt16 is false for NaN.
func inInt16(v float64) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}

// DecodeOrb decodes a geometry stream of type t into an orb geometry in tile coordinates.
//
// Single-part geometries decode to orb.Point, orb.LineString or orb.Polygon; multi-part ones to
// the corresponding Multi type. Polygon rings are returned closed. A ring wound the same way as
// the first ring with non-zero area starts a new polygon and any other ring is a hole of the
// current polygon, so both winding conventions decode to the same structure. Zero-area rings
// never set the orientation: one that comes first forms its own polygon, later ones are holes.
//
// The stream is checked with Validate first; GeomUnknown is rejected with errs.ErrInvalidGeomType.
func DecodeOrb(t format.GeomType, words []uint32) (orb.Geometry, error) {
	if t == format.GeomUnknown {
		return nil, errors.Wrap(errs.ErrInvalidGeomType, "cannot decode Unknown geometry")
	}
	if err := Validate(t, words); err != nil {
		return nil, err
	}

	cmds, err := Decode(words)
	if err != nil {
		return nil, err
	}

	switch t {
	case format.GeomPoint:
		return decodeOrbPoints(cmds), nil
	case format.GeomLineString:
		return decodeOrbLines(cmds), nil
	default:
		return decodeOrbPolygons(cmds), nil
	}
}

func decodeOrbPoints(cmds []Command) orb.Geometry {
	mp := make(orb.MultiPoint, 0, len(cmds[0].Points))
	for _, p := range cmds[0].Points {
		mp = append(mp, toOrb(p))
	}

	if len(mp) == 1 {
		return mp[0]
	}

	return mp
}

func decodeOrbLines(cmds []Command) orb.Geometry {
	var mls orb.MultiLineString
	for _, cmd := range cmds {
		if cmd.ID == format.MoveTo {
			mls = append(mls, orb.LineString{toOrb(cmd.Points[0])})
			continue
		}
		cur := &mls[len(mls)-1]
		for _, p := range cmd.Points {
			*cur = append(*cur, toOrb(p))
		}
	}

	if len(mls) == 1 {
		return mls[0]
	}

	return mls
}

func decodeOrbPolygons(cmds []Command) orb.Geometry {
	var (
		mp        orb.MultiPolygon
		ring      orb.Ring
		firstSign int
	)

	for _, cmd := range cmds {
		switch cmd.ID {
		case format.MoveTo:
			ring = orb.Ring{toOrb(cmd.Points[0])}
		case format.LineTo:
			for _, p := range cmd.Points {
				ring = append(ring, toOrb(p))
			}
		case format.ClosePath:
			ring = append(ring, ring[0])
			sign := areaSign(ring)
			if firstSign == 0 {
				firstSign = sign
			}
			if len(mp) == 0 || (sign != 0 && sign == firstSign) {
				mp = append(mp, orb.Polygon{ring})
			} else {
				mp[len(mp)-1] = append(mp[len(mp)-1], ring)
			}
		}
	}

	if len(mp) == 1 {
		return mp[0]
	}

	return mp
}

// areaSign returns the sign of the surveyor's formula over a closed ring.
func areaSign(r orb.Ring) int {
	var sum float64
	for i := 0; i < len(r)-1; i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}

	switch {
	case sum > 0:
		return 1
	case sum < 0:
		return -1
	default:
		return 0
	}
}

func toOrb(p Point) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}
