package geometry

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/format"
)

// Validate checks that words is a well-formed geometry for a feature of type t.
//
// The rules follow the MVT 2.1 geometry type requirements:
//   - GeomPoint: exactly one MoveTo
//   - GeomLineString: one or more MoveTo(1) LineTo(n) sequences
//   - GeomPolygon: one or more MoveTo(1) LineTo(n >= 2) ClosePath sequences
//   - GeomUnknown: any structurally valid stream
//
// Stream errors from Commands are returned as is; rule violations wrap errs.ErrInvalidGeometry.
// An empty stream is invalid for every type except GeomUnknown.
func Validate(t format.GeomType, words []uint32) error {
	switch t {
	case format.GeomUnknown, format.GeomPoint, format.GeomLineString, format.GeomPolygon:
	default:
		return errors.Wrapf(errs.ErrInvalidGeomType, "type %d", t)
	}

	v := validator{geomType: t}
	for cmd, err := range Commands(words) {
		if err != nil {
			return err
		}
		if err := v.next(cmd); err != nil {
			return err
		}
	}

	return v.done()
}

// validator is a small state machine over decoded commands.
type validator struct {
	geomType format.GeomType
	idx      int              // index of the next command
	last     format.CommandID // previous command, 0 before the first
	parts    int
}

func (v *validator) next(cmd Command) error {
	defer func() {
		v.idx++
		v.last = cmd.ID
	}()

	switch v.geomType {
	case format.GeomPoint:
		if v.idx > 0 || cmd.ID != format.MoveTo {
			return v.fail(cmd, "point geometry must be a single MoveTo")
		}
		v.parts++

	case format.GeomLineString:
		switch cmd.ID {
		case format.MoveTo:
			if v.last == format.MoveTo {
				return v.fail(cmd, "MoveTo must be followed by LineTo")
			}
			if cmd.Count != 1 {
				return v.fail(cmd, "line string MoveTo count must be 1")
			}
		case format.LineTo:
			if v.last != format.MoveTo {
				return v.fail(cmd, "LineTo must follow MoveTo")
			}
			v.parts++
		default:
			return v.fail(cmd, "line string cannot contain ClosePath")
		}

	case format.GeomPolygon:
		switch cmd.ID {
		case format.MoveTo:
			if v.last != 0 && v.last != format.ClosePath {
				return v.fail(cmd, "ring must end with ClosePath before the next MoveTo")
			}
			if cmd.Count != 1 {
				return v.fail(cmd, "ring MoveTo count must be 1")
			}
		case format.LineTo:
			if v.last != format.MoveTo {
				return v.fail(cmd, "LineTo must follow MoveTo")
			}
			if cmd.Count < 2 {
				return v.fail(cmd, "ring needs at least 3 vertices")
			}
		case format.ClosePath:
			if v.last != format.LineTo {
				return v.fail(cmd, "ClosePath must follow LineTo")
			}
			v.parts++
		}

	case format.GeomUnknown:
		v.parts++
	}

	return nil
}

func (v *validator) done() error {
	if v.geomType == format.GeomUnknown {
		return nil
	}

	if v.parts == 0 {
		return errors.Wrapf(errs.ErrInvalidGeometry, "%s geometry has no complete part", v.geomType)
	}

	switch {
	case v.geomType == format.GeomLineString && v.last != format.LineTo,
		v.geomType == format.GeomPolygon && v.last != format.ClosePath:
		return errors.Wrapf(errs.ErrInvalidGeometry, "%s geometry ends with %s", v.geomType, v.last)
	}

	return nil
}

func (v *validator) fail(cmd Command, reason string) error {
	return errors.Wrapf(errs.ErrInvalidGeometry, "%s: command %d (%s count %d): %s",
		v.geomType, v.idx, cmd.ID, cmd.Count, reason)
}
