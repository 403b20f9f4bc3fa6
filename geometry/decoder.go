package geometry

import (
	"iter"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/mvtgeom/encoding"
	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/format"
)

// Command is one decoded command of a geometry stream.
//
// Points holds absolute coordinates: count points for MoveTo and LineTo, none for ClosePath.
// Count is the repeat count carried by the command word.
type Command struct {
	ID     format.CommandID
	Count  uint32
	Points []Point
}

// Commands returns an iterator over the commands of an encoded geometry stream.
//
// Parameter pairs are zig-zag decoded and accumulated from (0, 0), so every yielded point is
// absolute. Iteration stops after the first error, which is yielded with a zero Command.
//
// Error conditions:
//   - errs.ErrUnknownCommand: command id other than MoveTo, LineTo or ClosePath
//   - errs.ErrInvalidCommandCount: MoveTo or LineTo with count 0, or ClosePath with count other than 1
//   - errs.ErrTruncatedGeometry: fewer parameter words than the command declares
//   - errs.ErrCoordinateOverflow: an accumulated coordinate leaves the int16 range
func Commands(words []uint32) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		var x, y int32
		pos := 0
		for pos < len(words) {
			cmdPos := pos
			id, count := format.ParseCommand(words[pos])
			pos++

			if err := checkCommand(id, count, cmdPos); err != nil {
				yield(Command{}, err)
				return
			}

			nParams := id.Params(count)
			if len(words)-pos < nParams {
				yield(Command{}, errors.Wrapf(errs.ErrTruncatedGeometry,
					"%s at word %d declares %d parameters, %d remain", id, cmdPos, nParams, len(words)-pos))

				return
			}

			cmd := Command{ID: id, Count: count}
			if nParams > 0 {
				cmd.Points = make([]Point, 0, count)
			}
			for i := 0; i < nParams; i += 2 {
				x += encoding.UnZigZag32(words[pos+i])
				y += encoding.UnZigZag32(words[pos+i+1])
				if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
					yield(Command{}, errors.Wrapf(errs.ErrCoordinateOverflow,
						"(%d, %d) at word %d", x, y, pos+i))

					return
				}
				cmd.Points = append(cmd.Points, Point{X: int16(x), Y: int16(y)})
			}
			pos += nParams

			if !yield(cmd, nil) {
				return
			}
		}
	}
}

// Decode decodes a whole geometry stream. See Commands for the error conditions.
func Decode(words []uint32) ([]Command, error) {
	var cmds []Command
	for cmd, err := range Commands(words) {
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

func checkCommand(id format.CommandID, count uint32, pos int) error {
	if !id.Valid() {
		return errors.Wrapf(errs.ErrUnknownCommand, "id %d at word %d", id, pos)
	}

	switch id {
	case format.ClosePath:
		if count != 1 {
			return errors.Wrapf(errs.ErrInvalidCommandCount, "ClosePath count %d at word %d", count, pos)
		}
	default:
		if count == 0 {
			return errors.Wrapf(errs.ErrInvalidCommandCount, "%s count 0 at word %d", id, pos)
		}
	}

	return nil
}
