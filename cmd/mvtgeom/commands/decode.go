package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/format"
	"github.com/arloliu/mvtgeom/geometry"
)

// NewDecodeCommand returns a cli.Command for "mvtgeom decode".
func NewDecodeCommand(log *logrus.Logger) *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode an MVT geometry command stream into a GeoJSON geometry.",
		UsageText: `mvtgeom decode --type TYPE [options] [WORDS...]`,
		Description: `The decode command validates a geometry command stream for the given feature
type and prints it as a GeoJSON geometry in tile coordinates.

Words are taken from the arguments, or read from STDIN as a JSON array:

$ mvtgeom decode --type linestring 9 4 4 18 0 16 16 0
{"type":"LineString","coordinates":[[2,2],[2,10],[10,10]]}

$ echo '[17,10,14,3,9]' | mvtgeom decode -t point
{"type":"MultiPoint","coordinates":[[5,7],[3,2]]}

With --packed the input is a hex encoded packed varint payload instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "feature geometry type: point, linestring or polygon",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "packed",
				Usage: "input is a hex encoded packed varint payload",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		t, ok := format.ParseGeomType(c.String("type"))
		if !ok {
			return errors.Wrapf(errs.ErrInvalidGeomType, "%q (want point, linestring or polygon)", c.String("type"))
		}

		var input []byte
		if c.NArg() > 0 {
			input = []byte(strings.Join(c.Args().Slice(), " "))
		} else {
			data, err := readInput("", c.App.Reader)
			if err != nil {
				return err
			}
			input = data
		}

		words, err := parseWords(input, c.Bool("packed"), c.NArg() > 0)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"type": t, "words": len(words)}).Debug("decoding geometry")

		g, err := geometry.DecodeOrb(t, words)
		if err != nil {
			return err
		}

		out, err := json.Marshal(geojson.NewGeometry(g))
		if err != nil {
			return errors.Wrap(err, "marshal geometry")
		}
		out = append(out, '\n')
		_, err = c.App.Writer.Write(out)

		return err
	}

	return &cmd
}

// parseWords reads a command stream in one of three forms: a hex packed payload, whitespace
// separated decimal words (from arguments) or a JSON array.
func parseWords(input []byte, packed, fromArgs bool) ([]uint32, error) {
	input = bytes.TrimSpace(input)

	if packed {
		b, err := hex.DecodeString(string(input))
		if err != nil {
			return nil, errors.Wrap(err, "decode hex payload")
		}

		return geometry.UnpackWords(b)
	}

	if fromArgs {
		fields := strings.Fields(string(input))
		words := make([]uint32, 0, len(fields))
		for _, f := range fields {
			w, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "word %q", f)
			}
			words = append(words, uint32(w))
		}

		return words, nil
	}

	var words []uint32
	if err := json.Unmarshal(input, &words); err != nil {
		return nil, errors.Wrap(err, "parse word array")
	}

	return words, nil
}
