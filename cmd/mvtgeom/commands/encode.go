package commands

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/mvtgeom/geometry"
	"github.com/arloliu/mvtgeom/tag"
)

type featureLine struct {
	ID       any      `json:"id,omitempty"`
	Type     string   `json:"type"`
	Geometry any      `json:"geometry"`
	Tags     []uint32 `json:"tags"`
}

type layerLine struct {
	Layer struct {
		Keys   []string         `json:"keys"`
		Values []map[string]any `json:"values"`
	} `json:"layer"`
}

// NewEncodeCommand returns a cli.Command for "mvtgeom encode".
func NewEncodeCommand(log *logrus.Logger) *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode a GeoJSON FeatureCollection in tile coordinates into MVT features.",
		UsageText: `mvtgeom encode [options]`,
		Description: `The encode command reads a GeoJSON FeatureCollection whose coordinates are
already projected to tile space (for example 0..4096) and writes one JSON line per feature,
followed by a line holding the layer's key and value tables:

$ mvtgeom encode -i roads.geojson
{"id":1,"type":"LineString","geometry":[9,4,4,18,0,16,16,0],"tags":[0,0]}
{"layer":{"keys":["name"],"values":[{"string_value":"Main St"}]}}

Features that cannot be encoded are logged and skipped.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "GeoJSON file to read. Defaults to STDIN.",
			},
			&cli.BoolFlag{
				Name:    "validate",
				Usage:   "check every encoded geometry against the MVT 2.1 rules and skip invalid ones",
				EnvVars: []string{"MVTGEOM_VALIDATE"},
			},
			&cli.BoolFlag{
				Name:  "packed",
				Usage: "write geometries as hex encoded packed varint payloads",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		data, err := readInput(c.String("input"), c.App.Reader)
		if err != nil {
			return err
		}

		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return errors.Wrap(err, "parse feature collection")
		}

		e := &layerEncoder{
			log:      log,
			validate: c.Bool("validate"),
			packed:   c.Bool("packed"),
			geom:     geometry.NewEncoder(),
			tags:     tag.NewEncoder(),
			out:      json.NewEncoder(c.App.Writer),
		}
		defer e.geom.Finish()

		for i, f := range fc.Features {
			if err := c.Context.Err(); err != nil {
				return err
			}
			if err := e.encodeFeature(i, f); err != nil {
				return err
			}
		}

		return e.writeLayer()
	}

	return &cmd
}

type layerEncoder struct {
	log      *logrus.Logger
	validate bool
	packed   bool
	geom     *geometry.Encoder
	tags     *tag.Encoder
	out      *json.Encoder

	written int
	skipped int
}

// encodeFeature writes one feature line. Only write errors are returned; a feature that cannot
// be encoded is logged and skipped.
func (e *layerEncoder) encodeFeature(idx int, f *geojson.Feature) error {
	entry := e.log.WithFields(logrus.Fields{"feature": idx, "id": f.ID})

	e.geom.Reset()
	t, err := e.geom.AddOrb(f.Geometry)
	if err != nil {
		entry.WithError(err).Warn("skipping feature")
		e.skipped++

		return nil
	}

	words := e.geom.Words()
	if e.validate {
		if err := geometry.Validate(t, words); err != nil {
			entry.WithError(err).Warn("skipping invalid geometry")
			e.skipped++

			return nil
		}
	}

	keys := make([]string, 0, len(f.Properties))
	for k := range f.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v, err := tag.ValueOf(f.Properties[k])
		if err != nil {
			entry.WithField("key", k).WithError(err).Debug("skipping property")
			continue
		}
		if err := e.tags.Add(k, v); err != nil {
			return err
		}
	}

	line := featureLine{
		ID:   f.ID,
		Type: t.String(),
		Tags: e.tags.TakeTags(),
	}
	if line.Tags == nil {
		line.Tags = []uint32{}
	}
	if e.packed {
		line.Geometry = hex.EncodeToString(geometry.AppendPacked(nil, words))
	} else {
		line.Geometry = words
	}

	entry.WithFields(logrus.Fields{"type": t, "words": len(words)}).Debug("encoded feature")
	e.written++

	return errors.Wrap(e.out.Encode(line), "write feature")
}

func (e *layerEncoder) writeLayer() error {
	var line layerLine
	line.Layer.Keys = e.tags.Keys()
	if line.Layer.Keys == nil {
		line.Layer.Keys = []string{}
	}
	line.Layer.Values = make([]map[string]any, 0, len(e.tags.Values()))
	for _, v := range e.tags.Values() {
		line.Layer.Values = append(line.Layer.Values, map[string]any{valueField(v.Kind()): v.Any()})
	}

	fields := logrus.Fields{
		"features": e.written,
		"skipped":  e.skipped,
		"keys":     len(line.Layer.Keys),
		"values":   len(line.Layer.Values),
	}
	if e.tags.HasCollision() {
		e.log.WithFields(fields).Warn("tag hash collision detected")
	}
	e.log.WithFields(fields).Info("encoded layer")

	return errors.Wrap(e.out.Encode(line), "write layer")
}

// valueField returns the MVT Value message field name for k.
func valueField(k tag.Kind) string {
	switch k {
	case tag.KindString:
		return "string_value"
	case tag.KindFloat:
		return "float_value"
	case tag.KindDouble:
		return "double_value"
	case tag.KindInt:
		return "int_value"
	case tag.KindUint:
		return "uint_value"
	case tag.KindSInt:
		return "sint_value"
	case tag.KindBool:
		return "bool_value"
	default:
		return "unknown"
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	}

	data, err := os.ReadFile(path)

	return data, errors.Wrapf(err, "read %s", path)
}
