package geometry

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/internal/options"
)

// EncoderConfig holds the construction-time settings of an Encoder.
type EncoderConfig struct {
	capacity int
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCapacity pre-sizes the output buffer to hold at least words words.
//
// This is a performance hint for large geometries; it has no effect on the encoded output.
func WithCapacity(words int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if words < 0 {
			return errors.Wrapf(errs.ErrInvalidCapacity, "capacity %d", words)
		}
		c.capacity = words

		return nil
	})
}
