package errs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestSentinels_Distinct(t *testing.T) {
	all := []error{
		ErrInvalidCapacity,
		ErrUnknownCommand,
		ErrInvalidCommandCount,
		ErrTruncatedGeometry,
		ErrCoordinateOverflow,
		ErrInvalidGeometry,
		ErrMalformedPacked,
		ErrUnsupportedGeometry,
		ErrInvalidGeomType,
		ErrUnsupportedValue,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestSentinels_Wrapped(t *testing.T) {
	err := errors.Wrapf(ErrTruncatedGeometry, "LineTo at word %d", 3)

	require.ErrorIs(t, err, ErrTruncatedGeometry)
	require.Contains(t, err.Error(), "LineTo at word 3")
	require.Contains(t, err.Error(), ErrTruncatedGeometry.Error())
}
