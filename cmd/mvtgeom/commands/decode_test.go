package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mvtgeom/errs"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "line string from args",
			args: []string{"decode", "--type", "linestring", "9", "4", "4", "18", "0", "16", "16", "0"},
			want: `{"type":"LineString","coordinates":[[2,2],[2,10],[10,10]]}`,
		},
		{
			name:  "multipoint from stdin",
			stdin: "[17,10,14,3,9]\n",
			args:  []string{"decode", "-t", "point"},
			want:  `{"type":"MultiPoint","coordinates":[[5,7],[3,2]]}`,
		},
		{
			name: "polygon",
			args: []string{"decode", "-t", "Polygon", "9", "6", "12", "18", "10", "12", "24", "44", "15"},
			want: `{"type":"Polygon","coordinates":[[[3,6],[8,12],[20,34],[3,6]]]}`,
		},
		{
			name:  "packed",
			stdin: "0904041200101000",
			args:  []string{"decode", "-t", "linestring", "--packed"},
			want:  `{"type":"LineString","coordinates":[[2,2],[2,10],[10,10]]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := run(t, "", "decode", "-t", "circle", "9", "0", "0")
	require.ErrorIs(t, err, errs.ErrInvalidGeomType)

	_, _, err = run(t, "", "decode", "-t", "point", "9", "0")
	require.ErrorIs(t, err, errs.ErrTruncatedGeometry)

	_, _, err = run(t, "", "decode", "-t", "polygon", "9", "0", "0", "10", "2", "2")
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)

	_, _, err = run(t, "", "decode", "-t", "point", "nine")
	require.Error(t, err)

	_, _, err = run(t, "[9,", "decode", "-t", "point")
	require.Error(t, err)

	_, _, err = run(t, "zz", "decode", "-t", "point", "--packed")
	require.Error(t, err)

	_, _, err = run(t, "", "decode", "9", "0", "0")
	require.Error(t, err, "--type is required")
}
