package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZag32_Table(t *testing.T) {
	tests := []struct {
		in   int32
		want uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{4096, 8192},
		{-4096, 8191},
		{math.MaxInt16, 65534},
		{math.MinInt16, 65535},
		{math.MaxInt32, math.MaxUint32 - 1},
		{math.MinInt32, math.MaxUint32},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ZigZag32(tt.in), "ZigZag32(%d)", tt.in)
		require.Equal(t, tt.in, UnZigZag32(tt.want), "UnZigZag32(%d)", tt.want)
	}
}

func TestZigZag32_RoundTripDeltaRange(t *testing.T) {
	// Every delta two int16 coordinates can produce.
	const maxDelta = math.MaxInt16 - math.MinInt16

	for v := int32(-maxDelta); v <= maxDelta; v++ {
		if got := UnZigZag32(ZigZag32(v)); got != v {
			require.Equal(t, v, got, "round trip of %d", v)
		}
	}
}

func TestZigZag32_SmallMagnitudesStaySmall(t *testing.T) {
	for v := int32(-64); v <= 64; v++ {
		abs := v
		if abs < 0 {
			abs = -abs
		}
		require.LessOrEqual(t, ZigZag32(v), uint32(2*abs), "ZigZag32(%d)", v)
	}
}

func BenchmarkZigZag32(b *testing.B) {
	var sink uint32
	b.ReportAllocs()
	for b.Loop() {
		for v := int32(-4096); v <= 4096; v++ {
			sink += ZigZag32(v)
		}
	}
	_ = sink
}
