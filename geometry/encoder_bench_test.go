package geometry

import (
	"slices"
	"testing"
)

var benchmarkSizes = []struct {
	name string
	size int
}{
	{"10_points", 10},
	{"100_points", 100},
	{"1000_points", 1000},
	{"10000_points", 10000},
}

// generateSpiral returns a path that winds outwards from the tile center, with every
// fifth point repeated to exercise duplicate filtering.
func generateSpiral(n int) []Point {
	points := make([]Point, 0, n)
	x, y := int16(2048), int16(2048)
	for i := range n {
		step := int16(i%64 + 1)
		switch i % 4 {
		case 0:
			x += step
		case 1:
			y += step
		case 2:
			x -= step + 1
		default:
			y -= step + 1
		}
		if i%5 == 4 && len(points) > 0 {
			points = append(points, points[len(points)-1])
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points
}

func BenchmarkEncoder_AddLineString(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			points := generateSpiral(size.size)
			enc := NewEncoder()

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				enc.Reset()
				enc.AddLineString(points)
			}
		})
	}
}

func BenchmarkEncoder_AddLineStringSeq(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			points := generateSpiral(size.size)
			enc := NewEncoder()

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				enc.Reset()
				enc.AddLineStringSeq(slices.Values(points))
			}
		})
	}
}

func BenchmarkEncoder_NewAddFinish(b *testing.B) {
	points := generateSpiral(100)

	b.ReportAllocs()
	for b.Loop() {
		enc := NewEncoder()
		enc.AddRing(points)
		_ = enc.Finish()
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(size.name, func(b *testing.B) {
			enc := NewEncoder()
			enc.AddLineString(generateSpiral(size.size))
			words := enc.Finish()

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Decode(words); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
