package geometry

// Point is a tile-local coordinate. The valid range is set by the layer extent
// (typically 0..4096) and is not enforced here.
type Point struct {
	X int16
	Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}
