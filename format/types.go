package format

type (
	CommandID uint8
	GeomType  uint8
)

const (
	MoveTo    CommandID = 0x1 // MoveTo starts a new part at the encoded position.
	LineTo    CommandID = 0x2 // LineTo extends the current part with a segment.
	ClosePath CommandID = 0x7 // ClosePath closes the current ring; it carries no parameters.

	GeomUnknown    GeomType = 0x0 // GeomUnknown is the MVT UNKNOWN geometry type.
	GeomPoint      GeomType = 0x1 // GeomPoint represents Point and MultiPoint features.
	GeomLineString GeomType = 0x2 // GeomLineString represents LineString and MultiLineString features.
	GeomPolygon    GeomType = 0x3 // GeomPolygon represents Polygon and MultiPolygon features.
)

const (
	// CommandBits is the number of low bits of a command word that hold the command id.
	CommandBits = 3
	// CommandMask extracts the command id from a command word.
	CommandMask = 1<<CommandBits - 1
	// MaxCommandCount is the largest count a command word can carry.
	MaxCommandCount = 1<<(32-CommandBits) - 1

	MoveToOnce    = uint32(1<<CommandBits) | uint32(MoveTo)    // MoveToOnce is a MoveTo command with count 1.
	ClosePathOnce = uint32(1<<CommandBits) | uint32(ClosePath) // ClosePathOnce is the only valid ClosePath word.
)

// Command packs a command id and its repeat count into a command word.
func Command(id CommandID, count uint32) uint32 {
	return count<<CommandBits | uint32(id)
}

// ParseCommand splits a command word into its id and repeat count.
func ParseCommand(word uint32) (CommandID, uint32) {
	return CommandID(word & CommandMask), word >> CommandBits
}

// Params returns the number of parameter words that follow a command with the given count.
func (c CommandID) Params(count uint32) int {
	if c == ClosePath {
		return 0
	}

	return 2 * int(count)
}

// Valid reports whether c is one of the commands defined by the MVT geometry encoding.
func (c CommandID) Valid() bool {
	switch c {
	case MoveTo, LineTo, ClosePath:
		return true
	default:
		return false
	}
}

func (c CommandID) String() string {
	switch c {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case ClosePath:
		return "ClosePath"
	default:
		return "Unknown"
	}
}

func (t GeomType) String() string {
	switch t {
	case GeomUnknown:
		return "Unknown"
	case GeomPoint:
		return "Point"
	case GeomLineString:
		return "LineString"
	case GeomPolygon:
		return "Polygon"
	default:
		return "Invalid"
	}
}

// ParseGeomType maps a geometry type name, either as returned by GeomType.String or in
// lower case, back to its GeomType. The second return value is false for unrecognized names.
func ParseGeomType(name string) (GeomType, bool) {
	switch name {
	case "Unknown", "unknown":
		return GeomUnknown, true
	case "Point", "point":
		return GeomPoint, true
	case "LineString", "linestring":
		return GeomLineString, true
	case "Polygon", "polygon":
		return GeomPolygon, true
	default:
		return GeomUnknown, false
	}
}
