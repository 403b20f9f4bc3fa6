package tag

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/mvtgeom/errs"
	"github.com/arloliu/mvtgeom/internal/hash"
)

// Kind identifies which field of the MVT Value message a tag value occupies.
type Kind uint8

const (
	KindString Kind = iota + 1 // string_value
	KindFloat                  // float_value (float32)
	KindDouble                 // double_value (float64)
	KindInt                    // int_value (int64)
	KindUint                   // uint_value (uint64)
	KindSInt                   // sint_value (zig-zag int64)
	KindBool                   // bool_value
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindSInt:
		return "SInt"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Value is a typed feature attribute value.
//
// Value is comparable: two values are equal when they have the same kind and the same bit
// pattern, so Double(math.NaN()) equals itself and Double(0) differs from Double(-0).
// The zero Value has no kind and is rejected by Encoder.Add.
type Value struct {
	kind Kind
	bits uint64 // numeric payload, float bits for Float and Double
	s    string // payload of KindString
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Float returns a 32-bit float value.
func Float(f float32) Value { return Value{kind: KindFloat, bits: uint64(math.Float32bits(f))} }

// Double returns a 64-bit float value.
func Double(f float64) Value { return Value{kind: KindDouble, bits: math.Float64bits(f)} }

// Int returns a signed integer value stored as int_value.
func Int(i int64) Value { return Value{kind: KindInt, bits: uint64(i)} } //nolint:gosec

// Uint returns an unsigned integer value.
func Uint(u uint64) Value { return Value{kind: KindUint, bits: u} }

// SInt returns a signed integer value stored as sint_value.
func SInt(i int64) Value { return Value{kind: KindSInt, bits: uint64(i)} } //nolint:gosec

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.bits = 1
	}

	return v
}

// ValueOf converts a decoded JSON property into a Value.
//
// Strings and booleans map to String and Bool. A float64 holding an integer that fits in int64
// maps to Int, any other number to Double. Negative zero is integral, so -0.0 maps to Int(0)
// and loses its sign. Integer types map to Int or Uint by signedness.
// Returns errs.ErrUnsupportedValue for nil, objects, arrays and other types.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return Int(int64(v)), nil
		}

		return Double(v), nil
	case float32:
		return Float(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case int32:
		return Int(int64(v)), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case uint32:
		return Uint(uint64(v)), nil
	default:
		return Value{}, errors.Wrapf(errs.ErrUnsupportedValue, "%T", v)
	}
}

// Kind returns the kind of v, or 0 for the zero Value.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the payload of a String value.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsFloat returns the payload of a Float value.
func (v Value) AsFloat() (float32, bool) {
	return math.Float32frombits(uint32(v.bits)), v.kind == KindFloat //nolint:gosec
}

// AsDouble returns the payload of a Double value.
func (v Value) AsDouble() (float64, bool) { return math.Float64frombits(v.bits), v.kind == KindDouble }

// AsInt returns the payload of an Int value.
func (v Value) AsInt() (int64, bool) { return int64(v.bits), v.kind == KindInt } //nolint:gosec

// AsUint returns the payload of a Uint value.
func (v Value) AsUint() (uint64, bool) { return v.bits, v.kind == KindUint }

// AsSInt returns the payload of an SInt value.
func (v Value) AsSInt() (int64, bool) { return int64(v.bits), v.kind == KindSInt } //nolint:gosec

// AsBool returns the payload of a Bool value.
func (v Value) AsBool() (bool, bool) { return v.bits != 0, v.kind == KindBool }

// Any returns the payload as a plain Go value, or nil for the zero Value.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindFloat:
		f, _ := v.AsFloat()
		return f
	case KindDouble:
		f, _ := v.AsDouble()
		return f
	case KindInt, KindSInt:
		return int64(v.bits) //nolint:gosec
	case KindUint:
		return v.bits
	case KindBool:
		return v.bits != 0
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindFloat:
		f, _ := v.AsFloat()
		return "Float(" + strconv.FormatFloat(float64(f), 'g', -1, 32) + ")"
	case KindDouble:
		f, _ := v.AsDouble()
		return "Double(" + strconv.FormatFloat(f, 'g', -1, 64) + ")"
	case KindInt:
		return "Int(" + strconv.FormatInt(int64(v.bits), 10) + ")" //nolint:gosec
	case KindUint:
		return "Uint(" + strconv.FormatUint(v.bits, 10) + ")"
	case KindSInt:
		return "SInt(" + strconv.FormatInt(int64(v.bits), 10) + ")" //nolint:gosec
	case KindBool:
		return "Bool(" + strconv.FormatBool(v.bits != 0) + ")"
	default:
		return "<invalid>"
	}
}

func (v Value) hash() uint64 {
	return hash.Tagged(uint8(v.kind), v.bits, v.s)
}
