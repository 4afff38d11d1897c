package graph

import (
	"unsafe"

	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"
)

var (
	float16Zero float16.Float16
	float8Zero  float8.Float8
)

// DataType identifies the element kind stored by a Tensor.
type DataType int

const (
	// Float32 is an IEEE-754 single-precision float.
	Float32 DataType = iota
	// Float16 is an IEEE-754 half-precision float.
	Float16
	// BFloat16 is the truncated-mantissa brain float format.
	BFloat16
	// Float8 is an 8-bit float, not named by the spec's dtype list but
	// accepted as an extension (the spec's dtype list is open-ended).
	Float8
	// Int64 is a signed 64-bit integer.
	Int64
	// Int32 is a signed 32-bit integer.
	Int32
	// Int16 is a signed 16-bit integer.
	Int16
	// Int8 is a signed 8-bit integer.
	Int8
	// UInt8 is an unsigned 8-bit integer.
	UInt8
	// UInt32 is an unsigned 32-bit integer.
	UInt32
)

// dtypeWidths holds the per-element byte width of every DataType. Widths
// for types backed by a pack library (float16.Float16, float8.Float8)
// are derived from the library's own representation via unsafe.Sizeof
// rather than hand-copied, so a representation change upstream is
// reflected here automatically.
var dtypeWidths = map[DataType]int{
	Float32: 4,
	// BFloat16 has no dedicated type in the available float libraries
	// (zerfoo/float16 implements IEEE binary16, not the truncated
	// bfloat16 layout), so its width is the one hard-coded constant in
	// this table.
	BFloat16: 2,
	Int64:    8,
	Int32:    4,
	Int16:    2,
	Int8:     1,
	UInt8:    1,
	UInt32:   4,
}

func init() {
	dtypeWidths[Float16] = int(unsafe.Sizeof(float16Zero))
	dtypeWidths[Float8] = int(unsafe.Sizeof(float8Zero))
}

// Width returns the number of bytes a single element of this DataType
// occupies. It panics on an unknown DataType, which can only happen if
// a value outside the declared constants is constructed by hand.
func (d DataType) Width() int {
	w, ok := dtypeWidths[d]
	if !ok {
		panic("graph: unknown DataType")
	}

	return w
}

// String renders the DataType's symbolic name, used by diagnostics.
func (d DataType) String() string {
	switch d {
	case Float32:
		return "Float32"
	case Float16:
		return "Float16"
	case BFloat16:
		return "BFloat16"
	case Float8:
		return "Float8"
	case Int64:
		return "Int64"
	case Int32:
		return "Int32"
	case Int16:
		return "Int16"
	case Int8:
		return "Int8"
	case UInt8:
		return "UInt8"
	case UInt32:
		return "UInt32"
	default:
		return "Unknown"
	}
}
