package graph

import "fmt"

// CastKind names a source-dtype-to-destination-dtype conversion. The
// set mirrors the reference implementation's cast table rather than
// every mathematically possible pairing.
type CastKind string

// Supported cast kinds and the dtype each one produces, per §4.3's
// lookup table.
const (
	CastFloat2Float16   CastKind = "Float2Float16"
	CastFloat2Int64     CastKind = "Float2Int64"
	CastFloat2Int32     CastKind = "Float2Int32"
	CastFloat2Int16     CastKind = "Float2Int16"
	CastFloat2Int8      CastKind = "Float2Int8"
	CastFloat2BFloat16  CastKind = "Float2BFloat16"
	CastFloat2Float     CastKind = "Float2Float"
	CastInt322Float     CastKind = "Int322Float"
	CastInt322Int8      CastKind = "Int322Int8"
	CastInt322Int16     CastKind = "Int322Int16"
	CastInt322Int64     CastKind = "Int322Int64"
	CastInt162Float     CastKind = "Int162Float"
	CastInt162Int32     CastKind = "Int162Int32"
	CastInt82Float      CastKind = "Int82Float"
	CastInt82Int16      CastKind = "Int82Int16"
	CastInt82Int32      CastKind = "Int82Int32"
	CastUint82Float     CastKind = "Uint82Float"
	CastUint82Int32     CastKind = "Uint82Int32"
	CastUint82Int64     CastKind = "Uint82Int64"
	CastInt642Int32     CastKind = "Int642Int32"
	CastInt642Uint32    CastKind = "Int642Uint32"
	CastInt642Float     CastKind = "Int642Float"
	CastUint322Int64    CastKind = "Uint322Int64"
	CastFloat162Float   CastKind = "Float162Float"
	CastBFloat162Float  CastKind = "BFloat162Float"
)

// castOutputDType maps each CastKind to the DataType it produces. An
// unknown CastKind is a fatal error at construction time, per the
// UnsupportedCast error kind.
var castOutputDType = map[CastKind]DataType{
	CastFloat2Float16:  Float16,
	CastFloat2Int64:    Int64,
	CastFloat2Int32:    Int32,
	CastFloat2Int16:    Int16,
	CastFloat2Int8:     Int8,
	CastFloat2BFloat16: BFloat16,
	CastFloat2Float:    Float32,
	CastInt322Float:    Float32,
	CastInt322Int8:     Int8,
	CastInt322Int16:    Int16,
	CastInt322Int64:    Int64,
	CastInt162Float:    Float32,
	CastInt162Int32:    Int32,
	CastInt82Float:     Float32,
	CastInt82Int16:     Int16,
	CastInt82Int32:     Int32,
	CastUint82Float:    Float32,
	CastUint82Int32:    Int32,
	CastUint82Int64:    Int64,
	CastInt642Int32:    Int32,
	CastInt642Uint32:   UInt32,
	CastInt642Float:    Float32,
	CastUint322Int64:   Int64,
	CastFloat162Float:  Float32,
	CastBFloat162Float: Float32,
}

type castAttrs struct {
	kind CastKind
}

// CastKind returns the Cast operator's conversion kind. It panics if op
// is not an OpCast.
func (op *Operator) CastKind() CastKind {
	if op.kind != OpCast {
		panic("graph: CastKind called on non-Cast operator")
	}

	return op.cast.kind
}

// InferCastDType looks up the destination DataType for kind. Cast
// construction calls this eagerly since, per §4.3, dtype is otherwise
// fixed at construction time and Cast is the one operator whose output
// dtype depends on an attribute.
func InferCastDType(kind CastKind) (DataType, error) {
	dt, ok := castOutputDType[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCast, kind)
	}

	return dt, nil
}

// AddCast creates a Cast operator over input and wires it into the
// graph. The output tensor's dtype is taken from the CastKind lookup
// table; an unrecognized kind fails construction with UnsupportedCast.
func (g *Graph) AddCast(input *Tensor, kind CastKind) (*Operator, *Tensor, error) {
	if err := g.mustOwnTensor(input); err != nil {
		return nil, nil, err
	}

	outDType, err := InferCastDType(kind)
	if err != nil {
		return nil, nil, err
	}

	outShape := castInferShape(input.Dims())
	output := g.AddTensor(outShape, outDType)

	op := newOperator(g.nextGUIDVal(), OpCast, []*Tensor{input}, []*Tensor{output})
	op.cast = &castAttrs{kind: kind}

	g.addOperatorAndConnect(op)
	g.CheckValid()

	return op, output, nil
}

func castInferShape(input Shape) Shape {
	return input.Clone()
}
