package graph

import "fmt"

type matMulAttrs struct {
	transA bool
	transB bool
}

// TransA reports whether the MatMul operator transposes its first
// operand's last two dimensions before multiplying. It panics if op is
// not an OpMatMul.
func (op *Operator) TransA() bool {
	if op.kind != OpMatMul {
		panic("graph: TransA called on non-MatMul operator")
	}

	return op.matmul.transA
}

// TransB reports whether the MatMul operator transposes its second
// operand's last two dimensions before multiplying.
func (op *Operator) TransB() bool {
	if op.kind != OpMatMul {
		panic("graph: TransB called on non-MatMul operator")
	}

	return op.matmul.transB
}

// SetTransA sets the MatMul operator's transA flag to v. The rewrite pass
// uses this to fold an operand-side Transpose into the MatMul.
func (op *Operator) SetTransA(v bool) {
	if op.kind != OpMatMul {
		panic("graph: SetTransA called on non-MatMul operator")
	}

	op.matmul.transA = v
}

// SetTransB sets the MatMul operator's transB flag to v.
func (op *Operator) SetTransB(v bool) {
	if op.kind != OpMatMul {
		panic("graph: SetTransB called on non-MatMul operator")
	}

	op.matmul.transB = v
}

// AddMatMul creates a MatMul operator over a and b and wires it into the
// graph. Both operands must have the same rank, at least two, and once
// their respective trans flags are applied the last dimension of a must
// equal the second-to-last dimension of b; construction fails fast
// (ShapeMismatch) rather than deferring the check to ShapeInfer.
func (g *Graph) AddMatMul(a, b *Tensor, transA, transB bool) (*Operator, *Tensor, error) {
	if err := g.mustOwnTensor(a); err != nil {
		return nil, nil, err
	}

	if err := g.mustOwnTensor(b); err != nil {
		return nil, nil, err
	}

	outShape, err := matMulShape(a.Dims(), b.Dims(), transA, transB)
	if err != nil {
		return nil, nil, err
	}

	output := g.AddTensor(outShape, a.DType())

	op := newOperator(g.nextGUIDVal(), OpMatMul, []*Tensor{a, b}, []*Tensor{output})
	op.matmul = &matMulAttrs{transA: transA, transB: transB}

	g.addOperatorAndConnect(op)
	g.CheckValid()

	return op, output, nil
}

func matMulInferShape(op *Operator) ([]Shape, error) {
	a, b := op.inputs[0], op.inputs[1]

	shape, err := matMulShape(a.Dims(), b.Dims(), op.matmul.transA, op.matmul.transB)
	if err != nil {
		return nil, err
	}

	return []Shape{shape}, nil
}

// matMulShape implements §4.3's MatMul rule: rank(A) must equal rank(B)
// and be at least 2; A' and B' are A and B with their last two
// dimensions swapped wherever the matching trans flag is set; A'.last
// must equal B'.second-to-last; the result is A' in every dimension
// except the last, which is taken from B'. Leading batch dims are not
// broadcast.
func matMulShape(a, b Shape, transA, transB bool) (Shape, error) {
	if a.Rank() != b.Rank() {
		return nil, fmt.Errorf("%w: MatMul operand ranks differ: %d vs %d", ErrShapeMismatch, a.Rank(), b.Rank())
	}

	if a.Rank() < 2 {
		return nil, fmt.Errorf("%w: MatMul requires rank >= 2, got %d", ErrShapeMismatch, a.Rank())
	}

	aPrime := a
	if transA {
		aPrime = a.swapLastTwo()
	}

	bPrime := b
	if transB {
		bPrime = b.swapLastTwo()
	}

	n := aPrime.Rank()
	if aPrime[n-1] != bPrime[n-2] {
		return nil, fmt.Errorf("%w: MatMul inner dimensions disagree: %d vs %d", ErrShapeMismatch, aPrime[n-1], bPrime[n-2])
	}

	result := aPrime.Clone()
	result[n-1] = bPrime[n-1]

	return result, nil
}
