package graph

import "fmt"

type transposeAttrs struct {
	perm []int
}

// Perm returns the Transpose operator's permutation vector. It panics
// if op is not an OpTranspose.
func (op *Operator) Perm() []int {
	if op.kind != OpTranspose {
		panic("graph: Perm called on non-Transpose operator")
	}

	return append([]int(nil), op.transpose.perm...)
}

// AddTranspose creates a Transpose operator over input, permuting its
// dimensions by perm, and wires it into the graph. perm must be a
// permutation of [0, rank(input)).
func (g *Graph) AddTranspose(input *Tensor, perm []int) (*Operator, *Tensor, error) {
	if err := g.mustOwnTensor(input); err != nil {
		return nil, nil, err
	}

	outShape, err := input.Dims().permute(perm)
	if err != nil {
		return nil, nil, err
	}

	output := g.AddTensor(outShape, input.DType())

	op := newOperator(g.nextGUIDVal(), OpTranspose, []*Tensor{input}, []*Tensor{output})
	op.transpose = &transposeAttrs{perm: append([]int(nil), perm...)}

	g.addOperatorAndConnect(op)
	g.CheckValid()

	return op, output, nil
}

func transposeInferShape(op *Operator) ([]Shape, error) {
	shape, err := op.inputs[0].Dims().permute(op.transpose.perm)
	if err != nil {
		return nil, fmt.Errorf("operator guid=%d: %w", op.guid, err)
	}

	return []Shape{shape}, nil
}
