package graph

type clipAttrs struct {
	min *float64
	max *float64
}

// Min returns the Clip operator's lower bound, or nil if unset. It
// panics if op is not an OpClip.
func (op *Operator) Min() *float64 {
	if op.kind != OpClip {
		panic("graph: Min called on non-Clip operator")
	}

	return op.clip.min
}

// Max returns the Clip operator's upper bound, or nil if unset.
func (op *Operator) Max() *float64 {
	if op.kind != OpClip {
		panic("graph: Max called on non-Clip operator")
	}

	return op.clip.max
}

// AddClip creates a Clip operator over input and wires it into the
// graph. min and max are optional bounds; either or both may be nil.
//
// The reference implementation this core is modeled on clamps the
// *shape* dimensions using min/max, which is nonsensical (clip bounds
// values, not dimension lengths). That is a bug in the source, not
// intended behavior: this core always passes the input shape through
// unchanged, per §4.3.
func (g *Graph) AddClip(input *Tensor, minVal, maxVal *float64) (*Operator, *Tensor, error) {
	if err := g.mustOwnTensor(input); err != nil {
		return nil, nil, err
	}

	outShape := clipInferShape(input.Dims())
	output := g.AddTensor(outShape, input.DType())

	op := newOperator(g.nextGUIDVal(), OpClip, []*Tensor{input}, []*Tensor{output})
	op.clip = &clipAttrs{min: minVal, max: maxVal}

	g.addOperatorAndConnect(op)
	g.CheckValid()

	return op, output, nil
}

func clipInferShape(input Shape) Shape {
	return input.Clone()
}
