package graph

// UnaryKind names an element-wise operation whose output shape always
// equals its input shape.
type UnaryKind string

// Supported unary op kinds. This core does not execute these
// operations; the kind only participates in diagnostics and the
// rewrite pass's traversal.
const (
	Relu     UnaryKind = "Relu"
	Sigmoid  UnaryKind = "Sigmoid"
	Tanh     UnaryKind = "Tanh"
	Abs      UnaryKind = "Abs"
	Neg      UnaryKind = "Neg"
	Sqrt     UnaryKind = "Sqrt"
	ExpUnary UnaryKind = "Exp"
)

type unaryAttrs struct {
	kind UnaryKind
}

// UnaryKind returns the op's element-wise function. It panics if op is
// not an OpUnary.
func (op *Operator) UnaryKind() UnaryKind {
	if op.kind != OpUnary {
		panic("graph: UnaryKind called on non-Unary operator")
	}

	return op.unary.kind
}

// AddUnary creates a unary element-wise operator over input and wires it
// into the graph.
func (g *Graph) AddUnary(kind UnaryKind, input *Tensor) (*Operator, *Tensor, error) {
	if err := g.mustOwnTensor(input); err != nil {
		return nil, nil, err
	}

	outShape := unaryInferShape(input.Dims())
	output := g.AddTensor(outShape, input.DType())

	op := newOperator(g.nextGUIDVal(), OpUnary, []*Tensor{input}, []*Tensor{output})
	op.unary = &unaryAttrs{kind: kind}

	g.addOperatorAndConnect(op)
	g.CheckValid()

	return op, output, nil
}

func unaryInferShape(input Shape) Shape {
	return input.Clone()
}
