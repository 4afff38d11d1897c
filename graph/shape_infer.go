package graph

// ShapeInfer walks the graph's operators in their current order and
// recomputes each operator's output shapes from its current input
// shapes, updating any tensor whose shape changed. It assumes the
// operator list is already topologically sorted (TopoSort must have
// last returned true) and dtype is fixed at construction time for every
// operator except Cast, whose output dtype is decided once, at
// construction.
//
// A shape rule that rejects its current inputs is a fatal
// ShapeMismatch: it can only happen if a rewrite produced an invalid
// graph, which is a programming error rather than something a caller
// recovers from.
func (g *Graph) ShapeInfer() {
	for _, op := range g.ops {
		newShapes, err := op.inferShape()
		if err != nil {
			panic(err)
		}

		outputs := op.outputs
		if len(newShapes) != len(outputs) {
			panicStructural("operator guid=%d inferShape returned %d shapes for %d outputs", op.guid, len(newShapes), len(outputs))
		}

		for i, newShape := range newShapes {
			if !outputs[i].shape.Equal(newShape) {
				outputs[i].setShape(newShape)
			}
		}
	}
}

// inferShape dispatches to the per-kind shape rule selected by op.kind.
func (op *Operator) inferShape() ([]Shape, error) {
	switch op.kind {
	case OpUnary:
		return []Shape{unaryInferShape(op.inputs[0].Dims())}, nil
	case OpMatMul:
		return matMulInferShape(op)
	case OpTranspose:
		return transposeInferShape(op)
	case OpClip:
		return []Shape{clipInferShape(op.inputs[0].Dims())}, nil
	case OpCast:
		return []Shape{castInferShape(op.inputs[0].Dims())}, nil
	default:
		panicStructural("operator guid=%d has unknown kind %q", op.guid, op.kind)

		return nil, nil
	}
}
