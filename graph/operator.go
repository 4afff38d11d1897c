package graph

// OpKind tags which concrete computation an Operator performs.
type OpKind string

// The operator kinds this core knows how to shape- and dtype-infer.
const (
	OpUnary     OpKind = "Unary"
	OpMatMul    OpKind = "MatMul"
	OpTranspose OpKind = "Transpose"
	OpClip      OpKind = "Clip"
	OpCast      OpKind = "Cast"
)

// Operator is one computation node in the graph: a shared header (GUID,
// op-kind tag, operand lists, neighbour sets) plus exactly one populated
// kind-specific attribute payload, selected by Kind. This mirrors the
// tagged-variant shape the design notes call for: a single concrete
// type the graph can store and traverse uniformly, with per-kind
// behaviour dispatched on the tag rather than through an interface
// hierarchy.
type Operator struct {
	guid    uint64
	kind    OpKind
	inputs  []*Tensor
	outputs []*Tensor
	preds   *orderedSet
	succs   *orderedSet

	unary     *unaryAttrs
	matmul    *matMulAttrs
	transpose *transposeAttrs
	clip      *clipAttrs
	cast      *castAttrs
}

func newOperator(guid uint64, kind OpKind, inputs, outputs []*Tensor) *Operator {
	return &Operator{
		guid:    guid,
		kind:    kind,
		inputs:  append([]*Tensor(nil), inputs...),
		outputs: append([]*Tensor(nil), outputs...),
		preds:   newOrderedSet(),
		succs:   newOrderedSet(),
	}
}

// GUID returns the operator's stable, graph-unique identifier.
func (op *Operator) GUID() uint64 { return op.guid }

// OpKind returns the operator's kind tag.
func (op *Operator) OpKind() OpKind { return op.kind }

// Inputs returns the operator's ordered input tensors.
func (op *Operator) Inputs() []*Tensor {
	out := make([]*Tensor, len(op.inputs))
	copy(out, op.inputs)

	return out
}

// Outputs returns the operator's ordered output tensors.
func (op *Operator) Outputs() []*Tensor {
	out := make([]*Tensor, len(op.outputs))
	copy(out, op.outputs)

	return out
}

// Predecessors returns the operators producing any of this operator's
// inputs, in the order the edges were established.
func (op *Operator) Predecessors() []*Operator { return op.preds.slice() }

// Successors returns the operators consuming any of this operator's
// outputs, in the order the edges were established.
func (op *Operator) Successors() []*Operator { return op.succs.slice() }

// Attributes returns the operator's non-tensor, kind-specific
// attributes as a diagnostic map.
func (op *Operator) Attributes() map[string]any {
	switch op.kind {
	case OpUnary:
		return map[string]any{"kind": string(op.unary.kind)}
	case OpMatMul:
		return map[string]any{"transA": op.matmul.transA, "transB": op.matmul.transB}
	case OpTranspose:
		return map[string]any{"perm": append([]int(nil), op.transpose.perm...)}
	case OpClip:
		return map[string]any{"min": op.clip.min, "max": op.clip.max}
	case OpCast:
		return map[string]any{"castKind": string(op.cast.kind)}
	default:
		return map[string]any{}
	}
}

func (op *Operator) replaceInput(old, replacement *Tensor) {
	for i, in := range op.inputs {
		if in == old {
			op.inputs[i] = replacement
		}
	}
}
