package graph

// Storage binds a tensor to a byte range within a graph's arena: a base
// pointer shared by every tensor in the graph, a byte offset into that
// base, and the byte length the tensor occupies.
type Storage struct {
	Base   uintptr
	Offset int
	Bytes  int
}

// Tensor is an n-dimensional array value flowing through the graph. It
// carries no data of its own (numeric storage and kernels are outside
// this core's scope); it only carries the metadata needed for shape and
// dtype inference, graph connectivity, and memory planning.
type Tensor struct {
	fuid    uint64
	shape   Shape
	dtype   DataType
	source  *Operator
	targets *tensorOperatorSet
	storage *Storage
}

// tensorOperatorSet is the consumer set of a Tensor: an insertion-order,
// unique-by-GUID collection of Operators.
type tensorOperatorSet = orderedSet

func newTensor(fuid uint64, shape Shape, dtype DataType) *Tensor {
	return &Tensor{
		fuid:    fuid,
		shape:   shape.Clone(),
		dtype:   dtype,
		targets: newOrderedSet(),
	}
}

// FUID returns the tensor's stable, graph-unique identifier.
func (t *Tensor) FUID() uint64 { return t.fuid }

// Dims returns the tensor's dimension list.
func (t *Tensor) Dims() Shape { return t.shape.Clone() }

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// DType returns the tensor's element data type.
func (t *Tensor) DType() DataType { return t.dtype }

// Bytes returns the tensor's storage footprint: the product of its
// dimensions times the byte width of its dtype.
func (t *Tensor) Bytes() int {
	return t.shape.NumElements() * t.dtype.Width()
}

// Source returns the operator that produces this tensor, or nil if the
// tensor is a graph input or constant.
func (t *Tensor) Source() *Operator { return t.source }

// Targets returns the operators that consume this tensor, in the order
// they were wired in.
func (t *Tensor) Targets() []*Operator { return t.targets.slice() }

// Storage returns the tensor's memory binding, or nil if DataMalloc has
// not yet been run.
func (t *Tensor) Storage() *Storage { return t.storage }

func (t *Tensor) setShape(s Shape) {
	t.shape = s.Clone()
}

func (t *Tensor) addTarget(op *Operator) {
	t.targets.add(op)
}

func (t *Tensor) removeTarget(op *Operator) {
	t.targets.remove(op)
}

func (t *Tensor) hasTarget(op *Operator) bool {
	return t.targets.has(op)
}
