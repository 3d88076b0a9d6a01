package ops

import "github.com/snake-ml/snake/internal/tensor"

// SubOp represents element-wise subtraction: output = lhs - rhs.
type SubOp struct {
	lhs    *tensor.RawTensor
	rhs    *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSubOp creates a new subtraction operation.
func NewSubOp(lhs, rhs, output *tensor.RawTensor) *SubOp {
	return &SubOp{lhs: lhs, rhs: rhs, output: output}
}

// Backward computes gradients for subtraction.
// d(lhs-rhs)/d(lhs) = 1, d(lhs-rhs)/d(rhs) = -1.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradLhs := reduceBroadcast(outputGrad, op.lhs.Shape(), backend)
	gradRhs := reduceBroadcast(negateGradient(outputGrad, backend), op.rhs.Shape(), backend)
	return []*tensor.RawTensor{gradLhs, gradRhs}
}

// Inputs returns the input tensors.
func (op *SubOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.lhs, op.rhs}
}

// Output returns the output tensor.
func (op *SubOp) Output() *tensor.RawTensor {
	return op.output
}
