package ops

import "github.com/snake-ml/snake/internal/tensor"

// AddOp represents element-wise addition: output = lhs + rhs.
type AddOp struct {
	lhs    *tensor.RawTensor
	rhs    *tensor.RawTensor
	output *tensor.RawTensor
}

// NewAddOp creates a new addition operation.
func NewAddOp(lhs, rhs, output *tensor.RawTensor) *AddOp {
	return &AddOp{lhs: lhs, rhs: rhs, output: output}
}

// Backward computes gradients for addition.
// d(lhs+rhs)/d(lhs) = 1, d(lhs+rhs)/d(rhs) = 1,
// so both input gradients equal the output gradient,
// reduced along any broadcast dimensions.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradLhs := reduceBroadcast(outputGrad, op.lhs.Shape(), backend)
	gradRhs := reduceBroadcast(outputGrad, op.rhs.Shape(), backend)
	return []*tensor.RawTensor{gradLhs, gradRhs}
}

// Inputs returns the input tensors.
func (op *AddOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.lhs, op.rhs}
}

// Output returns the output tensor.
func (op *AddOp) Output() *tensor.RawTensor {
	return op.output
}
