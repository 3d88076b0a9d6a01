package ops

import "github.com/snake-ml/snake/internal/tensor"

// MulOp represents element-wise multiplication: output = lhs * rhs.
type MulOp struct {
	lhs    *tensor.RawTensor
	rhs    *tensor.RawTensor
	output *tensor.RawTensor
}

// NewMulOp creates a new multiplication operation.
func NewMulOp(lhs, rhs, output *tensor.RawTensor) *MulOp {
	return &MulOp{lhs: lhs, rhs: rhs, output: output}
}

// Backward computes gradients for multiplication.
// d(lhs*rhs)/d(lhs) = rhs, d(lhs*rhs)/d(rhs) = lhs.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradLhs := reduceBroadcast(backend.Mul(outputGrad, op.rhs), op.lhs.Shape(), backend)
	gradRhs := reduceBroadcast(backend.Mul(outputGrad, op.lhs), op.rhs.Shape(), backend)
	return []*tensor.RawTensor{gradLhs, gradRhs}
}

// Inputs returns the input tensors.
func (op *MulOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.lhs, op.rhs}
}

// Output returns the output tensor.
func (op *MulOp) Output() *tensor.RawTensor {
	return op.output
}
