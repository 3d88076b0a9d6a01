package ops

import "github.com/snake-ml/snake/internal/tensor"

// DivOp represents element-wise division: output = lhs / rhs.
type DivOp struct {
	lhs    *tensor.RawTensor
	rhs    *tensor.RawTensor
	output *tensor.RawTensor
}

// NewDivOp creates a new division operation.
func NewDivOp(lhs, rhs, output *tensor.RawTensor) *DivOp {
	return &DivOp{lhs: lhs, rhs: rhs, output: output}
}

// Backward computes gradients for division.
// d(lhs/rhs)/d(lhs) = 1/rhs
// d(lhs/rhs)/d(rhs) = -lhs/rhs² = -output/rhs
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradLhs := reduceBroadcast(backend.Div(outputGrad, op.rhs), op.lhs.Shape(), backend)

	// grad_rhs = -outputGrad * output / rhs
	gradRhs := backend.Mul(outputGrad, op.output)
	gradRhs = backend.Div(gradRhs, op.rhs)
	gradRhs = reduceBroadcast(negateGradient(gradRhs, backend), op.rhs.Shape(), backend)

	return []*tensor.RawTensor{gradLhs, gradRhs}
}

// Inputs returns the input tensors.
func (op *DivOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.lhs, op.rhs}
}

// Output returns the output tensor.
func (op *DivOp) Output() *tensor.RawTensor {
	return op.output
}
