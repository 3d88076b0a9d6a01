package ops

import "github.com/snake-ml/snake/internal/tensor"

// MatMulOp represents matrix multiplication: output = lhs @ rhs.
type MatMulOp struct {
	lhs    *tensor.RawTensor
	rhs    *tensor.RawTensor
	output *tensor.RawTensor
}

// NewMatMulOp creates a new matrix multiplication operation.
func NewMatMulOp(lhs, rhs, output *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{lhs: lhs, rhs: rhs, output: output}
}

// Backward computes gradients for matrix multiplication.
// For C = A @ B:
//
//	dL/dA = dL/dC @ B^T
//	dL/dB = A^T @ dL/dC
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	rhsT := backend.Transpose(op.rhs, 1, 0)
	gradLhs := backend.MatMul(outputGrad, rhsT)

	lhsT := backend.Transpose(op.lhs, 1, 0)
	gradRhs := backend.MatMul(lhsT, outputGrad)

	return []*tensor.RawTensor{gradLhs, gradRhs}
}

// Inputs returns the input tensors.
func (op *MatMulOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.lhs, op.rhs}
}

// Output returns the output tensor.
func (op *MatMulOp) Output() *tensor.RawTensor {
	return op.output
}
