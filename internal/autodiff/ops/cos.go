package ops

import "github.com/snake-ml/snake/internal/tensor"

// CosOp represents element-wise cosine: output = cos(input).
type CosOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewCosOp creates a new cosine operation.
func NewCosOp(input, output *tensor.RawTensor) *CosOp {
	return &CosOp{input: input, output: output}
}

// Backward computes the gradient for cosine.
// d(cos(x))/dx = -sin(x)
func (op *CosOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	sinInput := backend.Sin(op.input)
	grad := backend.Mul(outputGrad, sinInput)
	grad = negateGradient(grad, backend)
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors.
func (op *CosOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *CosOp) Output() *tensor.RawTensor {
	return op.output
}
