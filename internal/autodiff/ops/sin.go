package ops

import "github.com/snake-ml/snake/internal/tensor"

// SinOp represents element-wise sine: output = sin(input).
type SinOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSinOp creates a new sine operation.
func NewSinOp(input, output *tensor.RawTensor) *SinOp {
	return &SinOp{input: input, output: output}
}

// Backward computes the gradient for sine.
// d(sin(x))/dx = cos(x)
func (op *SinOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	cosInput := backend.Cos(op.input)
	grad := backend.Mul(outputGrad, cosInput)
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors.
func (op *SinOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SinOp) Output() *tensor.RawTensor {
	return op.output
}
