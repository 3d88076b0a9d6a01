package nn

import (
	"github.com/snake-ml/snake/internal/tensor"
)

// Parameter represents a parameter in a neural network.
//
// Parameters are tensors that may require gradient computation during
// training. They typically represent weights, biases, and the per-channel
// frequencies of parametric activations.
//
// Trainability is fixed at construction: NewParameter creates a trainable
// parameter, NewFrozenParameter one that optimizers must leave untouched.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad() // after backward pass
type Parameter[B tensor.Backend] struct {
	name      string                     // Parameter name (e.g., "weight", "alpha")
	tensor    *tensor.Tensor[float32, B] // The parameter tensor
	grad      *tensor.Tensor[float32, B] // Gradient tensor (computed during backward pass)
	trainable bool                       // Whether optimizers may update this parameter
}

// NewParameter creates a new trainable parameter.
//
// The parameter tensor should be initialized before creating the Parameter.
// Gradient will be allocated during the first backward pass.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:      name,
		tensor:    t,
		grad:      nil,
		trainable: true,
	}
}

// NewFrozenParameter creates a parameter that optimizers skip.
//
// Gradients still flow through a frozen parameter during backward (it remains
// part of the computation graph), but Step leaves its values unchanged.
func NewFrozenParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:      name,
		tensor:    t,
		grad:      nil,
		trainable: false,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Trainable reports whether optimizers may update this parameter.
func (p *Parameter[B]) Trainable() bool {
	return p.trainable
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
//
// This is typically called by the optimizer or during backward pass.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
