package nn

import (
	"github.com/snake-ml/snake/internal/tensor"
)

// MSELoss computes squared error loss for regression.
//
// Forward returns the element-wise squared error (predictions - targets)²
// as a graph-connected tensor, so seeding its backward pass with ones
// differentiates the sum of squared errors. Use Mean for a scalar value
// to report.
//
// Example:
//
//	mse := nn.NewMSELoss(backend)
//	loss := mse.Forward(predictions, targets)
//	fmt.Println(nn.Mean(loss))
type MSELoss[B tensor.Backend] struct {
	backend B
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return &MSELoss[B]{
		backend: backend,
	}
}

// Forward computes the element-wise squared error.
//
// Both inputs must have the same shape; the output has that shape too.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic("MSELoss: predictions and targets must have the same shape")
	}

	// Pin the operands so backends never reuse their buffers inplace.
	defer predictions.Raw().ForceNonUnique()()
	defer targets.Raw().ForceNonUnique()()

	diff := predictions.Sub(targets)
	return diff.Mul(diff)
}

// Parameters returns an empty slice (loss functions have no trainable parameters).
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}

// Mean returns the arithmetic mean of all elements as a float32.
//
// Intended for loss reporting; this does not participate in the
// computation graph.
func Mean[B tensor.Backend](t *tensor.Tensor[float32, B]) float32 {
	data := t.Raw().AsFloat32()
	if len(data) == 0 {
		return 0
	}
	var sum float32
	for _, v := range data {
		sum += v
	}
	return sum / float32(len(data))
}
