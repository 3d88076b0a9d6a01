package nn

import (
	"math"
	"testing"

	"github.com/snake-ml/snake/internal/autodiff"
	"github.com/snake-ml/snake/internal/backend/cpu"
	"github.com/snake-ml/snake/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParameter_Trainable tests the trainable flag.
func TestParameter_Trainable(t *testing.T) {
	backend := autodiff.New(cpu.New())

	w := Ones(tensor.Shape{2}, backend)
	p := NewParameter("w", w)
	assert.True(t, p.Trainable())
	assert.Equal(t, "w", p.Name())

	f := NewFrozenParameter("f", Ones(tensor.Shape{2}, backend))
	assert.False(t, f.Trainable())
}

// TestParameter_Grad tests gradient set/get/zero.
func TestParameter_Grad(t *testing.T) {
	backend := autodiff.New(cpu.New())

	p := NewParameter("w", Ones(tensor.Shape{2}, backend))
	assert.Nil(t, p.Grad())

	grad, err := tensor.FromSlice([]float32{0.1, 0.2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	p.SetGrad(grad)
	require.NotNil(t, p.Grad())
	assert.Equal(t, []float32{0.1, 0.2}, p.Grad().Data())

	p.ZeroGrad()
	assert.Nil(t, p.Grad())
}

// TestLinear_Forward tests y = x @ W.T + b with hand-set weights.
func TestLinear_Forward(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := NewLinear(2, 3, backend)
	assert.Equal(t, 2, layer.InFeatures())
	assert.Equal(t, 3, layer.OutFeatures())

	// W: [3, 2], b: [3]
	copy(layer.Weight().Tensor().Data(), []float32{
		1, 0,
		0, 1,
		1, 1,
	})
	copy(layer.Bias().Tensor().Data(), []float32{0.5, -0.5, 0})

	x, err := tensor.FromSlice([]float32{2, 3}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	output := layer.Forward(x)

	require.True(t, output.Shape().Equal(tensor.Shape{1, 3}))
	expected := []float32{2.5, 2.5, 5}
	for i, v := range expected {
		assert.InDelta(t, v, output.Data()[i], 1e-6)
	}
}

// TestLinear_InvalidInputPanics tests shape validation.
func TestLinear_InvalidInputPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := NewLinear(2, 3, backend)

	assert.Panics(t, func() {
		layer.Forward(tensor.Zeros[float32](tensor.Shape{4}, backend))
	}, "1D input should panic")

	assert.Panics(t, func() {
		layer.Forward(tensor.Zeros[float32](tensor.Shape{1, 5}, backend))
	}, "wrong feature count should panic")
}

// TestLinear_XavierInit verifies weights stay within the Xavier bound and
// biases start at zero.
func TestLinear_XavierInit(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := NewLinear(8, 4, backend)

	limit := float32(math.Sqrt(6.0 / float64(8+4)))
	for _, w := range layer.Weight().Tensor().Data() {
		assert.LessOrEqual(t, w, limit)
		assert.GreaterOrEqual(t, w, -limit)
	}
	for _, b := range layer.Bias().Tensor().Data() {
		assert.Equal(t, float32(0), b)
	}
}

// TestSequential_ForwardAndParameters tests chaining and parameter collection.
func TestSequential_ForwardAndParameters(t *testing.T) {
	backend := autodiff.New(cpu.New())

	snake, err := NewSnake(4, SnakeConfig{Init: FixedAlpha(1.0)}, backend)
	require.NoError(t, err)

	model := NewSequential[Backend](
		NewLinear(2, 4, backend),
		snake,
		NewLinear(4, 1, backend),
	)

	assert.Equal(t, 3, model.Len())

	x := tensor.Zeros[float32](tensor.Shape{5, 2}, backend)
	output := model.Forward(x)
	assert.True(t, output.Shape().Equal(tensor.Shape{5, 1}))

	// Linear(2,4): weight+bias, Snake: alpha, Linear(4,1): weight+bias
	params := model.Parameters()
	assert.Len(t, params, 5)
}

// TestSequential_Add tests appending modules after construction.
func TestSequential_Add(t *testing.T) {
	backend := autodiff.New(cpu.New())

	model := NewSequential[Backend]()
	assert.Equal(t, 0, model.Len())

	model.Add(NewLinear(2, 2, backend))
	assert.Equal(t, 1, model.Len())
	assert.NotNil(t, model.Module(0))
}

// TestMSELoss_Forward tests element-wise squared error.
func TestMSELoss_Forward(t *testing.T) {
	backend := autodiff.New(cpu.New())

	mse := NewMSELoss(backend)

	pred, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{1, 0, 6}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	loss := mse.Forward(pred, target)

	expected := []float32{0, 4, 9}
	for i, v := range expected {
		assert.InDelta(t, v, loss.Data()[i], 1e-6)
	}

	assert.InDelta(t, float32(13.0/3.0), Mean(loss), 1e-6)
	assert.Empty(t, mse.Parameters())
}

// TestMSELoss_ShapeMismatchPanics tests shape validation.
func TestMSELoss_ShapeMismatchPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	mse := NewMSELoss(backend)

	pred := tensor.Zeros[float32](tensor.Shape{3}, backend)
	target := tensor.Zeros[float32](tensor.Shape{4}, backend)

	assert.Panics(t, func() {
		mse.Forward(pred, target)
	})
}

// TestMSELoss_GradientFlow verifies the loss stays connected to the graph:
// d/dp sum (p - t)² = 2(p - t).
func TestMSELoss_GradientFlow(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	mse := NewMSELoss(backend)

	pred, err := tensor.FromSlice([]float32{1, 5}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{0, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	tape.Clear()
	tape.StartRecording()

	loss := mse.Forward(pred, target)
	gradients := autodiff.Backward(loss, backend)

	tape.StopRecording()
	tape.Clear()

	gradPred := gradients[pred.Raw()]
	require.NotNil(t, gradPred, "expected gradient for predictions")

	expected := []float32{2, 6}
	for i, v := range expected {
		assert.InDelta(t, v, gradPred.AsFloat32()[i], 1e-5)
	}
}

// TestExponentialInit tests the exponential initializer wrapper.
func TestExponentialInit(t *testing.T) {
	backend := autodiff.New(cpu.New())

	a := Exponential(tensor.Shape{100}, 0.1, backend)
	require.True(t, a.Shape().Equal(tensor.Shape{100}))
	for _, v := range a.Data() {
		assert.Greater(t, v, float32(0))
	}
}
