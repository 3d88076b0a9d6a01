// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/snake-ml/snake/internal/nn"
	"github.com/snake-ml/snake/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new trainable parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// NewFrozenParameter creates a parameter that optimizers skip.
func NewFrozenParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewFrozenParameter(name, t)
}

// Activations

// Snake is the periodic parametric activation f(x) = x + sin²(a·x)/a with a
// learnable per-channel frequency a.
type Snake[B tensor.Backend] = nn.Snake[B]

// SnakeConfig configures a Snake activation. The zero value means random
// exponential initialization (rate 0.1) and a trainable frequency parameter.
type SnakeConfig = nn.SnakeConfig

// AlphaInit selects how Snake's frequency parameter is initialized.
type AlphaInit = nn.AlphaInit

// FixedAlpha fills every channel's frequency with the constant v.
func FixedAlpha(v float32) AlphaInit {
	return nn.FixedAlpha(v)
}

// ExponentialAlpha samples each channel's frequency i.i.d. from
// Exponential(rate). A rate of 0 defaults to 0.1.
func ExponentialAlpha(rate float64) AlphaInit {
	return nn.ExponentialAlpha(rate)
}

// NewSnake creates a Snake activation for inputs with inFeatures channels.
//
// Example:
//
//	backend := cpu.New()
//	snake, err := nn.NewSnake(16, nn.SnakeConfig{}, backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := snake.Forward(x) // x: [batch, 16]
func NewSnake[B tensor.Backend](inFeatures int, config SnakeConfig, backend B) (*Snake[B], error) {
	return nn.NewSnake(inFeatures, config, backend)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(1, 16, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// Loss Functions

// MSELoss represents the squared error loss for regression.
type MSELoss[B tensor.Backend] = nn.MSELoss[B]

// NewMSELoss creates a new MSE loss function.
//
// Example:
//
//	backend := cpu.New()
//	criterion := nn.NewMSELoss(backend)
//	loss := criterion.Forward(predictions, targets)
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return nn.NewMSELoss(backend)
}

// Mean returns the arithmetic mean of all elements. Intended for loss
// reporting; it does not participate in the computation graph.
func Mean[B tensor.Backend](t *tensor.Tensor[float32, B]) float32 {
	return nn.Mean(t)
}

// Sequential

// Sequential represents a sequential container of modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new sequential model.
//
// Example:
//
//	backend := cpu.New()
//	snake, _ := nn.NewSnake(16, nn.SnakeConfig{}, backend)
//	model := nn.NewSequential[*cpu.Backend](
//	    nn.NewLinear(1, 16, backend),
//	    snake,
//	    nn.NewLinear(16, 1, backend),
//	)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization functions

// Xavier initializes a tensor using Xavier/Glorot uniform initialization.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}

// Zeros creates a zero-filled float32 tensor.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Zeros(shape, backend)
}

// Ones creates a one-filled float32 tensor.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Ones(shape, backend)
}

// Randn creates a float32 tensor with standard normal samples.
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Randn(shape, backend)
}

// Exponential creates a float32 tensor with i.i.d. Exponential(rate) samples.
func Exponential[B tensor.Backend](shape tensor.Shape, rate float64, backend B) *tensor.Tensor[float32, B] {
	return nn.Exponential(shape, rate, backend)
}
