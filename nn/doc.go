// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the Snake activation and the layers needed to host it.
//
// # Overview
//
// This package contains:
//   - Snake: periodic parametric activation f(x) = x + sin²(a·x)/a
//   - Layers: Linear
//   - Loss functions: MSELoss
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier, Zeros, Ones, Randn, Exponential
//
// # Basic Usage
//
//	import (
//	    "github.com/snake-ml/snake/nn"
//	    "github.com/snake-ml/snake/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    snake, err := nn.NewSnake(16, nn.SnakeConfig{}, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model := nn.NewSequential[*cpu.Backend](
//	        nn.NewLinear(1, 16, backend),
//	        snake,
//	        nn.NewLinear(16, 1, backend),
//	    )
//
//	    output := model.Forward(input)
//	}
//
// # Snake
//
// Snake keeps the identity component x and adds a periodic term whose
// frequency a is learned per channel. The parameter is initialized either
// with a constant or with exponential random samples:
//
//	// constant frequency 1 for every channel
//	s1, _ := nn.NewSnake(4, nn.SnakeConfig{Init: nn.FixedAlpha(1)}, backend)
//
//	// random frequencies, Exponential(0.1) — the default
//	s2, _ := nn.NewSnake(4, nn.SnakeConfig{}, backend)
//
//	// frozen: optimizers leave the frequency unchanged
//	s3, _ := nn.NewSnake(4, nn.SnakeConfig{Frozen: true}, backend)
//
// A zero frequency makes the term sin²(0·x)/0 = 0/0 and yields IEEE NaN on
// every element of that channel; nothing panics, the values propagate.
//
// # Loss Functions
//
// MSELoss returns the element-wise squared error as a graph-connected
// tensor; use Mean for a reporting scalar:
//
//	criterion := nn.NewMSELoss(backend)
//	loss := criterion.Forward(predictions, targets)
//	fmt.Println(nn.Mean(loss))
package nn
