// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Both optimizers honor parameter trainability: a frozen parameter is left
// bitwise unchanged by Step, even when a gradient was computed for it.
//
// # Basic Usage
//
//	import (
//	    "github.com/snake-ml/snake/optim"
//	    "github.com/snake-ml/snake/nn"
//	    "github.com/snake-ml/snake/autodiff"
//	    "github.com/snake-ml/snake/backend/cpu"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    model := nn.NewLinear(1, 16, backend)
//
//	    optimizer := optim.NewAdam(
//	        model.Parameters(),
//	        optim.AdamConfig{
//	            LR: 0.001,
//	        },
//	        backend,
//	    )
//
//	    for epoch := 0; epoch < 10; epoch++ {
//	        optimizer.ZeroGrad()
//	        backend.Tape().StartRecording()
//
//	        output := model.Forward(x)
//	        loss := criterion.Forward(output, y)
//
//	        grads := autodiff.Backward(loss, backend)
//	        optimizer.Step(grads)
//	        backend.Tape().Clear()
//	    }
//	}
package optim
