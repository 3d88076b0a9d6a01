// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - In-place reuse of uniquely-owned buffers for element-wise ops
//
// # Basic Usage
//
//	import (
//	    "github.com/snake-ml/snake/backend/cpu"
//	    "github.com/snake-ml/snake/tensor"
//	    "github.com/snake-ml/snake/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//
//	    snake, _ := nn.NewSnake(3, nn.SnakeConfig{}, backend)
//	    _ = snake.Forward(z)
//	}
//
// # Error Handling
//
// Shape-incompatible operands panic with an op-prefixed message. Division
// follows IEEE semantics: dividing by zero produces Inf or NaN rather than
// panicking.
//
// # Thread Safety
//
// The CPU backend holds no mutable state; operations on distinct tensors
// are safe to run concurrently.
package cpu
