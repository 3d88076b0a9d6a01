// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Snake library.
//
// # Overview
//
// Tensors are the fundamental data structure behind the Snake activation.
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy operations where possible
//
// # Basic Usage
//
//	import (
//	    "github.com/snake-ml/snake/tensor"
//	    "github.com/snake-ml/snake/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    z := x.Add(y)
//	    result := x.MatMul(y.Transpose())
//	}
//
// # Supported Data Types
//
// The tensor package supports float32 and float64 via the DType constraint.
//
// # Broadcasting
//
// Tensor operations follow NumPy broadcasting rules: shapes are aligned
// from the right, and dimensions of size 1 stretch to match.
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 4}, backend) // (3, 4)
//	b := tensor.Ones[float32](tensor.Shape{4}, backend)     // (4,)
//	c := a.Add(b)                                           // (3, 4)
//
// This is the rule that lets a per-channel parameter of shape (features,)
// apply to a batched input of shape (batch, features).
//
// # Memory Management
//
// The underlying data is reference-counted with copy-on-write semantics.
// Backends may reuse a uniquely-referenced buffer for the result of an
// element-wise operation.
package tensor
