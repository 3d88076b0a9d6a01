// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/snake-ml/snake/internal/backend/cpu"
	"github.com/snake-ml/snake/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 6*4 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}

	clone := raw.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	if raw.IsUnique() {
		t.Error("buffer should be shared after Clone()")
	}
	clone.Release()
	if !raw.IsUnique() {
		t.Error("buffer should be unique again after Release()")
	}
}

// TestTensorCreation verifies the public creation functions.
func TestTensorCreation(t *testing.T) {
	backend := cpu.New()

	zeros := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	for _, v := range zeros.Data() {
		if v != 0 {
			t.Errorf("Zeros contains %f", v)
		}
	}

	full := tensor.Full[float32](tensor.Shape{3}, 1.5, backend)
	for _, v := range full.Data() {
		if v != 1.5 {
			t.Errorf("Full contains %f, want 1.5", v)
		}
	}

	exp := tensor.Exponential[float32](tensor.Shape{10}, 0.1, backend)
	for _, v := range exp.Data() {
		if v <= 0 {
			t.Errorf("Exponential sample %f is not positive", v)
		}
	}

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if x.At(1, 0) != 3 {
		t.Errorf("At(1,0) = %f, want 3", x.At(1, 0))
	}
}

// TestBroadcastShapes verifies the public broadcast rule.
func TestBroadcastShapes(t *testing.T) {
	shape, needs, err := tensor.BroadcastShapes(tensor.Shape{2, 3}, tensor.Shape{3})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("broadcast shape = %v, want [2 3]", shape)
	}
	if !needs {
		t.Error("expected needsBroadcast = true")
	}

	_, _, err = tensor.BroadcastShapes(tensor.Shape{2, 3}, tensor.Shape{4})
	if err == nil {
		t.Error("expected error for incompatible shapes")
	}
}

// TestTensorArithmetic exercises the method API through the facade.
func TestTensorArithmetic(t *testing.T) {
	backend := cpu.New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	b, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2}, backend)

	c := a.Add(b)

	expected := []float32{11, 22, 13, 24}
	for i, v := range expected {
		if c.Data()[i] != v {
			t.Errorf("Add result[%d] = %f, want %f", i, c.Data()[i], v)
		}
	}
}
