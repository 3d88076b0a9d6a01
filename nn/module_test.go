// Copyright 2025 The Snake Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"testing"

	"github.com/snake-ml/snake/internal/backend/cpu"
	"github.com/snake-ml/snake/internal/tensor"
	"github.com/snake-ml/snake/nn"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	backend := cpu.New()

	snake, err := nn.NewSnake(10, nn.SnakeConfig{}, backend)
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}

	tests := []struct {
		name   string
		module nn.Module[*cpu.CPUBackend]
	}{
		{
			name:   "Linear",
			module: nn.NewLinear(10, 5, backend),
		},
		{
			name:   "Snake",
			module: snake,
		},
		{
			name: "Sequential",
			module: nn.NewSequential[*cpu.CPUBackend](
				nn.NewLinear(10, 10, backend),
				snake,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tensor.Randn[float32](tensor.Shape{2, 10}, backend)
			_ = tt.module.Forward(input)

			params := tt.module.Parameters()
			if params == nil {
				t.Error("Parameters() returned nil, expected non-nil slice")
			}
		})
	}
}

// TestSnakeFacade exercises the Snake activation end to end through the
// public API.
func TestSnakeFacade(t *testing.T) {
	backend := cpu.New()

	snake, err := nn.NewSnake(2, nn.SnakeConfig{Init: nn.FixedAlpha(1.0)}, backend)
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}

	x, err := tensor.FromSlice([]float32{0.5, -0.5}, tensor.Shape{1, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	output := snake.Forward(x)

	s := math.Sin(0.5)
	expected := []float64{0.5 + s*s, -0.5 + s*s}
	for i, v := range output.Data() {
		if math.Abs(float64(v)-expected[i]) > 1e-6 {
			t.Errorf("output[%d] = %f, want %f", i, v, expected[i])
		}
	}
}

// TestSnakeFacade_InvalidInFeatures verifies the constructor error surfaces
// through the facade.
func TestSnakeFacade_InvalidInFeatures(t *testing.T) {
	backend := cpu.New()

	if _, err := nn.NewSnake(0, nn.SnakeConfig{}, backend); err == nil {
		t.Error("expected error for inFeatures = 0")
	}
}
