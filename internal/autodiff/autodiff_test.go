package autodiff_test

import (
	"math"
	"testing"

	"github.com/snake-ml/snake/internal/autodiff"
	"github.com/snake-ml/snake/internal/backend/cpu"
	"github.com/snake-ml/snake/internal/tensor"
)

// TestAutodiffBackend_Name tests the Name method.
func TestAutodiffBackend_Name(t *testing.T) {
	backend := autodiff.New(cpu.New())
	expected := "Autodiff(CPU)"
	if backend.Name() != expected {
		t.Errorf("Name() = %s, want %s", backend.Name(), expected)
	}
}

// TestAutodiffBackend_Device tests the Device method.
func TestAutodiffBackend_Device(t *testing.T) {
	backend := autodiff.New(cpu.New())
	if backend.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want %v", backend.Device(), tensor.CPU)
	}
}

// TestTape_Recording tests tape recording on/off.
func TestTape_Recording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	if tape.IsRecording() {
		t.Error("Tape should not be recording initially")
	}

	tape.StartRecording()
	if !tape.IsRecording() {
		t.Error("Tape should be recording after StartRecording()")
	}

	tape.StopRecording()
	if tape.IsRecording() {
		t.Error("Tape should not be recording after StopRecording()")
	}
}

// TestTape_Clear tests tape clearing.
func TestTape_Clear(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.StartRecording()

	a, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)
	backend.Add(a.Raw(), b.Raw())

	if tape.NumOps() == 0 {
		t.Error("Tape should have recorded operations")
	}

	tape.Clear()

	if tape.NumOps() != 0 {
		t.Errorf("Tape should be empty after Clear(), got %d ops", tape.NumOps())
	}

	// Clear() preserves recording state, so tapes can be cleared between
	// epochs without stopping recording.
	if !tape.IsRecording() {
		t.Error("Tape should still be recording after Clear()")
	}
}

// TestTape_NoRecordingNoOps verifies ops are not recorded while the tape is off.
func TestTape_NoRecordingNoOps(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	a, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)
	backend.Mul(a.Raw(), b.Raw())

	if tape.NumOps() != 0 {
		t.Errorf("Expected 0 operations without recording, got %d", tape.NumOps())
	}
}

// TestAutodiffBackend_RecordsOperations tests that forward ops are recorded.
func TestAutodiffBackend_RecordsOperations(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.StartRecording()

	a, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)

	result := backend.Add(a.Raw(), b.Raw())

	expected := []float32{4, 6}
	actual := result.AsFloat32()
	for i, v := range expected {
		if actual[i] != v {
			t.Errorf("Add result[%d] = %f, want %f", i, actual[i], v)
		}
	}

	if tape.NumOps() != 1 {
		t.Errorf("Expected 1 operation recorded, got %d", tape.NumOps())
	}

	backend.Sin(result)
	backend.Div(a.Raw(), b.Raw())

	if tape.NumOps() != 3 {
		t.Errorf("Expected 3 operations recorded, got %d", tape.NumOps())
	}
}

// TestBackward_GradientAccumulation tests that a tensor used twice gets
// the sum of both branch gradients: y = x*x, dy/dx = 2x.
func TestBackward_GradientAccumulation(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice([]float32{3, -1}, tensor.Shape{2}, backend)
	y := backend.Mul(x.Raw(), x.Raw())

	result := tensor.New[float32](y, backend)
	gradients := autodiff.Backward(result, backend)

	grad := gradients[x.Raw()]
	if grad == nil {
		t.Fatal("Expected gradient for x")
	}

	expected := []float32{6, -2}
	actual := grad.AsFloat32()
	for i, v := range expected {
		if math.Abs(float64(actual[i]-v)) > 1e-6 {
			t.Errorf("grad[%d] = %f, want %f", i, actual[i], v)
		}
	}
}

// TestBackward_BroadcastReduction tests that the gradient of a broadcast
// operand is summed over the broadcast batch dimension.
func TestBackward_BroadcastReduction(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Clear()
	tape.StartRecording()

	// x: (2, 3) batch, a: (3) per-channel vector broadcast across the batch
	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	a, _ := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3}, backend)

	y := backend.Mul(x.Raw(), a.Raw())

	result := tensor.New[float32](y, backend)
	gradients := autodiff.Backward(result, backend)

	gradA := gradients[a.Raw()]
	if gradA == nil {
		t.Fatal("Expected gradient for broadcast operand")
	}

	if !gradA.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("grad shape = %v, want [3]", gradA.Shape())
	}

	// d(sum y)/da_j = sum over batch of x[:, j]
	expected := []float32{5, 7, 9}
	actual := gradA.AsFloat32()
	for i, v := range expected {
		if math.Abs(float64(actual[i]-v)) > 1e-6 {
			t.Errorf("grad[%d] = %f, want %f", i, actual[i], v)
		}
	}
}

// TestBackward_NoOpsPanics tests the guard against an empty tape.
func TestBackward_NoOpsPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())

	x, _ := tensor.FromSlice([]float32{1}, tensor.Shape{1}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Backward on an empty tape should panic")
		}
	}()
	autodiff.Backward(x, backend)
}

// TestBackward_DisablesRecording tests that gradient ops are not themselves
// recorded onto the tape.
func TestBackward_DisablesRecording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, backend)
	y := backend.Mul(x.Raw(), x.Raw())

	before := tape.NumOps()
	result := tensor.New[float32](y, backend)
	autodiff.Backward(result, backend)

	if tape.NumOps() != before {
		t.Errorf("Backward recorded %d extra ops", tape.NumOps()-before)
	}
	if !tape.IsRecording() {
		t.Error("Recording state should be restored after Backward")
	}
}
