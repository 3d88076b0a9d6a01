package autodiff_test

import (
	"math"
	"testing"

	"github.com/snake-ml/snake/internal/autodiff"
	"github.com/snake-ml/snake/internal/backend/cpu"
	"github.com/snake-ml/snake/internal/tensor"
)

// numericalGradient computes the gradient using central finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// TestNumericalGradient_Sin tests f(x) = sin(x), df/dx = cos(x).
func TestNumericalGradient_Sin(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	testPoint := 0.7

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice([]float64{testPoint}, tensor.Shape{1}, backend)
	y := backend.Sin(x.Raw())

	result := tensor.New[float64](y, backend)
	gradients := autodiff.Backward(result, backend)

	autodiffGrad := gradients[x.Raw()].AsFloat64()[0]

	numericalGrad := numericalGradient(math.Sin, testPoint, 1e-7)
	expected := math.Cos(testPoint)

	if math.Abs(autodiffGrad-expected) > 1e-9 {
		t.Errorf("Autodiff gradient = %f, want %f", autodiffGrad, expected)
	}
	if math.Abs(autodiffGrad-numericalGrad) > 1e-6 {
		t.Errorf("Autodiff grad (%f) differs from numerical grad (%f)",
			autodiffGrad, numericalGrad)
	}
}

// TestNumericalGradient_Cos tests f(x) = cos(x), df/dx = -sin(x).
func TestNumericalGradient_Cos(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	testPoint := 1.2

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice([]float64{testPoint}, tensor.Shape{1}, backend)
	y := backend.Cos(x.Raw())

	result := tensor.New[float64](y, backend)
	gradients := autodiff.Backward(result, backend)

	autodiffGrad := gradients[x.Raw()].AsFloat64()[0]
	expected := -math.Sin(testPoint)

	if math.Abs(autodiffGrad-expected) > 1e-9 {
		t.Errorf("Autodiff gradient = %f, want %f", autodiffGrad, expected)
	}
}

// TestNumericalGradient_Division tests f(x) = 1/x, df/dx = -1/x².
func TestNumericalGradient_Division(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	testPoint := 2.0

	tape.Clear()
	tape.StartRecording()

	one, _ := tensor.FromSlice([]float64{1}, tensor.Shape{1}, backend)
	x, _ := tensor.FromSlice([]float64{testPoint}, tensor.Shape{1}, backend)

	y := backend.Div(one.Raw(), x.Raw())

	result := tensor.New[float64](y, backend)
	gradients := autodiff.Backward(result, backend)

	gradX := gradients[x.Raw()]
	if gradX == nil {
		t.Fatal("Expected gradient for x")
	}

	autodiffGrad := gradX.AsFloat64()[0]
	expected := -0.25

	f := func(val float64) float64 { return 1 / val }
	numericalGrad := numericalGradient(f, testPoint, 1e-7)

	if math.Abs(autodiffGrad-expected) > 1e-9 {
		t.Errorf("Autodiff gradient = %f, want %f", autodiffGrad, expected)
	}
	if math.Abs(autodiffGrad-numericalGrad) > 1e-6 {
		t.Errorf("Autodiff grad (%f) differs from numerical grad (%f)",
			autodiffGrad, numericalGrad)
	}
}

// TestNumericalGradient_PeriodicComposite tests the full periodic activation
// f(x) = x + sin²(a·x)/a against finite differences, for both x and a.
func TestNumericalGradient_PeriodicComposite(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	xVal := 0.9
	aVal := 1.5

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice([]float64{xVal}, tensor.Shape{1}, backend)
	a, _ := tensor.FromSlice([]float64{aVal}, tensor.Shape{1}, backend)

	ax := backend.Mul(x.Raw(), a.Raw())
	sin := backend.Sin(ax)
	sin2 := backend.Mul(sin, sin)
	ratio := backend.Div(sin2, a.Raw())
	y := backend.Add(x.Raw(), ratio)

	result := tensor.New[float64](y, backend)
	gradients := autodiff.Backward(result, backend)

	gradX := gradients[x.Raw()]
	gradA := gradients[a.Raw()]
	if gradX == nil || gradA == nil {
		t.Fatal("Expected gradients for both x and a")
	}

	fOfX := func(xv float64) float64 {
		s := math.Sin(aVal * xv)
		return xv + s*s/aVal
	}
	fOfA := func(av float64) float64 {
		s := math.Sin(av * xVal)
		return xVal + s*s/av
	}

	numGradX := numericalGradient(fOfX, xVal, 1e-7)
	numGradA := numericalGradient(fOfA, aVal, 1e-7)

	// Analytic: df/dx = 1 + sin(2ax), df/da = x·sin(2ax)/a - sin²(ax)/a²
	expectedGradX := 1 + math.Sin(2*aVal*xVal)
	s := math.Sin(aVal * xVal)
	expectedGradA := xVal*math.Sin(2*aVal*xVal)/aVal - s*s/(aVal*aVal)

	autodiffGradX := gradX.AsFloat64()[0]
	autodiffGradA := gradA.AsFloat64()[0]

	if math.Abs(autodiffGradX-expectedGradX) > 1e-9 {
		t.Errorf("grad_x = %f, want %f", autodiffGradX, expectedGradX)
	}
	if math.Abs(autodiffGradA-expectedGradA) > 1e-9 {
		t.Errorf("grad_a = %f, want %f", autodiffGradA, expectedGradA)
	}
	if math.Abs(autodiffGradX-numGradX) > 1e-6 {
		t.Errorf("grad_x (%f) differs from numerical (%f)", autodiffGradX, numGradX)
	}
	if math.Abs(autodiffGradA-numGradA) > 1e-6 {
		t.Errorf("grad_a (%f) differs from numerical (%f)", autodiffGradA, numGradA)
	}
}

// TestNumericalGradient_PeriodicBatched tests the same composite over a
// (2, 3) batch with a length-3 channel parameter: the parameter gradient
// must come back with shape (3), summed over the batch.
func TestNumericalGradient_PeriodicBatched(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	xVals := []float64{0.3, -0.8, 1.1, 0.5, 2.0, -1.4}
	aVals := []float64{0.5, 1.0, 2.5}

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice(xVals, tensor.Shape{2, 3}, backend)
	a, _ := tensor.FromSlice(aVals, tensor.Shape{3}, backend)

	ax := backend.Mul(x.Raw(), a.Raw())
	sin := backend.Sin(ax)
	sin2 := backend.Mul(sin, sin)
	ratio := backend.Div(sin2, a.Raw())
	y := backend.Add(x.Raw(), ratio)

	result := tensor.New[float64](y, backend)
	gradients := autodiff.Backward(result, backend)

	gradA := gradients[a.Raw()]
	if gradA == nil {
		t.Fatal("Expected gradient for channel parameter")
	}
	if !gradA.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("grad shape = %v, want [3]", gradA.Shape())
	}

	// Per-channel analytic gradient summed over the batch rows.
	dfda := func(xv, av float64) float64 {
		s := math.Sin(av * xv)
		return xv*math.Sin(2*av*xv)/av - s*s/(av*av)
	}

	actual := gradA.AsFloat64()
	for j := 0; j < 3; j++ {
		expected := dfda(xVals[j], aVals[j]) + dfda(xVals[3+j], aVals[j])
		if math.Abs(actual[j]-expected) > 1e-9 {
			t.Errorf("grad_a[%d] = %f, want %f", j, actual[j], expected)
		}
	}
}

// TestNumericalGradient_Float32Tolerance runs the square function in float32
// to confirm the tape works for both supported dtypes.
func TestNumericalGradient_Float32Tolerance(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	testPoint := float32(3.0)

	tape.Clear()
	tape.StartRecording()

	x, _ := tensor.FromSlice([]float32{testPoint}, tensor.Shape{1}, backend)
	y := backend.Mul(x.Raw(), x.Raw())

	result := tensor.New[float32](y, backend)
	gradients := autodiff.Backward(result, backend)

	autodiffGrad := gradients[x.Raw()].AsFloat32()[0]

	if math.Abs(float64(autodiffGrad-6.0)) > 1e-5 {
		t.Errorf("Autodiff gradient = %f, want 6.0", autodiffGrad)
	}
}
