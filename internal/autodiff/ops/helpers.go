package ops

import (
	"fmt"

	"github.com/snake-ml/snake/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: x[N,C] * alpha[C] -> y[N,C]  (alpha was broadcast along dim 0)
//	Backward: grad_y[N,C] -> grad_alpha[C] (sum along dim 0)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	// If shapes already match, clone to avoid aliasing issues
	// (prevents inplace operations from modifying shared gradients)
	if gradShape.Equal(targetShape) {
		return grad.Clone()
	}

	// Handle broadcasting reduction.
	// NumPy broadcasting aligns shapes from the right.
	gradDims := len(gradShape)
	targetDims := len(targetShape)

	// If target has fewer dimensions, sum leading dimensions
	if targetDims < gradDims {
		dimsToSum := gradDims - targetDims
		result := grad
		for i := 0; i < dimsToSum; i++ {
			result = sumAlongDimension(result, 0)
			result = dropLeadingDimension(result)
		}
		grad = result
		gradShape = grad.Shape()
	}

	// Now sum along dimensions where target is 1
	result := grad
	for i := 0; i < targetDims; i++ {
		if targetShape[i] == 1 && gradShape[i] > 1 {
			result = sumAlongDimension(result, i)
		}
	}

	// Reshape if necessary to match target shape exactly
	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}

	return result
}

// sumAlongDimension sums a tensor along the specified dimension, keeping it as size 1.
func sumAlongDimension(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sumAlongDimension: invalid dimension %d for shape %v", dim, shape))
	}

	// Output shape: dimension at 'dim' becomes 1
	outShape := shape.Clone()
	outShape[dim] = 1

	result, err := tensor.NewRaw(outShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("sumAlongDimension: failed to create result: %v", err))
	}

	strides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	n := shape.NumElements()

	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		out := result.AsFloat32()
		for i := 0; i < n; i++ {
			out[reducedIndex(i, dim, strides, outStrides)] += data[i]
		}
	case tensor.Float64:
		data := t.AsFloat64()
		out := result.AsFloat64()
		for i := 0; i < n; i++ {
			out[reducedIndex(i, dim, strides, outStrides)] += data[i]
		}
	default:
		panic(fmt.Sprintf("sumAlongDimension: unsupported dtype %s", t.DType()))
	}

	return result
}

// reducedIndex maps a flat index of the full tensor to the flat index of the
// tensor reduced to size 1 along dimension dim.
func reducedIndex(flatIdx, dim int, strides, outStrides []int) int {
	outIdx := 0
	for d := 0; d < len(strides); d++ {
		coord := flatIdx / strides[d]
		flatIdx %= strides[d]
		if d == dim {
			coord = 0
		}
		outIdx += coord * outStrides[d]
	}
	return outIdx
}

// dropLeadingDimension removes a leading dimension of size 1.
// Used after summing a leading broadcast dimension so that shapes
// right-align with the target.
func dropLeadingDimension(t *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	if len(shape) == 0 || shape[0] != 1 {
		panic(fmt.Sprintf("dropLeadingDimension: leading dimension is not 1 in shape %v", shape))
	}

	squeezed := shape[1:].Clone()
	result, err := tensor.NewRaw(squeezed, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("dropLeadingDimension: %v", err))
	}
	copy(result.Data(), t.Data())
	return result
}

// createScalar creates a tensor of the given shape filled with a constant.
func createScalar(shape tensor.Shape, dtype tensor.DataType, value float64, device tensor.Device) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("createScalar: %v", err))
	}

	switch dtype {
	case tensor.Float32:
		data := result.AsFloat32()
		for i := range data {
			data[i] = float32(value)
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] = value
		}
	default:
		panic(fmt.Sprintf("createScalar: unsupported dtype %s", dtype))
	}

	return result
}

// negateGradient returns -grad.
func negateGradient(grad *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	zeros := createScalar(grad.Shape(), grad.DType(), 0, backend.Device())
	// 0 - grad
	return backend.Sub(zeros, grad)
}
