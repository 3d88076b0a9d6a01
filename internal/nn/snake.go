package nn

import (
	"fmt"

	"github.com/snake-ml/snake/internal/tensor"
)

// AlphaInit selects how Snake's frequency parameter is initialized.
//
// The zero value samples i.i.d. Exponential(0.1) values, which concentrates
// frequencies around 10 — the regime where Snake extrapolates periodic
// signals well. Use FixedAlpha for a deterministic constant fill.
type AlphaInit struct {
	fixed bool
	value float32
	rate  float64
}

// FixedAlpha fills every channel's frequency with the constant v.
func FixedAlpha(v float32) AlphaInit {
	return AlphaInit{fixed: true, value: v}
}

// ExponentialAlpha samples each channel's frequency i.i.d. from
// Exponential(rate). A rate of 0 defaults to 0.1.
func ExponentialAlpha(rate float64) AlphaInit {
	return AlphaInit{rate: rate}
}

// SnakeConfig configures a Snake activation.
//
// The zero value gives the default behavior: random exponential
// initialization with rate 0.1 and a trainable frequency parameter.
type SnakeConfig struct {
	// Init selects the initialization policy for the frequency parameter.
	Init AlphaInit

	// Frozen constructs the frequency parameter as non-trainable.
	// Optimizers will leave it unchanged; gradients still flow through it.
	Frozen bool
}

// Snake implements the periodic activation
//
//	f(x) = x + (1/a) · sin²(a·x)
//
// with a learnable per-channel frequency parameter a of length inFeatures.
// Unlike ReLU-family activations, Snake is periodic away from zero while
// keeping the identity component x, which lets networks extrapolate
// periodic signals (see Ziyin, Hartwig, Ueda: "Neural Networks Fail to
// Learn Periodic Functions and How to Fix It", NeurIPS 2020).
//
// Forward accepts any input whose trailing dimension equals inFeatures and
// preserves the input shape; a broadcasts over all leading dimensions.
//
// Zero entries in a produce IEEE NaN in the output (sin²(0·x)/0 = 0/0; the
// division does not trap). The default initialization samples strictly
// positive values, so this only arises from an explicit FixedAlpha(0).
//
// Example:
//
//	snake, err := nn.NewSnake(16, nn.SnakeConfig{}, backend)
//	if err != nil { ... }
//	y := snake.Forward(x) // x: [batch, 16]
type Snake[B tensor.Backend] struct {
	inFeatures int
	alpha      *Parameter[B] // [in_features]
	backend    B
}

// NewSnake creates a Snake activation for inputs with inFeatures channels.
//
// Returns an error if inFeatures is not positive.
func NewSnake[B tensor.Backend](inFeatures int, config SnakeConfig, backend B) (*Snake[B], error) {
	if inFeatures <= 0 {
		return nil, fmt.Errorf("nn.NewSnake: inFeatures must be positive, got %d", inFeatures)
	}

	shape := tensor.Shape{inFeatures}
	var alphaTensor *tensor.Tensor[float32, B]
	if config.Init.fixed {
		alphaTensor = tensor.Full(shape, config.Init.value, backend)
	} else {
		rate := config.Init.rate
		if rate == 0 {
			rate = 0.1
		}
		alphaTensor = Exponential(shape, rate, backend)
	}

	var alpha *Parameter[B]
	if config.Frozen {
		alpha = NewFrozenParameter("alpha", alphaTensor)
	} else {
		alpha = NewParameter("alpha", alphaTensor)
	}

	return &Snake[B]{
		inFeatures: inFeatures,
		alpha:      alpha,
		backend:    backend,
	}, nil
}

// Forward computes f(x) = x + sin²(a·x)/a element-wise.
//
// The computation is composed from recorded tensor ops (Mul, Sin, Mul, Div,
// Add), so when the backend carries a gradient tape, gradients flow to both
// the input and the frequency parameter with no activation-specific
// backward rule. The batch dimensions of the input gradient are summed
// down to the parameter's length by the broadcast-reduction in the tape.
//
// Forward never mutates a or any instance state.
func (s *Snake[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) == 0 || inputShape[len(inputShape)-1] != s.inFeatures {
		panic(fmt.Sprintf("Snake.Forward: expected input with trailing dimension %d, got shape %v",
			s.inFeatures, inputShape))
	}

	a := s.alpha.Tensor()

	// Pin the input and the parameter so backends never take the inplace
	// fast path on them.
	defer input.Raw().ForceNonUnique()()
	defer a.Raw().ForceNonUnique()()

	ax := input.Mul(a)    // a·x, a broadcast over leading dims
	sin := ax.Sin()       // sin(a·x)
	sin2 := sin.Mul(sin)  // sin²(a·x)
	ratio := sin2.Div(a)  // sin²(a·x)/a
	return input.Add(ratio)
}

// Parameters returns [alpha].
func (s *Snake[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{s.alpha}
}

// Alpha returns the frequency parameter.
func (s *Snake[B]) Alpha() *Parameter[B] {
	return s.alpha
}

// InFeatures returns the number of channels this activation was built for.
func (s *Snake[B]) InFeatures() int {
	return s.inFeatures
}
