package shades

import "fmt"

// Params are the user-facing knobs. They are passed into every
// invocation; nothing in this package remembers them between calls.
type Params struct {
	// Threshold is a percentage in [0,100]. Pixels with any color channel
	// brighter than (1 - Threshold/100), in linear light, are considered
	// near-saturated and don't contribute to the estimate.
	Threshold int

	// Norm is the order p of the Minkowski norm used by the estimator.
	// 0 is Max-RGB, 1 is Grey-World, 2 and up are the Shades of Grey.
	Norm int
}

const(
	DefaultThreshold = 5
	DefaultNorm      = 5
)

func NewParams() Params {
	return Params{Threshold: DefaultThreshold, Norm: DefaultNorm}
}

func (p Params)String() string {
	return fmt.Sprintf("threshold=%d%%, norm=%d (%s)", p.Threshold, p.Norm, p.EstimatorName())
}

func (p Params)Validate() error {
	if p.Threshold < 0 || p.Threshold > 100 {
		return fmt.Errorf("%w: threshold %d not in [0,100]", ErrInvalidParameters, p.Threshold)
	}
	if p.Norm < 0 {
		return fmt.Errorf("%w: norm %d is negative", ErrInvalidParameters, p.Norm)
	}
	return nil
}

// NearWhite is the inclusion cutoff, in linear units.
func (p Params)NearWhite() float32 {
	return 1.0 - float32(p.Threshold)/100.0
}

func (p Params)EstimatorName() string {
	switch p.Norm {
	case 0:  return "max-rgb"
	case 1:  return "grey-world"
	default: return fmt.Sprintf("shades-of-grey p=%d", p.Norm)
	}
}
