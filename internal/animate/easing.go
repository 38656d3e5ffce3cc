package animate

import (
	"github.com/charmbracelet/harmonica"
)

// Easing maps linear progress in [0, 1] to eased progress. Easings must
// return 0 at 0 and 1 at 1; values in between may overshoot.
type Easing func(progress float64) float64

// Linear moves at constant angular speed, like the stepped animation it replaces.
func Linear(p float64) float64 { return p }

// EaseInOut is a smoothstep curve: slow start, slow finish.
func EaseInOut(p float64) float64 { return p * p * (3 - 2*p) }

// springSamples is the resolution of the precomputed spring curve.
const springSamples = 120

// Spring returns an easing that follows a damped spring settling on the
// target. A damping ratio below 1 overshoots before settling.
func Spring(frequency, damping float64) Easing {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)

	curve := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		curve[i] = pos
	}
	curve[springSamples] = 1

	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}

		x := p * springSamples
		i := int(x)
		frac := x - float64(i)

		return curve[i] + (curve[i+1]-curve[i])*frac
	}
}

// EasingByName resolves a configured easing name. Unknown names report false.
func EasingByName(name string) (Easing, bool) {
	switch name {
	case "", "linear":
		return Linear, true
	case "ease", "ease-in-out":
		return EaseInOut, true
	case "spring":
		return Spring(6, 0.5), true
	default:
		return nil, false
	}
}
