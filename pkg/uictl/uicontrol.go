package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// CappedDial is a Dial with a maximum cap value.
type CappedDial[N Number] interface {
	Dial[N]
	Cap() (num, max N)
}

// Selector is a control with a fixed number of discrete positions.
// Read returns the selected position; Cap returns it with the position count.
type Selector interface {
	CappedDial[int]
	Select(position int)
	Next()
	Previous()
	Reset()
}

// Wrap returns position folded into [0, count).
// Negative positions wrap from the top, so Wrap(-1, 3) == 2.
func Wrap[N constraints.Integer](position, count N) N {
	if count <= 0 {
		return 0
	}

	position %= count
	if position < 0 {
		position += count
	}

	return position
}

// Clamp saturates value to [lo, hi].
func Clamp[N Number](value, lo, hi N) N {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}
