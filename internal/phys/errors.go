package phys

import "errors"

// Domain errors for the integration core.
var (
	// ErrNoWorld indicates a Simulator was constructed without a World.
	ErrNoWorld = errors.New("phys: a world must be defined")

	// ErrDiverged indicates a particle state stopped being finite.
	// The core never checks for this itself; it is returned by callers
	// (such as the run package) that opt into state validation.
	ErrDiverged = errors.New("phys: particle state diverged (NaN or Inf)")
)
