package core

import "errors"

var (
	// ErrInvalidFile reports an initial-state file that is missing,
	// unreadable or malformed.
	ErrInvalidFile = errors.New("invalid grid file")
	// ErrMalformedGrid reports grid text whose rows have unequal widths.
	ErrMalformedGrid = malformedGridError{}
	// ErrInvalidDimension reports a non-positive width or height.
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	// ErrDisplaySizeTooSmall reports a drawing surface that cannot hold the
	// grid plus its margin.
	ErrDisplaySizeTooSmall = errors.New("display too small for grid")
	// ErrUnknownSim reports a simulation name missing from the registry.
	ErrUnknownSim = errors.New("unknown sim")
)

type malformedGridError struct{}

func (malformedGridError) Error() string { return "malformed grid" }

// Unwrap makes errors.Is(ErrMalformedGrid, ErrInvalidFile) hold.
func (malformedGridError) Unwrap() error { return ErrInvalidFile }
