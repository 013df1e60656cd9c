package engine

import "errors"

// Configuration errors are returned by NewGame; contract-violation
// errors are returned by geometry and legality probes. Normal illegal
// moves are reported as a plain false, never as an error.
var (
	ErrInvalidConfig = errors.New("invalid game configuration")
	ErrNoAnchor      = errors.New("piece has no anchor")
	ErrAlreadyPlayed = errors.New("shape already played")
)
