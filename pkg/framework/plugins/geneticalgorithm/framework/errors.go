package framework

import "errors"

var (
	// ErrConfiguration reports a bad strategy name or a domain that cannot
	// satisfy the encoding. Not retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrShapeMismatch reports arrays whose dimensions disagree with the
	// declared variables or population size. A caller contract violation.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDegenerateFront reports an empty or undersized Pareto front during
	// survivor selection. It indicates a ranking bug, not bad input.
	ErrDegenerateFront = errors.New("degenerate front")
)
