package ecdsa

import "errors"

// Common errors returned by the signing engine.
var (
	// ErrSigningExhausted is returned when every ephemeral-scalar draw
	// produced a degenerate signature (r or s zero). With sane curve
	// parameters the retry cap is effectively unreachable.
	ErrSigningExhausted = errors.New("signing retries exhausted")

	// ErrBadScalarRange is returned by scalar sources asked to draw
	// from an empty range, i.e. an order below 2.
	ErrBadScalarRange = errors.New("scalar range is empty")

	// ErrSourceExhausted is returned by a SequenceSource that has
	// replayed all of its scalars.
	ErrSourceExhausted = errors.New("scalar source exhausted")
)
