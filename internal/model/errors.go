package model

import "errors"

// Sentinel errors for contract violations. Both are raised synchronously
// at construction time and are never retried: they indicate that the
// caller broke the data contract (ErrInvalidArgument) or that a variant
// outside the closed vocabulary was encountered (ErrUnsupported).
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("unsupported operation")
)
