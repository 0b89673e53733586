package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrEmptyCompletion = errors.New("model returned empty completion")
)
