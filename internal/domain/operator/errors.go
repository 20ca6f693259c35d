package operator

import "errors"

var (
	ErrOperatorNotFound = errors.New("operator not found")
	ErrOperatorInactive = errors.New("operator is inactive")
)
