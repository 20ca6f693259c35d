package operator

import (
	"context"
)

type OperatorRepository interface {
	// GetByCode retrieves an operator by their short login code.
	GetByCode(ctx context.Context, code string) (Operator, error)

	// GetByID retrieves an operator by id.
	GetByID(ctx context.Context, id string) (Operator, error)
}
