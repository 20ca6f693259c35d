package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/operator"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type operatorRepository struct {
	db *database.DB
}

func NewOperatorRepository(db *database.DB) operator.OperatorRepository {
	return &operatorRepository{db: db}
}

const operatorColumns = `id, code, name, pin_hash, active, created_at, updated_at`

// GetByCode implements operator.OperatorRepository.
func (r *operatorRepository) GetByCode(ctx context.Context, code string) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operatorColumns + ` FROM operators WHERE code = $1`

	var op operator.Operator
	err := q.QueryRow(ctx, query, code).Scan(
		&op.ID, &op.Code, &op.Name, &op.PINHash, &op.Active, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return operator.Operator{}, operator.ErrOperatorNotFound
		}
		return operator.Operator{}, fmt.Errorf("failed to get operator by code: %w", err)
	}

	return op, nil
}

// GetByID implements operator.OperatorRepository.
func (r *operatorRepository) GetByID(ctx context.Context, id string) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operatorColumns + ` FROM operators WHERE id = $1`

	var op operator.Operator
	err := q.QueryRow(ctx, query, id).Scan(
		&op.ID, &op.Code, &op.Name, &op.PINHash, &op.Active, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return operator.Operator{}, operator.ErrOperatorNotFound
		}
		return operator.Operator{}, fmt.Errorf("failed to get operator: %w", err)
	}

	return op, nil
}
