package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/equipment"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type equipmentRepository struct {
	db *database.DB
}

func NewEquipmentRepository(db *database.DB) equipment.EquipmentRepository {
	return &equipmentRepository{db: db}
}

// GetByID implements equipment.EquipmentRepository.
func (r *equipmentRepository) GetByID(ctx context.Context, id string) (equipment.Equipment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, equipment_type_id, active, created_at, updated_at
		FROM equipments
		WHERE id = $1
	`

	var e equipment.Equipment
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Code, &e.Name, &e.EquipmentTypeID, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return equipment.Equipment{}, equipment.ErrEquipmentNotFound
		}
		return equipment.Equipment{}, fmt.Errorf("failed to get equipment: %w", err)
	}

	return e, nil
}

// List implements equipment.EquipmentRepository.
func (r *equipmentRepository) List(ctx context.Context) ([]equipment.Equipment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, equipment_type_id, active, created_at, updated_at
		FROM equipments
		WHERE active
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipments: %w", err)
	}
	defer rows.Close()

	var out []equipment.Equipment
	for rows.Next() {
		var e equipment.Equipment
		if err := rows.Scan(
			&e.ID, &e.Code, &e.Name, &e.EquipmentTypeID, &e.Active, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read equipments: %w", err)
	}

	return out, nil
}
