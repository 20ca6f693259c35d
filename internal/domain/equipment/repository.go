package equipment

import (
	"context"
)

type EquipmentRepository interface {
	// GetByID retrieves an equipment unit by id.
	GetByID(ctx context.Context, id string) (Equipment, error)

	// List retrieves all active equipment units.
	List(ctx context.Context) ([]Equipment, error)
}
