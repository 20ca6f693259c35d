package equipment

import (
	"context"
	"sort"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/equipment"
)

type EquipmentService interface {
	// List returns every equipment unit an operator can open a timesheet
	// for, ordered by code.
	List(ctx context.Context) ([]equipment.EquipmentResponse, error)
}

type EquipmentServiceImpl struct {
	equipment.EquipmentRepository
}

func NewEquipmentService(equipmentRepo equipment.EquipmentRepository) EquipmentService {
	return &EquipmentServiceImpl{EquipmentRepository: equipmentRepo}
}

// List implements EquipmentService.
func (e *EquipmentServiceImpl) List(ctx context.Context) ([]equipment.EquipmentResponse, error) {
	units, err := e.EquipmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]equipment.EquipmentResponse, 0, len(units))
	for _, u := range units {
		out = append(out, equipment.EquipmentResponse{
			ID:     u.ID,
			Code:   u.Code,
			Name:   u.Name,
			Active: u.Active,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
