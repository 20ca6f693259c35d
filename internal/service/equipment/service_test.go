package equipment

import (
	"context"
	"errors"
	"testing"

	domain "github.com/fleetworks/timesheet-backend-go/internal/domain/equipment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEquipmentRepository struct {
	units []domain.Equipment
	err   error
}

func (f *fakeEquipmentRepository) GetByID(ctx context.Context, id string) (domain.Equipment, error) {
	for _, u := range f.units {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.Equipment{}, domain.ErrEquipmentNotFound
}

func (f *fakeEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.units, nil
}

func TestEquipmentService_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewEquipmentService(&fakeEquipmentRepository{
		units: []domain.Equipment{
			{ID: "eq-2", Code: "TRK-04", Name: "Haul Truck 04", Active: true},
			{ID: "eq-1", Code: "EXC-01", Name: "Excavator 01", Active: false},
		},
	})

	units, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "EXC-01", units[0].Code)
	assert.Equal(t, "TRK-04", units[1].Code)
	assert.False(t, units[0].Active)
}

func TestEquipmentService_List_Empty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewEquipmentService(&fakeEquipmentRepository{})

	units, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestEquipmentService_List_RepositoryError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("connection lost")
	svc := NewEquipmentService(&fakeEquipmentRepository{err: boom})

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
}
