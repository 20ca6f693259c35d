package equipment

import (
	"time"
)

type Equipment struct {
	ID              string
	Code            string
	Name            string
	EquipmentTypeID string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
