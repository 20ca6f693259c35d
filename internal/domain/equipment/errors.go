package equipment

import "errors"

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
)
