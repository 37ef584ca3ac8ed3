package domain

import "github.com/google/uuid"

// Identifier prefixes per entity type.
const (
	StaffIDPrefix     = "ST-"
	VehicleCodePrefix = "VH-"
	FieldCodePrefix   = "FE-"
)

// NewStaffID returns a fresh staff identifier.
func NewStaffID() string {
	return StaffIDPrefix + uuid.NewString()
}

// NewVehicleCode returns a fresh vehicle code.
func NewVehicleCode() string {
	return VehicleCodePrefix + uuid.NewString()
}

// NewFieldCode returns a fresh field code.
func NewFieldCode() string {
	return FieldCodePrefix + uuid.NewString()
}
