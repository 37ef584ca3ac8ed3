package domain

// FuelType enumerates vehicle fuel types.
type FuelType string

const (
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
)

// Valid reports whether f is a known fuel type.
func (f FuelType) Valid() bool {
	switch f {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid:
		return true
	}
	return false
}

// VehicleStatus enumerates vehicle availability.
type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "available"
	VehicleStatusOutOfService VehicleStatus = "out of service"
)

// Valid reports whether s is a known status.
func (s VehicleStatus) Valid() bool {
	return s == VehicleStatusAvailable || s == VehicleStatusOutOfService
}

// Vehicle models a farm vehicle. AllocatedStaff is a copy of the staff
// record taken when the vehicle was last added or updated.
type Vehicle struct {
	Code           string
	LicensePlate   string
	Category       string
	FuelType       FuelType
	Status         VehicleStatus
	AllocatedStaff Staff
	Remarks        string
}
