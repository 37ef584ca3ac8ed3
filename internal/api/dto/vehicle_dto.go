package dto

import "github.com/fieldops/farm-admin/internal/domain"

// VehicleRequest payload.
type VehicleRequest struct {
	LicensePlate string               `json:"license_plate"`
	Category     string               `json:"category"`
	FuelType     domain.FuelType      `json:"fuel_type"`
	Status       domain.VehicleStatus `json:"status"`
	StaffID      string               `json:"staff_id"`
	Remarks      string               `json:"remarks"`
}

// VehicleResponse representation.
type VehicleResponse struct {
	Code           string               `json:"code"`
	LicensePlate   string               `json:"license_plate"`
	Category       string               `json:"category"`
	FuelType       domain.FuelType      `json:"fuel_type"`
	Status         domain.VehicleStatus `json:"status"`
	AllocatedStaff StaffRefResponse     `json:"allocated_staff"`
	Remarks        string               `json:"remarks"`
}
