package service

import (
	"context"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/store"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

// VehicleService manages vehicles and their staff allocation.
type VehicleService struct {
	store *store.Store
}

// NewVehicleService constructs the service.
func NewVehicleService(st *store.Store) *VehicleService {
	return &VehicleService{store: st}
}

// VehicleInput describes the editable vehicle attributes.
type VehicleInput struct {
	LicensePlate string               `validate:"required"`
	Category     string               `validate:"required"`
	FuelType     domain.FuelType      `validate:"fueltype"`
	Status       domain.VehicleStatus `validate:"vehiclestatus"`
	StaffID      string               `validate:"required"`
	Remarks      string
}

// VehicleView pairs a vehicle with the live state of its allocated staff.
type VehicleView struct {
	Vehicle domain.Vehicle
	Staff   store.StaffRef
}

func (in VehicleInput) record(code string) domain.Vehicle {
	return domain.Vehicle{
		Code:         code,
		LicensePlate: in.LicensePlate,
		Category:     in.Category,
		FuelType:     in.FuelType,
		Status:       in.Status,
		Remarks:      in.Remarks,
	}
}

// List returns all vehicles in insertion order.
func (s *VehicleService) List(ctx context.Context) []VehicleView {
	state := s.store.GetState()
	views := make([]VehicleView, 0, len(state.Vehicle))
	for _, v := range state.Vehicle {
		views = append(views, NewVehicleView(state, v))
	}
	return views
}

// Get fetches one vehicle.
func (s *VehicleService) Get(ctx context.Context, code string) (*VehicleView, error) {
	state := s.store.GetState()
	v, ok := state.FindVehicle(code)
	if !ok {
		return nil, apperrors.NewNotFound("vehicle", code)
	}
	view := NewVehicleView(state, v)
	return &view, nil
}

// Create adds a vehicle allocated to in.StaffID.
func (s *VehicleService) Create(ctx context.Context, in VehicleInput) (*VehicleView, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	code := domain.NewVehicleCode()
	state, err := s.store.Dispatch(store.AddVehicle{Vehicle: in.record(code), StaffID: in.StaffID})
	if err != nil {
		return nil, err
	}
	return vehicleView(state, code), nil
}

// Update replaces a vehicle's attributes and re-allocates it.
func (s *VehicleService) Update(ctx context.Context, code string, in VehicleInput) (*VehicleView, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	state, err := s.store.Dispatch(store.UpdateVehicle{Vehicle: in.record(code), StaffID: in.StaffID})
	if err != nil {
		return nil, err
	}
	return vehicleView(state, code), nil
}

// NewVehicleView resolves v's allocated staff against state.
func NewVehicleView(state store.State, v domain.Vehicle) VehicleView {
	return VehicleView{Vehicle: v, Staff: store.ResolveStaff(state, v.AllocatedStaff)}
}

func vehicleView(state store.State, code string) *VehicleView {
	v, _ := state.FindVehicle(code)
	view := NewVehicleView(state, v)
	return &view
}

// Delete removes a vehicle.
func (s *VehicleService) Delete(ctx context.Context, code string) error {
	_, err := s.store.Dispatch(store.RemoveVehicle{Code: code})
	return err
}
