package store

import (
	"slices"

	"github.com/fieldops/farm-admin/internal/domain"
)

// State is the composed tree of all entity slices. Values handed out by the
// store must be treated as read-only; request changes through Dispatch.
type State struct {
	Staff   []domain.Staff
	Vehicle []domain.Vehicle
	Field   []domain.Field
}

// FindStaff looks up a staff record by identifier.
func (s State) FindStaff(id string) (domain.Staff, bool) {
	return staffSlice.Find(s.Staff, id)
}

// FindVehicle looks up a vehicle by code.
func (s State) FindVehicle(code string) (domain.Vehicle, bool) {
	return vehicleSlice.Find(s.Vehicle, code)
}

// FindField looks up a field by code.
func (s State) FindField(code string) (domain.Field, bool) {
	return fieldSlice.Find(s.Field, code)
}

// clipped caps every collection so an append by a reader reallocates instead
// of writing into the store's backing arrays.
func (s State) clipped() State {
	return State{
		Staff:   slices.Clip(s.Staff),
		Vehicle: slices.Clip(s.Vehicle),
		Field:   slices.Clip(s.Field),
	}
}
