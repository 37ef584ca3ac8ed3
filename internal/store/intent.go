package store

import (
	"github.com/fieldops/farm-admin/internal/domain"
)

// IntentType names a mutation request.
type IntentType string

const (
	IntentAddStaff      IntentType = "staff/add"
	IntentUpdateStaff   IntentType = "staff/update"
	IntentRemoveStaff   IntentType = "staff/remove"
	IntentAddVehicle    IntentType = "vehicle/add"
	IntentUpdateVehicle IntentType = "vehicle/update"
	IntentRemoveVehicle IntentType = "vehicle/remove"
	IntentAddField      IntentType = "field/add"
	IntentUpdateField   IntentType = "field/update"
	IntentRemoveField   IntentType = "field/remove"
)

// Intent is a mutation request routed to exactly one slice.
type Intent interface {
	Type() IntentType
	// TargetID is the identifier of the entity the intent acts on.
	TargetID() string
	apply(State) (State, error)
}

// AddStaff appends a staff record.
type AddStaff struct{ Staff domain.Staff }

func (i AddStaff) Type() IntentType { return IntentAddStaff }
func (i AddStaff) TargetID() string { return i.Staff.StaffID }

func (i AddStaff) apply(s State) (State, error) {
	next, err := staffSlice.Add(s.Staff, i.Staff)
	if err != nil {
		return s, err
	}
	s.Staff = next
	return s, nil
}

// UpdateStaff replaces a staff record in place. Vehicles and fields keep the
// copies they embedded earlier.
type UpdateStaff struct{ Staff domain.Staff }

func (i UpdateStaff) Type() IntentType { return IntentUpdateStaff }
func (i UpdateStaff) TargetID() string { return i.Staff.StaffID }

func (i UpdateStaff) apply(s State) (State, error) {
	next, err := staffSlice.Update(s.Staff, i.Staff)
	if err != nil {
		return s, err
	}
	s.Staff = next
	return s, nil
}

// RemoveStaff drops a staff record. References held by vehicles and fields
// are left in place.
type RemoveStaff struct{ StaffID string }

func (i RemoveStaff) Type() IntentType { return IntentRemoveStaff }
func (i RemoveStaff) TargetID() string { return i.StaffID }

func (i RemoveStaff) apply(s State) (State, error) {
	next, err := staffSlice.Remove(s.Staff, i.StaffID)
	if err != nil {
		return s, err
	}
	s.Staff = next
	return s, nil
}

// AddVehicle appends a vehicle allocated to the staff member StaffID.
// Vehicle.AllocatedStaff is overwritten with the resolved record.
type AddVehicle struct {
	Vehicle domain.Vehicle
	StaffID string
}

func (i AddVehicle) Type() IntentType { return IntentAddVehicle }
func (i AddVehicle) TargetID() string { return i.Vehicle.Code }

func (i AddVehicle) apply(s State) (State, error) {
	staff, err := resolveStaff(s.Staff, i.StaffID)
	if err != nil {
		return s, err
	}
	v := i.Vehicle
	v.AllocatedStaff = staff
	next, err := vehicleSlice.Add(s.Vehicle, v)
	if err != nil {
		return s, err
	}
	s.Vehicle = next
	return s, nil
}

// UpdateVehicle replaces a vehicle in place, re-resolving its staff member.
type UpdateVehicle struct {
	Vehicle domain.Vehicle
	StaffID string
}

func (i UpdateVehicle) Type() IntentType { return IntentUpdateVehicle }
func (i UpdateVehicle) TargetID() string { return i.Vehicle.Code }

func (i UpdateVehicle) apply(s State) (State, error) {
	staff, err := resolveStaff(s.Staff, i.StaffID)
	if err != nil {
		return s, err
	}
	v := i.Vehicle
	v.AllocatedStaff = staff
	next, err := vehicleSlice.Update(s.Vehicle, v)
	if err != nil {
		return s, err
	}
	s.Vehicle = next
	return s, nil
}

// RemoveVehicle drops a vehicle by code.
type RemoveVehicle struct{ Code string }

func (i RemoveVehicle) Type() IntentType { return IntentRemoveVehicle }
func (i RemoveVehicle) TargetID() string { return i.Code }

func (i RemoveVehicle) apply(s State) (State, error) {
	next, err := vehicleSlice.Remove(s.Vehicle, i.Code)
	if err != nil {
		return s, err
	}
	s.Vehicle = next
	return s, nil
}

// AddField appends a field allocated to the staff members in StaffIDs.
// Field.Staffs is overwritten with the resolved records.
type AddField struct {
	Field    domain.Field
	StaffIDs []string
}

func (i AddField) Type() IntentType { return IntentAddField }
func (i AddField) TargetID() string { return i.Field.FieldCode }

func (i AddField) apply(s State) (State, error) {
	staffs, err := resolveStaffSet(s.Staff, i.StaffIDs)
	if err != nil {
		return s, err
	}
	f := i.Field
	f.Staffs = staffs
	next, err := fieldSlice.Add(s.Field, f)
	if err != nil {
		return s, err
	}
	s.Field = next
	return s, nil
}

// UpdateField replaces a field in place together with its whole staff set.
type UpdateField struct {
	Field    domain.Field
	StaffIDs []string
}

func (i UpdateField) Type() IntentType { return IntentUpdateField }
func (i UpdateField) TargetID() string { return i.Field.FieldCode }

func (i UpdateField) apply(s State) (State, error) {
	staffs, err := resolveStaffSet(s.Staff, i.StaffIDs)
	if err != nil {
		return s, err
	}
	f := i.Field
	f.Staffs = staffs
	next, err := fieldSlice.Update(s.Field, f)
	if err != nil {
		return s, err
	}
	s.Field = next
	return s, nil
}

// RemoveField drops a field by code.
type RemoveField struct{ FieldCode string }

func (i RemoveField) Type() IntentType { return IntentRemoveField }
func (i RemoveField) TargetID() string { return i.FieldCode }

func (i RemoveField) apply(s State) (State, error) {
	next, err := fieldSlice.Remove(s.Field, i.FieldCode)
	if err != nil {
		return s, err
	}
	s.Field = next
	return s, nil
}
