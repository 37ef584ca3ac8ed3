package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/observability"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

func staffMember(id, first string) domain.Staff {
	return domain.Staff{
		StaffID:   id,
		FirstName: first,
		LastName:  "Perera",
		Email:     first + "@farm.lk",
		Role:      domain.StaffRoleOther,
	}
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	var staff []domain.Staff
	for i := 1; i <= 5; i++ {
		staff = append(staff, staffMember(fmt.Sprintf("ST-%d", i), fmt.Sprintf("staff%d", i)))
	}
	vehicles := []domain.Vehicle{
		{Code: "VH-1", LicensePlate: "ABC-1234", FuelType: domain.FuelTypePetrol, Status: domain.VehicleStatusAvailable, AllocatedStaff: staff[0]},
		{Code: "VH-2", LicensePlate: "XYZ-5678", FuelType: domain.FuelTypeDiesel, Status: domain.VehicleStatusOutOfService, AllocatedStaff: staff[1]},
		{Code: "VH-3", LicensePlate: "LMN-9012", FuelType: domain.FuelTypePetrol, Status: domain.VehicleStatusAvailable, AllocatedStaff: staff[2]},
		{Code: "VH-4", LicensePlate: "QRS-3456", FuelType: domain.FuelTypeDiesel, Status: domain.VehicleStatusOutOfService, AllocatedStaff: staff[3]},
	}
	fields := []domain.Field{
		{FieldCode: "FE-1", FieldName: "Field-Puttalam", Location: domain.Location{Latitude: 8.015, Longitude: 79.93}, FieldSize: 30, Staffs: []domain.Staff{staff[0], staff[1]}},
		{FieldCode: "FE-2", FieldName: "Field-Anuradhapura", Location: domain.Location{Latitude: 8.311, Longitude: 80.4148}, FieldSize: 40, Staffs: []domain.Staff{staff[1], staff[2]}},
		{FieldCode: "FE-3", FieldName: "Field-Polonnaruwa", Location: domain.Location{Latitude: 7.9405, Longitude: 81.0253}, FieldSize: 35, Staffs: []domain.Staff{staff[2], staff[3]}},
	}
	s, err := New(State{Staff: staff, Vehicle: vehicles, Field: fields})
	require.NoError(t, err)
	return s
}

func TestNew_RejectsDuplicateSeedIdentifiers(t *testing.T) {
	_, err := New(State{Staff: []domain.Staff{staffMember("ST-1", "a"), staffMember("ST-1", "b")}})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateIdentifier))
}

func TestDispatch_AddStaffAppends(t *testing.T) {
	s := seededStore(t)

	state, err := s.Dispatch(AddStaff{Staff: staffMember("ST-new", "nimal")})
	require.NoError(t, err)

	assert.Len(t, state.Staff, 6)
	assert.Equal(t, "ST-new", state.Staff[5].StaffID)
	assert.Len(t, s.GetState().Staff, 6)
	assert.Equal(t, "ST-new", s.GetState().Staff[5].StaffID)
}

func TestDispatch_AddStaffDuplicateLeavesStateUnchanged(t *testing.T) {
	s := seededStore(t)
	before := s.GetState()

	_, err := s.Dispatch(AddStaff{Staff: staffMember("ST-2", "dup")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateIdentifier))
	assert.Equal(t, before, s.GetState())
}

func TestDispatch_AddVehicleWithUnknownStaffFails(t *testing.T) {
	s := seededStore(t)
	before := s.GetState().Vehicle

	_, err := s.Dispatch(AddVehicle{
		Vehicle: domain.Vehicle{Code: "VH-9", LicensePlate: "NEW-0001"},
		StaffID: "ST-missing",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeReferenceNotFound))
	assert.Equal(t, before, s.GetState().Vehicle)
}

func TestDispatch_AddVehicleEmbedsResolvedStaff(t *testing.T) {
	s := seededStore(t)

	state, err := s.Dispatch(AddVehicle{
		Vehicle: domain.Vehicle{Code: "VH-9", LicensePlate: "NEW-0001", AllocatedStaff: domain.Staff{StaffID: "ignored"}},
		StaffID: "ST-5",
	})
	require.NoError(t, err)

	added, ok := state.FindVehicle("VH-9")
	require.True(t, ok)
	assert.Equal(t, "ST-5", added.AllocatedStaff.StaffID)
	assert.Equal(t, "staff5", added.AllocatedStaff.FirstName)
}

func TestDispatch_UpdateVehicleReResolvesStaff(t *testing.T) {
	s := seededStore(t)

	v, ok := s.GetState().FindVehicle("VH-2")
	require.True(t, ok)
	v.Remarks = "serviced"

	state, err := s.Dispatch(UpdateVehicle{Vehicle: v, StaffID: "ST-4"})
	require.NoError(t, err)

	assert.Equal(t, "VH-2", state.Vehicle[1].Code)
	assert.Equal(t, "serviced", state.Vehicle[1].Remarks)
	assert.Equal(t, "ST-4", state.Vehicle[1].AllocatedStaff.StaffID)

	_, err = s.Dispatch(UpdateVehicle{Vehicle: v, StaffID: "ST-missing"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeReferenceNotFound))
	assert.Equal(t, "ST-4", s.GetState().Vehicle[1].AllocatedStaff.StaffID)
}

func TestDispatch_UpdateFieldSizeKeepsPosition(t *testing.T) {
	s := seededStore(t)

	f, ok := s.GetState().FindField("FE-1")
	require.True(t, ok)
	f.FieldSize = 45

	state, err := s.Dispatch(UpdateField{Field: f, StaffIDs: f.StaffIDs()})
	require.NoError(t, err)

	require.Len(t, state.Field, 3)
	assert.Equal(t, "FE-1", state.Field[0].FieldCode)
	assert.Equal(t, 45.0, state.Field[0].FieldSize)
	assert.Equal(t, []string{"FE-1", "FE-2", "FE-3"}, fieldCodes(state.Field))
}

func TestDispatch_UpdateFieldReplacesStaffSet(t *testing.T) {
	s := seededStore(t)
	f, _ := s.GetState().FindField("FE-2")

	state, err := s.Dispatch(UpdateField{Field: f, StaffIDs: []string{"ST-5", "ST-1", "ST-5"}})
	require.NoError(t, err)

	updated, _ := state.FindField("FE-2")
	assert.Equal(t, []string{"ST-5", "ST-1"}, updated.StaffIDs())
}

func TestDispatch_FieldRequiresStaff(t *testing.T) {
	s := seededStore(t)

	_, err := s.Dispatch(AddField{Field: domain.Field{FieldCode: "FE-9", FieldName: "x", FieldSize: 1}})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))

	_, err = s.Dispatch(AddField{Field: domain.Field{FieldCode: "FE-9", FieldName: "x", FieldSize: 1}, StaffIDs: []string{"ST-1", "ST-ghost"}})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeReferenceNotFound))
	assert.Len(t, s.GetState().Field, 3)
}

func TestDispatch_RemoveVehicle(t *testing.T) {
	s := seededStore(t)

	state, err := s.Dispatch(RemoveVehicle{Code: "VH-3"})
	require.NoError(t, err)

	assert.Len(t, state.Vehicle, 3)
	_, found := state.FindVehicle("VH-3")
	assert.False(t, found)
	assert.Equal(t, []string{"VH-1", "VH-2", "VH-4"}, vehicleCodes(state.Vehicle))
}

func TestDispatch_RemoveUnknownStaffIsNotFound(t *testing.T) {
	s := seededStore(t)
	before := s.GetState()

	_, err := s.Dispatch(RemoveStaff{StaffID: "ST-ghost"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Equal(t, before, s.GetState())
}

func TestDispatch_RemoveTwiceMatchesRemoveOnce(t *testing.T) {
	s := seededStore(t)

	once, err := s.Dispatch(RemoveField{FieldCode: "FE-2"})
	require.NoError(t, err)

	_, err = s.Dispatch(RemoveField{FieldCode: "FE-2"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Equal(t, once, s.GetState())
}

func TestDispatch_AddThenUpdateRoundTrip(t *testing.T) {
	s := seededStore(t)
	rec := staffMember("ST-rt", "kamal")

	_, err := s.Dispatch(AddStaff{Staff: rec})
	require.NoError(t, err)

	rec.Designation = "Agronomist"
	rec.Role = domain.StaffRoleScientist
	state, err := s.Dispatch(UpdateStaff{Staff: rec})
	require.NoError(t, err)

	count := 0
	for _, st := range state.Staff {
		if st.StaffID == "ST-rt" {
			count++
			assert.Equal(t, "Agronomist", st.Designation)
			assert.Equal(t, domain.StaffRoleScientist, st.Role)
		}
	}
	assert.Equal(t, 1, count)
}

func TestDispatch_AddsNeverShareIdentifiers(t *testing.T) {
	s, err := New(State{})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		_, err := s.Dispatch(AddStaff{Staff: staffMember(domain.NewStaffID(), "x")})
		require.NoError(t, err)
	}
	seen := map[string]bool{}
	for _, st := range s.GetState().Staff {
		assert.False(t, seen[st.StaffID], "duplicate %s", st.StaffID)
		seen[st.StaffID] = true
	}
	assert.Len(t, seen, 50)
}

func TestDispatch_StaffEditDoesNotPropagateToSnapshots(t *testing.T) {
	s := seededStore(t)
	st, _ := s.GetState().FindStaff("ST-1")
	st.FirstName = "renamed"

	_, err := s.Dispatch(UpdateStaff{Staff: st})
	require.NoError(t, err)

	state := s.GetState()
	v, _ := state.FindVehicle("VH-1")
	assert.Equal(t, "staff1", v.AllocatedStaff.FirstName)

	ref := ResolveStaff(state, v.AllocatedStaff)
	assert.True(t, ref.Stale)
	assert.False(t, ref.Missing)
	assert.Equal(t, "renamed", ref.Current.FirstName)

	_, err = s.Dispatch(RemoveStaff{StaffID: "ST-1"})
	require.NoError(t, err)
	state = s.GetState()
	v, ok := state.FindVehicle("VH-1")
	require.True(t, ok, "vehicles keep references to removed staff")
	assert.True(t, ResolveStaff(state, v.AllocatedStaff).Missing)
}

func TestDispatch_NilIntent(t *testing.T) {
	s := seededStore(t)
	_, err := s.Dispatch(nil)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))
}

func TestSubscribe_NotifiedOnSuccessOnly(t *testing.T) {
	s := seededStore(t)

	var got []IntentType
	var lastStaffLen int
	unsubscribe := s.Subscribe(func(state State, intent Intent) {
		got = append(got, intent.Type())
		lastStaffLen = len(state.Staff)
	})

	_, err := s.Dispatch(AddStaff{Staff: staffMember("ST-6", "six")})
	require.NoError(t, err)
	_, err = s.Dispatch(RemoveStaff{StaffID: "ST-ghost"})
	require.Error(t, err)
	_, err = s.Dispatch(RemoveVehicle{Code: "VH-1"})
	require.NoError(t, err)

	assert.Equal(t, []IntentType{IntentAddStaff, IntentRemoveVehicle}, got)
	assert.Equal(t, 6, lastStaffLen)

	unsubscribe()
	unsubscribe()
	_, err = s.Dispatch(RemoveVehicle{Code: "VH-2"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSubscribe_ListenersRunInOrderAndMayReadState(t *testing.T) {
	s := seededStore(t)

	var order []string
	s.Subscribe(func(State, Intent) {
		order = append(order, "first")
		assert.Len(t, s.GetState().Staff, 6)
	})
	s.Subscribe(func(State, Intent) { order = append(order, "second") })
	s.Subscribe(nil)

	_, err := s.Dispatch(AddStaff{Staff: staffMember("ST-6", "six")})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestGetState_AppendDoesNotLeakIntoStore(t *testing.T) {
	s := seededStore(t)

	snapshot := s.GetState()
	_ = append(snapshot.Staff, staffMember("ST-x", "x"))

	_, err := s.Dispatch(AddStaff{Staff: staffMember("ST-6", "six")})
	require.NoError(t, err)
	assert.Len(t, snapshot.Staff, 5)
	assert.Equal(t, "ST-6", s.GetState().Staff[5].StaffID)
}

func TestDispatch_RecordsMutationMetrics(t *testing.T) {
	metrics := observability.NewMetrics("test")
	s, err := New(State{}, WithMetrics(metrics))
	require.NoError(t, err)

	_, _ = s.Dispatch(AddStaff{Staff: staffMember("ST-1", "a")})
	_, _ = s.Dispatch(RemoveStaff{StaffID: "ST-2"})

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	outcomes := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "test_store_mutations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var intent, outcome string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "intent":
					intent = l.GetValue()
				case "outcome":
					outcome = l.GetValue()
				}
			}
			outcomes[intent+"|"+outcome] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, outcomes["staff/add|ok"])
	assert.Equal(t, 1.0, outcomes["staff/remove|NOT_FOUND"])
}

func fieldCodes(fields []domain.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.FieldCode)
	}
	return out
}

func vehicleCodes(vehicles []domain.Vehicle) []string {
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.Code)
	}
	return out
}
