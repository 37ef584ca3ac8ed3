package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/store"
)

func TestWriteWorkbook(t *testing.T) {
	amal := domain.Staff{StaffID: "ST-1", FirstName: "Amal", LastName: "Silva", Role: domain.StaffRoleManager}
	state := store.State{
		Staff:   []domain.Staff{amal},
		Vehicle: []domain.Vehicle{{Code: "VH-1", LicensePlate: "ABC-1234", FuelType: domain.FuelTypeDiesel, AllocatedStaff: amal}},
		Field:   []domain.Field{{FieldCode: "FE-1", FieldName: "North", FieldSize: 12.5, Staffs: []domain.Staff{amal}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, state))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetStaff, SheetVehicles, SheetFields}, f.GetSheetList())

	staffRows, err := f.GetRows(SheetStaff)
	require.NoError(t, err)
	require.Len(t, staffRows, 2)
	assert.Equal(t, "Staff ID", staffRows[0][0])
	assert.Equal(t, "ST-1", staffRows[1][0])

	plate, err := f.GetCellValue(SheetVehicles, "B2")
	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", plate)

	staffNames, err := f.GetCellValue(SheetFields, "H2")
	require.NoError(t, err)
	assert.Equal(t, "Amal Silva", staffNames)
}
