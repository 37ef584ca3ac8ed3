package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers_PrefixAndUUID(t *testing.T) {
	cases := map[string]func() string{
		StaffIDPrefix:     NewStaffID,
		VehicleCodePrefix: NewVehicleCode,
		FieldCodePrefix:   NewFieldCode,
	}
	for prefix, gen := range cases {
		id := gen()
		require.True(t, strings.HasPrefix(id, prefix), id)
		_, err := uuid.Parse(strings.TrimPrefix(id, prefix))
		assert.NoError(t, err)
		assert.NotEqual(t, id, gen())
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "1990-04-12", FormatDate(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01", FormatDate(d))

	d, err = ParseDate("2021-06-01T23:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01", FormatDate(d))

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("01/06/2021")
	assert.Error(t, err)
}

func TestEnums(t *testing.T) {
	assert.True(t, StaffRoleScientist.Valid())
	assert.False(t, StaffRole("FARMER").Valid())
	assert.True(t, FuelTypeHybrid.Valid())
	assert.False(t, FuelType("Petrol").Valid())
	assert.True(t, VehicleStatusOutOfService.Valid())
	assert.False(t, VehicleStatus("broken").Valid())
}

func TestStaffEqual_ComparesInstants(t *testing.T) {
	joined := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	a := Staff{StaffID: "ST-1", FirstName: "Amal", JoinedDate: joined}
	b := a
	b.JoinedDate = joined.In(time.FixedZone("LK", 5*3600+1800))

	assert.True(t, a.Equal(b))
	b.FirstName = "Bimal"
	assert.False(t, a.Equal(b))
}

func TestStaffFullName(t *testing.T) {
	assert.Equal(t, "Amal Perera", Staff{FirstName: "Amal", LastName: "Perera"}.FullName())
	assert.Equal(t, "Perera", Staff{LastName: "Perera"}.FullName())
}

func TestField_ImagesAndStaffIDs(t *testing.T) {
	f := Field{FieldImage2: "data:image/png;base64,AA==", Staffs: []Staff{{StaffID: "ST-1"}, {StaffID: "ST-2"}}}
	assert.Equal(t, []string{"data:image/png;base64,AA=="}, f.Images())
	assert.Equal(t, []string{"ST-1", "ST-2"}, f.StaffIDs())
}

func TestLocationValid(t *testing.T) {
	assert.True(t, Location{Latitude: 8.0150, Longitude: 79.93}.Valid())
	assert.False(t, Location{Latitude: 91}.Valid())
	assert.False(t, Location{Longitude: -181}.Valid())
}
