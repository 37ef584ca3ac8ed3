// Package seed provides the demo data the dashboard starts with.
package seed

import (
	"time"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/store"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Staff returns five demo staff members with fresh identifiers.
func Staff() []domain.Staff {
	return []domain.Staff{
		{
			StaffID: domain.NewStaffID(), FirstName: "Saman", LastName: "Kumara",
			Designation: "Farm Manager", Gender: "MALE",
			JoinedDate: date(2018, time.January, 15), DOB: date(1980, time.May, 20),
			AddressLine01: "No 12", AddressLine02: "Temple Road", AddressLine03: "Puttalam",
			AddressLine04: "North Western", AddressLine05: "Sri Lanka",
			PostalCode: "61300", ContactNo: "0771234567", Email: "saman.kumara@greenshadow.lk",
			Role: domain.StaffRoleManager,
		},
		{
			StaffID: domain.NewStaffID(), FirstName: "Nimali", LastName: "Perera",
			Designation: "Office Administrator", Gender: "FEMALE",
			JoinedDate: date(2019, time.March, 1), DOB: date(1988, time.August, 11),
			AddressLine01: "45/2", AddressLine02: "Main Street", AddressLine03: "Anuradhapura",
			AddressLine04: "North Central", AddressLine05: "Sri Lanka",
			PostalCode: "50000", ContactNo: "0712345678", Email: "nimali.perera@greenshadow.lk",
			Role: domain.StaffRoleAdministrative,
		},
		{
			StaffID: domain.NewStaffID(), FirstName: "Ruwan", LastName: "Jayasinghe",
			Designation: "Soil Scientist", Gender: "MALE",
			JoinedDate: date(2020, time.June, 10), DOB: date(1985, time.December, 3),
			AddressLine01: "7", AddressLine02: "Lake View", AddressLine03: "Polonnaruwa",
			AddressLine04: "North Central", AddressLine05: "Sri Lanka",
			PostalCode: "51000", ContactNo: "0759876543", Email: "ruwan.jayasinghe@greenshadow.lk",
			Role: domain.StaffRoleScientist,
		},
		{
			StaffID: domain.NewStaffID(), FirstName: "Dilani", LastName: "Fernando",
			Designation: "Crop Scientist", Gender: "FEMALE",
			JoinedDate: date(2021, time.February, 22), DOB: date(1990, time.July, 14),
			AddressLine01: "88", AddressLine02: "Kandy Road", AddressLine03: "Kurunegala",
			AddressLine04: "North Western", AddressLine05: "Sri Lanka",
			PostalCode: "60000", ContactNo: "0784567890", Email: "dilani.fernando@greenshadow.lk",
			Role: domain.StaffRoleScientist,
		},
		{
			StaffID: domain.NewStaffID(), FirstName: "Kasun", LastName: "Bandara",
			Designation: "Driver", Gender: "MALE",
			JoinedDate: date(2022, time.September, 5), DOB: date(1993, time.January, 30),
			AddressLine01: "3B", AddressLine02: "Gem Street", AddressLine03: "Ratnapura",
			AddressLine04: "Sabaragamuwa", AddressLine05: "Sri Lanka",
			PostalCode: "70000", ContactNo: "0701122334", Email: "kasun.bandara@greenshadow.lk",
			Role: domain.StaffRoleOther,
		},
	}
}

// State returns a complete demo tree: five staff, five vehicles each
// allocated to one staff member, and five fields with two staff each.
func State() store.State {
	staff := Staff()

	vehicle := func(plate, category string, fuel domain.FuelType, status domain.VehicleStatus, driver domain.Staff, remarks string) domain.Vehicle {
		return domain.Vehicle{
			Code:           domain.NewVehicleCode(),
			LicensePlate:   plate,
			Category:       category,
			FuelType:       fuel,
			Status:         status,
			AllocatedStaff: driver,
			Remarks:        remarks,
		}
	}
	field := func(name string, lat, lng, size float64, staffs ...domain.Staff) domain.Field {
		return domain.Field{
			FieldCode: domain.NewFieldCode(),
			FieldName: name,
			Location:  domain.Location{Latitude: lat, Longitude: lng},
			FieldSize: size,
			Staffs:    staffs,
		}
	}

	return store.State{
		Staff: staff,
		Vehicle: []domain.Vehicle{
			vehicle("ABC-1234", "Sedan", domain.FuelTypePetrol, domain.VehicleStatusAvailable, staff[0], "No remarks"),
			vehicle("XYZ-5678", "SUV", domain.FuelTypeDiesel, domain.VehicleStatusOutOfService, staff[1], "Scheduled for servicing"),
			vehicle("LMN-9012", "Hatchback", domain.FuelTypePetrol, domain.VehicleStatusAvailable, staff[2], "Used for daily commutes"),
			vehicle("QRS-3456", "Van", domain.FuelTypeDiesel, domain.VehicleStatusOutOfService, staff[3], "Requires repairs"),
			vehicle("TUV-7890", "Truck", domain.FuelTypeElectric, domain.VehicleStatusAvailable, staff[4], "Newly added to fleet"),
		},
		Field: []domain.Field{
			field("Field-Puttalam", 8.0150, 79.9300, 30, staff[0], staff[1]),
			field("Field-Anuradhapura", 8.3110, 80.4148, 40, staff[1], staff[2]),
			field("Field-Polonnaruwa", 7.9405, 81.0253, 35, staff[2], staff[3]),
			field("Field-Kurunegala", 7.4794, 80.3581, 50, staff[1], staff[4]),
			field("Field-Ratnapura", 6.6799, 80.3843, 60, staff[0], staff[2]),
		},
	}
}
