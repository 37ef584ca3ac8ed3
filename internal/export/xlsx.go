// Package export renders the current store state as a spreadsheet.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/store"
)

// Sheet names in workbook order.
const (
	SheetStaff    = "Staff"
	SheetVehicles = "Vehicles"
	SheetFields   = "Fields"
)

var (
	staffHeader = []interface{}{
		"Staff ID", "First Name", "Last Name", "Designation", "Gender", "Joined Date", "Date of Birth",
		"Address Line 1", "Address Line 2", "Address Line 3", "Address Line 4", "Address Line 5",
		"Postal Code", "Contact No", "Email", "Role",
	}
	vehicleHeader = []interface{}{
		"Code", "License Plate", "Category", "Fuel Type", "Status", "Allocated Staff ID", "Allocated Staff", "Remarks",
	}
	fieldHeader = []interface{}{
		"Field Code", "Field Name", "Latitude", "Longitude", "Size (ha)", "Images", "Staff IDs", "Staff",
	}
)

// WriteWorkbook writes one sheet per collection to w in XLSX format. Images
// are summarized by count rather than embedded.
func WriteWorkbook(w io.Writer, state store.State) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetStaff); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetVehicles, SheetFields} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	staffRows := make([][]interface{}, 0, len(state.Staff))
	for _, s := range state.Staff {
		staffRows = append(staffRows, []interface{}{
			s.StaffID, s.FirstName, s.LastName, s.Designation, s.Gender,
			domain.FormatDate(s.JoinedDate), domain.FormatDate(s.DOB),
			s.AddressLine01, s.AddressLine02, s.AddressLine03, s.AddressLine04, s.AddressLine05,
			s.PostalCode, s.ContactNo, s.Email, string(s.Role),
		})
	}
	vehicleRows := make([][]interface{}, 0, len(state.Vehicle))
	for _, v := range state.Vehicle {
		vehicleRows = append(vehicleRows, []interface{}{
			v.Code, v.LicensePlate, v.Category, string(v.FuelType), string(v.Status),
			v.AllocatedStaff.StaffID, v.AllocatedStaff.FullName(), v.Remarks,
		})
	}
	fieldRows := make([][]interface{}, 0, len(state.Field))
	for _, fd := range state.Field {
		names := make([]string, 0, len(fd.Staffs))
		for _, s := range fd.Staffs {
			names = append(names, s.FullName())
		}
		fieldRows = append(fieldRows, []interface{}{
			fd.FieldCode, fd.FieldName, fd.Location.Latitude, fd.Location.Longitude, fd.FieldSize,
			len(fd.Images()), strings.Join(fd.StaffIDs(), ", "), strings.Join(names, ", "),
		})
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetStaff, staffHeader, staffRows},
		{SheetVehicles, vehicleHeader, vehicleRows},
		{SheetFields, fieldHeader, fieldRows},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, header, sh.header, sh.rows); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
