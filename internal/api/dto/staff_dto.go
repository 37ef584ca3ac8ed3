package dto

import "github.com/fieldops/farm-admin/internal/domain"

// StaffRequest payload for creating or updating a staff member. Dates use
// YYYY-MM-DD.
type StaffRequest struct {
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Designation   string           `json:"designation"`
	Gender        string           `json:"gender"`
	JoinedDate    string           `json:"joined_date"`
	DOB           string           `json:"dob"`
	AddressLine01 string           `json:"address_line_01"`
	AddressLine02 string           `json:"address_line_02"`
	AddressLine03 string           `json:"address_line_03"`
	AddressLine04 string           `json:"address_line_04"`
	AddressLine05 string           `json:"address_line_05"`
	PostalCode    string           `json:"postal_code"`
	ContactNo     string           `json:"contact_no"`
	Email         string           `json:"email"`
	Role          domain.StaffRole `json:"role"`
}

// StaffResponse representation.
type StaffResponse struct {
	StaffID       string           `json:"staff_id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Designation   string           `json:"designation"`
	Gender        string           `json:"gender"`
	JoinedDate    string           `json:"joined_date"`
	DOB           string           `json:"dob"`
	AddressLine01 string           `json:"address_line_01"`
	AddressLine02 string           `json:"address_line_02"`
	AddressLine03 string           `json:"address_line_03"`
	AddressLine04 string           `json:"address_line_04"`
	AddressLine05 string           `json:"address_line_05"`
	PostalCode    string           `json:"postal_code"`
	ContactNo     string           `json:"contact_no"`
	Email         string           `json:"email"`
	Role          domain.StaffRole `json:"role"`
}

// StaffRefResponse is an embedded staff copy plus its relation to the live
// record.
type StaffRefResponse struct {
	StaffResponse
	// Stale is true when the live record changed or was removed after the
	// copy was taken.
	Stale   bool `json:"stale"`
	Missing bool `json:"missing"`
}
