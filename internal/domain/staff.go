package domain

import "time"

// StaffRole enumerates farm staff roles.
type StaffRole string

const (
	StaffRoleManager        StaffRole = "MANAGER"
	StaffRoleAdministrative StaffRole = "ADMINISTRATIVE"
	StaffRoleScientist      StaffRole = "SCIENTIST"
	StaffRoleOther          StaffRole = "OTHER"
)

// Valid reports whether r is a known role.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleManager, StaffRoleAdministrative, StaffRoleScientist, StaffRoleOther:
		return true
	}
	return false
}

// Staff models a farm staff member.
type Staff struct {
	StaffID       string
	FirstName     string
	LastName      string
	Designation   string
	Gender        string
	JoinedDate    time.Time
	DOB           time.Time
	AddressLine01 string
	AddressLine02 string
	AddressLine03 string
	AddressLine04 string
	AddressLine05 string
	PostalCode    string
	ContactNo     string
	Email         string
	Role          StaffRole
}

// FullName joins first and last name.
func (s Staff) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// Equal compares two staff records field by field, using time.Time.Equal for
// the dates.
func (s Staff) Equal(o Staff) bool {
	a, b := s, o
	if !a.JoinedDate.Equal(b.JoinedDate) || !a.DOB.Equal(b.DOB) {
		return false
	}
	a.JoinedDate, a.DOB = time.Time{}, time.Time{}
	b.JoinedDate, b.DOB = time.Time{}, time.Time{}
	return a == b
}
