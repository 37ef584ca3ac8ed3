package service

import (
	"context"
	"time"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/store"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

// StaffService manages staff records.
type StaffService struct {
	store *store.Store
}

// NewStaffService constructs the service.
func NewStaffService(st *store.Store) *StaffService {
	return &StaffService{store: st}
}

// StaffInput describes the editable staff attributes. AddressLine01 is the
// street address and lines 03 to 05 hold city, province and country;
// AddressLine02 is optional.
type StaffInput struct {
	FirstName     string           `validate:"notblank"`
	LastName      string           `validate:"notblank"`
	Designation   string           `validate:"notblank"`
	Gender        string           `validate:"notblank"`
	JoinedDate    time.Time        `validate:"required"`
	DOB           time.Time        `validate:"required"`
	AddressLine01 string           `validate:"notblank"`
	AddressLine02 string
	AddressLine03 string           `validate:"notblank"`
	AddressLine04 string           `validate:"notblank"`
	AddressLine05 string           `validate:"notblank"`
	PostalCode    string           `validate:"notblank"`
	ContactNo     string           `validate:"notblank"`
	Email         string           `validate:"required,email"`
	Role          domain.StaffRole `validate:"staffrole"`
}

func (in StaffInput) record(id string) domain.Staff {
	return domain.Staff{
		StaffID:       id,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Designation:   in.Designation,
		Gender:        in.Gender,
		JoinedDate:    in.JoinedDate,
		DOB:           in.DOB,
		AddressLine01: in.AddressLine01,
		AddressLine02: in.AddressLine02,
		AddressLine03: in.AddressLine03,
		AddressLine04: in.AddressLine04,
		AddressLine05: in.AddressLine05,
		PostalCode:    in.PostalCode,
		ContactNo:     in.ContactNo,
		Email:         in.Email,
		Role:          in.Role,
	}
}

// List returns all staff in insertion order.
func (s *StaffService) List(ctx context.Context) []domain.Staff {
	return s.store.GetState().Staff
}

// Get fetches one staff member.
func (s *StaffService) Get(ctx context.Context, id string) (*domain.Staff, error) {
	rec, ok := s.store.GetState().FindStaff(id)
	if !ok {
		return nil, apperrors.NewNotFound("staff", id)
	}
	return &rec, nil
}

// Create validates input and adds a staff member with a fresh identifier.
func (s *StaffService) Create(ctx context.Context, in StaffInput) (*domain.Staff, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	rec := in.record(domain.NewStaffID())
	if _, err := s.store.Dispatch(store.AddStaff{Staff: rec}); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update replaces the attributes of an existing staff member.
func (s *StaffService) Update(ctx context.Context, id string, in StaffInput) (*domain.Staff, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	rec := in.record(id)
	if _, err := s.store.Dispatch(store.UpdateStaff{Staff: rec}); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a staff member. Vehicles and fields referencing it keep
// their copies.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	_, err := s.store.Dispatch(store.RemoveStaff{StaffID: id})
	return err
}
