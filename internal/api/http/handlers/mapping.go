package handlers

import (
	"github.com/fieldops/farm-admin/internal/api/dto"
	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/service"
	"github.com/fieldops/farm-admin/internal/store"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

func staffInput(req dto.StaffRequest) (service.StaffInput, error) {
	joined, err := domain.ParseDate(req.JoinedDate)
	if err != nil {
		return service.StaffInput{}, apperrors.NewValidationError("invalid input", map[string]any{"JoinedDate": "date"})
	}
	dob, err := domain.ParseDate(req.DOB)
	if err != nil {
		return service.StaffInput{}, apperrors.NewValidationError("invalid input", map[string]any{"DOB": "date"})
	}
	return service.StaffInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Designation:   req.Designation,
		Gender:        req.Gender,
		JoinedDate:    joined,
		DOB:           dob,
		AddressLine01: req.AddressLine01,
		AddressLine02: req.AddressLine02,
		AddressLine03: req.AddressLine03,
		AddressLine04: req.AddressLine04,
		AddressLine05: req.AddressLine05,
		PostalCode:    req.PostalCode,
		ContactNo:     req.ContactNo,
		Email:         req.Email,
		Role:          req.Role,
	}, nil
}

func vehicleInput(req dto.VehicleRequest) service.VehicleInput {
	return service.VehicleInput{
		LicensePlate: req.LicensePlate,
		Category:     req.Category,
		FuelType:     req.FuelType,
		Status:       req.Status,
		StaffID:      req.StaffID,
		Remarks:      req.Remarks,
	}
}

func fieldInput(req dto.FieldRequest) service.FieldInput {
	return service.FieldInput{
		FieldName:   req.FieldName,
		Latitude:    req.Location.Latitude,
		Longitude:   req.Location.Longitude,
		FieldSize:   req.FieldSize,
		FieldImage1: req.FieldImage1,
		FieldImage2: req.FieldImage2,
		StaffIDs:    req.StaffIDs,
	}
}

func staffResponse(s domain.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		StaffID:       s.StaffID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Designation:   s.Designation,
		Gender:        s.Gender,
		JoinedDate:    domain.FormatDate(s.JoinedDate),
		DOB:           domain.FormatDate(s.DOB),
		AddressLine01: s.AddressLine01,
		AddressLine02: s.AddressLine02,
		AddressLine03: s.AddressLine03,
		AddressLine04: s.AddressLine04,
		AddressLine05: s.AddressLine05,
		PostalCode:    s.PostalCode,
		ContactNo:     s.ContactNo,
		Email:         s.Email,
		Role:          s.Role,
	}
}

func staffRefResponse(ref store.StaffRef) dto.StaffRefResponse {
	return dto.StaffRefResponse{
		StaffResponse: staffResponse(ref.Snapshot),
		Stale:         ref.Stale,
		Missing:       ref.Missing,
	}
}

func vehicleResponse(v service.VehicleView) dto.VehicleResponse {
	return dto.VehicleResponse{
		Code:           v.Vehicle.Code,
		LicensePlate:   v.Vehicle.LicensePlate,
		Category:       v.Vehicle.Category,
		FuelType:       v.Vehicle.FuelType,
		Status:         v.Vehicle.Status,
		AllocatedStaff: staffRefResponse(v.Staff),
		Remarks:        v.Vehicle.Remarks,
	}
}

func fieldResponse(f service.FieldView) dto.FieldResponse {
	staffs := make([]dto.StaffRefResponse, 0, len(f.Staff))
	for _, ref := range f.Staff {
		staffs = append(staffs, staffRefResponse(ref))
	}
	return dto.FieldResponse{
		FieldCode:   f.Field.FieldCode,
		FieldName:   f.Field.FieldName,
		Location:    dto.LocationDTO{Latitude: f.Field.Location.Latitude, Longitude: f.Field.Location.Longitude},
		FieldSize:   f.Field.FieldSize,
		FieldImage1: f.Field.FieldImage1,
		FieldImage2: f.Field.FieldImage2,
		Staffs:      staffs,
	}
}
