package service

import (
	"context"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/store"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

// FieldService manages fields and their staff allocation.
type FieldService struct {
	store         *store.Store
	imageMaxBytes int
}

// NewFieldService constructs the service. imageMaxBytes caps the decoded
// size of each field image; zero disables the cap.
func NewFieldService(st *store.Store, imageMaxBytes int) *FieldService {
	return &FieldService{store: st, imageMaxBytes: imageMaxBytes}
}

// FieldInput describes the editable field attributes.
type FieldInput struct {
	FieldName   string   `validate:"notblank,max=50"`
	Latitude    float64
	Longitude   float64
	FieldSize   float64  `validate:"gt=0"`
	FieldImage1 string   `validate:"omitempty,datauri"`
	FieldImage2 string   `validate:"omitempty,datauri"`
	StaffIDs    []string `validate:"min=1,dive,required"`
}

// FieldView pairs a field with the live state of its allocated staff.
type FieldView struct {
	Field domain.Field
	Staff []store.StaffRef
}

// FieldMarker locates a field on the map.
type FieldMarker struct {
	FieldCode string
	FieldName string
	Location  domain.Location
	FieldSize float64
}

func (in FieldInput) record(code string) domain.Field {
	return domain.Field{
		FieldCode:   code,
		FieldName:   in.FieldName,
		Location:    domain.Location{Latitude: in.Latitude, Longitude: in.Longitude},
		FieldSize:   in.FieldSize,
		FieldImage1: in.FieldImage1,
		FieldImage2: in.FieldImage2,
	}
}

func (s *FieldService) validate(in FieldInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	if s.imageMaxBytes <= 0 {
		return nil
	}
	images := []struct{ slot, data string }{
		{"FieldImage1", in.FieldImage1},
		{"FieldImage2", in.FieldImage2},
	}
	for _, img := range images {
		slot := img.slot
		if img.data == "" {
			continue
		}
		size, err := imagePayloadSize(img.data)
		if err != nil {
			return apperrors.NewValidationError("invalid input", map[string]any{slot: "base64"})
		}
		if size > s.imageMaxBytes {
			return apperrors.NewValidationError("image too large", map[string]any{slot: "max", "max_bytes": s.imageMaxBytes})
		}
	}
	return nil
}

// NewFieldView resolves every staff copy held by f against state.
func NewFieldView(state store.State, f domain.Field) FieldView {
	refs := make([]store.StaffRef, 0, len(f.Staffs))
	for _, st := range f.Staffs {
		refs = append(refs, store.ResolveStaff(state, st))
	}
	return FieldView{Field: f, Staff: refs}
}

// List returns all fields in insertion order.
func (s *FieldService) List(ctx context.Context) []FieldView {
	state := s.store.GetState()
	views := make([]FieldView, 0, len(state.Field))
	for _, f := range state.Field {
		views = append(views, NewFieldView(state, f))
	}
	return views
}

// Get fetches one field.
func (s *FieldService) Get(ctx context.Context, code string) (*FieldView, error) {
	state := s.store.GetState()
	f, ok := state.FindField(code)
	if !ok {
		return nil, apperrors.NewNotFound("field", code)
	}
	v := NewFieldView(state, f)
	return &v, nil
}

func fieldViewByCode(state store.State, code string) *FieldView {
	f, _ := state.FindField(code)
	v := NewFieldView(state, f)
	return &v
}

// Markers lists field locations for the map view.
func (s *FieldService) Markers(ctx context.Context) []FieldMarker {
	fields := s.store.GetState().Field
	markers := make([]FieldMarker, 0, len(fields))
	for _, f := range fields {
		markers = append(markers, FieldMarker{
			FieldCode: f.FieldCode,
			FieldName: f.FieldName,
			Location:  f.Location,
			FieldSize: f.FieldSize,
		})
	}
	return markers
}

// Create adds a field allocated to in.StaffIDs.
func (s *FieldService) Create(ctx context.Context, in FieldInput) (*FieldView, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	code := domain.NewFieldCode()
	state, err := s.store.Dispatch(store.AddField{Field: in.record(code), StaffIDs: in.StaffIDs})
	if err != nil {
		return nil, err
	}
	return fieldViewByCode(state, code), nil
}

// Update replaces a field's attributes and its whole staff set.
func (s *FieldService) Update(ctx context.Context, code string, in FieldInput) (*FieldView, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	state, err := s.store.Dispatch(store.UpdateField{Field: in.record(code), StaffIDs: in.StaffIDs})
	if err != nil {
		return nil, err
	}
	return fieldViewByCode(state, code), nil
}

// Delete removes a field.
func (s *FieldService) Delete(ctx context.Context, code string) error {
	_, err := s.store.Dispatch(store.RemoveField{FieldCode: code})
	return err
}
