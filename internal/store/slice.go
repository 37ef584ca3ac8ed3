package store

import (
	"github.com/fieldops/farm-admin/internal/domain"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

// Slice is the reducer for one ordered entity collection keyed by an
// identifier. Every operation returns a new backing array and never writes to
// the one it was given, so earlier state snapshots stay valid.
type Slice[T any] struct {
	Resource string
	Key      func(T) string
}

// Find returns the record with the given identifier.
func (s Slice[T]) Find(items []T, id string) (T, bool) {
	if i := s.indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Add appends rec to the end of the collection.
func (s Slice[T]) Add(items []T, rec T) ([]T, error) {
	id := s.Key(rec)
	if id == "" {
		return nil, apperrors.NewValidationError(s.Resource+" identifier required", nil)
	}
	if s.indexOf(items, id) >= 0 {
		return nil, apperrors.NewDuplicateIdentifier(s.Resource, id)
	}
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, rec), nil
}

// Update replaces the record sharing rec's identifier at its current position.
func (s Slice[T]) Update(items []T, rec T) ([]T, error) {
	id := s.Key(rec)
	i := s.indexOf(items, id)
	if i < 0 {
		return nil, apperrors.NewNotFound(s.Resource, id)
	}
	next := make([]T, len(items))
	copy(next, items)
	next[i] = rec
	return next, nil
}

// Remove drops the record with the given identifier, keeping the relative
// order of the rest.
func (s Slice[T]) Remove(items []T, id string) ([]T, error) {
	i := s.indexOf(items, id)
	if i < 0 {
		return nil, apperrors.NewNotFound(s.Resource, id)
	}
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:i]...)
	return append(next, items[i+1:]...), nil
}

func (s Slice[T]) indexOf(items []T, id string) int {
	for i := range items {
		if s.Key(items[i]) == id {
			return i
		}
	}
	return -1
}

var (
	staffSlice = Slice[domain.Staff]{
		Resource: "staff",
		Key:      func(s domain.Staff) string { return s.StaffID },
	}
	vehicleSlice = Slice[domain.Vehicle]{
		Resource: "vehicle",
		Key:      func(v domain.Vehicle) string { return v.Code },
	}
	fieldSlice = Slice[domain.Field]{
		Resource: "field",
		Key:      func(f domain.Field) string { return f.FieldCode },
	}
)
