package store

import (
	"github.com/fieldops/farm-admin/internal/domain"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

// resolveStaff copies the staff record with the given identifier out of the
// staff collection.
func resolveStaff(staff []domain.Staff, id string) (domain.Staff, error) {
	rec, ok := staffSlice.Find(staff, id)
	if !ok {
		return domain.Staff{}, apperrors.NewReferenceNotFound("staff", id)
	}
	return rec, nil
}

// resolveStaffSet resolves every identifier, collapsing duplicates and keeping
// first-occurrence order. At least one identifier is required.
func resolveStaffSet(staff []domain.Staff, ids []string) ([]domain.Staff, error) {
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("at least one staff member required", nil)
	}
	seen := make(map[string]struct{}, len(ids))
	resolved := make([]domain.Staff, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rec, err := resolveStaff(staff, id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rec)
	}
	return resolved, nil
}

// StaffRef pairs an embedded staff snapshot with the live record it was
// copied from.
type StaffRef struct {
	Snapshot domain.Staff
	Current  domain.Staff
	// Missing is set when the staff record has since been removed.
	Missing bool
	// Stale is set when the live record differs from the snapshot.
	Stale bool
}

// ResolveStaff looks up the live record behind an embedded staff snapshot.
func ResolveStaff(state State, snapshot domain.Staff) StaffRef {
	current, ok := state.FindStaff(snapshot.StaffID)
	if !ok {
		return StaffRef{Snapshot: snapshot, Missing: true, Stale: true}
	}
	return StaffRef{Snapshot: snapshot, Current: current, Stale: !current.Equal(snapshot)}
}
