package permissions

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"edu_backoffice/internal/models"
)

// FetchPages returns the full page registry, unfiltered.
func FetchPages(db *gorm.DB) ([]models.Page, error) {
	var pages []models.Page
	if err := db.Order("id").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// FetchPermissions returns the full permission matrix. No per-role filtering
// is applied: the matrix is small and a capability, not a credential, so
// every authenticated client gets the whole thing once per session.
func FetchPermissions(db *gorm.DB) ([]models.Permission, error) {
	var perms []models.Permission
	if err := db.Order("id").Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

// SaveResult reports the outcome of a batch save. Failed keys carry the
// first error encountered for that key; other keys may still have been
// written.
type SaveResult struct {
	Saved  int            `json:"saved"`
	Failed map[string]any `json:"failed,omitempty"`
}

// Save upserts one permission row per staged entry. Each key is written in
// its own transaction so a single flag set is never observed half-updated;
// unrelated keys may succeed independently. Saving the same entries twice
// leaves the matrix unchanged.
func Save(db *gorm.DB, entries []Entry, actor string) (SaveResult, error) {
	result := SaveResult{}
	for _, entry := range entries {
		if err := saveOne(db, entry, actor); err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]any)
			}
			result.Failed[keyString(entry)] = err.Error()
			continue
		}
		result.Saved++
	}
	return result, nil
}

func saveOne(db *gorm.DB, entry Entry, actor string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Permission
		err := tx.Where("role_id = ? AND page_id = ?", entry.RoleID, entry.PageID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.CanCreate = entry.Flags.CanCreate
			existing.CanRead = entry.Flags.CanRead
			existing.CanUpdate = entry.Flags.CanUpdate
			existing.CanDelete = entry.Flags.CanDelete
			existing.ModifyBy = actor
			return tx.Save(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			perm := models.Permission{
				RoleID:    entry.RoleID,
				PageID:    entry.PageID,
				CanCreate: entry.Flags.CanCreate,
				CanRead:   entry.Flags.CanRead,
				CanUpdate: entry.Flags.CanUpdate,
				CanDelete: entry.Flags.CanDelete,
				CreatedBy: actor,
			}
			return tx.Create(&perm).Error
		default:
			return err
		}
	})
}

func keyString(entry Entry) string {
	return fmt.Sprintf("%d:%d", entry.RoleID, entry.PageID)
}
