package permissions

import "fmt"

// Action names accepted by a draft edit. These mirror the matrix editor's
// column headers plus the two bulk operations.
const (
	ActionAdd       = "Add"
	ActionView      = "View"
	ActionEdit      = "Edit"
	ActionDelete    = "Delete"
	ActionSelectAll = "selectall"
	ActionDeselect  = "deselect"
)

// Entry is one staged (role, page) flag set ready to be persisted.
type Entry struct {
	RoleID uint  `json:"role_id" binding:"required"`
	PageID uint  `json:"page_id" binding:"required"`
	Flags  Flags `json:"flags"`
}

// Draft holds an administrator's in-progress matrix edits. Nothing touches
// the database until the staged entries are saved; only touched keys are
// written.
type Draft struct {
	staged map[matrixKey]Flags
}

func NewDraft() *Draft {
	return &Draft{staged: make(map[matrixKey]Flags)}
}

// Stage applies one edit command to the draft. Bulk actions set or clear all
// four flags; a named action toggles that single flag.
func (d *Draft) Stage(roleID, pageID uint, action string) error {
	key := matrixKey{RoleID: roleID, PageID: pageID}
	flags := d.staged[key]

	switch action {
	case ActionSelectAll:
		flags = Flags{CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true}
	case ActionDeselect:
		flags = Flags{}
	case ActionAdd:
		flags.CanCreate = !flags.CanCreate
	case ActionView:
		flags.CanRead = !flags.CanRead
	case ActionEdit:
		flags.CanUpdate = !flags.CanUpdate
	case ActionDelete:
		flags.CanDelete = !flags.CanDelete
	default:
		return fmt.Errorf("unknown permission action %q", action)
	}

	d.staged[key] = flags
	return nil
}

// Entries returns the touched keys in persistable form.
func (d *Draft) Entries() []Entry {
	entries := make([]Entry, 0, len(d.staged))
	for key, flags := range d.staged {
		entries = append(entries, Entry{RoleID: key.RoleID, PageID: key.PageID, Flags: flags})
	}
	return entries
}
