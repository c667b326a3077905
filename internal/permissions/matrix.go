package permissions

import (
	"strings"

	"gorm.io/gorm"

	"edu_backoffice/internal/models"
)

// DashboardPath is always granted to any logged-in user, regardless of the
// matrix.
const DashboardPath = "/"

// Flags is the capability set a permission row grants on a page.
type Flags struct {
	CanCreate bool `json:"can_create"`
	CanRead   bool `json:"can_read"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}

func (f Flags) any() bool {
	return f.CanCreate || f.CanRead || f.CanUpdate || f.CanDelete
}

// Decision is the outcome of resolving (role, path) against a matrix
// snapshot. Allowed covers page entry; the flags gate individual actions.
type Decision struct {
	Allowed bool
	Flags
}

type matrixKey struct {
	RoleID uint
	PageID uint
}

// Matrix is an immutable snapshot of the page registry and permission table.
// Resolution against a snapshot is a pure function: same inputs, same
// outcome. An empty snapshot denies everything for non-Administrator roles.
type Matrix struct {
	pagesByURL map[string]uint
	perms      map[matrixKey]Flags
}

// NewMatrix builds a snapshot from page and permission rows.
func NewMatrix(pages []models.Page, perms []models.Permission) *Matrix {
	m := &Matrix{
		pagesByURL: make(map[string]uint, len(pages)),
		perms:      make(map[matrixKey]Flags, len(perms)),
	}
	for _, p := range pages {
		m.pagesByURL[p.PageURL] = p.ID
	}
	for _, p := range perms {
		m.perms[matrixKey{RoleID: p.RoleID, PageID: p.PageID}] = Flags{
			CanCreate: p.CanCreate,
			CanRead:   p.CanRead,
			CanUpdate: p.CanUpdate,
			CanDelete: p.CanDelete,
		}
	}
	return m
}

// Load fetches the full page registry and permission matrix into a snapshot.
func Load(db *gorm.DB) (*Matrix, error) {
	pages, err := FetchPages(db)
	if err != nil {
		return nil, err
	}
	perms, err := FetchPermissions(db)
	if err != nil {
		return nil, err
	}
	return NewMatrix(pages, perms), nil
}

// Resolve computes the grant decision for a role navigating to path.
//
// Order matters: the dashboard is open to any logged-in user, the
// Administrator role bypasses the matrix entirely, and everything else is
// denied unless an exactly-matching page has a permission row with at least
// one flag set. Missing data denies (fail-closed).
func (m *Matrix) Resolve(roleID uint, path string) Decision {
	if NormalizePath(path) == DashboardPath {
		return Decision{Allowed: true}
	}
	if roleID == models.RoleAdministrator {
		return Decision{
			Allowed: true,
			Flags:   Flags{CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true},
		}
	}

	pageID, ok := m.pagesByURL[NormalizePath(path)]
	if !ok {
		return Decision{}
	}
	flags, ok := m.perms[matrixKey{RoleID: roleID, PageID: pageID}]
	if !ok || !flags.any() {
		return Decision{}
	}
	return Decision{Allowed: true, Flags: flags}
}

// NormalizePath prefixes bare route segments with a leading slash so lookups
// match Page.PageURL exactly.
func NormalizePath(path string) string {
	if path == "" {
		return DashboardPath
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
