package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edu_backoffice/internal/models"
)

func page(id uint, url string) models.Page {
	p := models.Page{PageURL: url, PageName: url}
	p.ID = id
	return p
}

func perm(roleID, pageID uint, flags Flags) models.Permission {
	return models.Permission{
		RoleID:    roleID,
		PageID:    pageID,
		CanCreate: flags.CanCreate,
		CanRead:   flags.CanRead,
		CanUpdate: flags.CanUpdate,
		CanDelete: flags.CanDelete,
	}
}

func TestResolveGrantsDashboardToEveryone(t *testing.T) {
	m := NewMatrix(nil, nil)

	for _, role := range []uint{models.RoleAdministrator, models.RoleAdmin, models.RoleRegistered, 99} {
		d := m.Resolve(role, "/")
		assert.True(t, d.Allowed, "role %d should reach the dashboard", role)
	}
}

func TestResolveAdministratorBypassesMatrix(t *testing.T) {
	m := NewMatrix(nil, nil)

	d := m.Resolve(models.RoleAdministrator, "/anything-not-registered")
	assert.True(t, d.Allowed)
	assert.True(t, d.CanCreate)
	assert.True(t, d.CanRead)
	assert.True(t, d.CanUpdate)
	assert.True(t, d.CanDelete)
}

func TestResolveDeniesUnknownPage(t *testing.T) {
	m := NewMatrix(
		[]models.Page{page(7, "/addbanner")},
		[]models.Permission{perm(models.RoleAdmin, 7, Flags{CanRead: true})},
	)

	d := m.Resolve(models.RoleAdmin, "/not-a-page")
	assert.False(t, d.Allowed)
}

func TestResolveDeniesWithoutPermissionRow(t *testing.T) {
	m := NewMatrix([]models.Page{page(7, "/addbanner")}, nil)

	d := m.Resolve(models.RoleRegistered, "/addbanner")
	assert.False(t, d.Allowed)
}

func TestResolveDeniesAllFalseRow(t *testing.T) {
	m := NewMatrix(
		[]models.Page{page(7, "/addbanner")},
		[]models.Permission{perm(models.RoleRegistered, 7, Flags{})},
	)

	d := m.Resolve(models.RoleRegistered, "/addbanner")
	assert.False(t, d.Allowed)
}

func TestResolveGrantsRowFlags(t *testing.T) {
	m := NewMatrix(
		[]models.Page{page(7, "/addbanner")},
		[]models.Permission{perm(models.RoleAdmin, 7, Flags{CanRead: true, CanUpdate: true})},
	)

	d := m.Resolve(models.RoleAdmin, "/addbanner")
	assert.True(t, d.Allowed)
	assert.False(t, d.CanCreate)
	assert.True(t, d.CanRead)
	assert.True(t, d.CanUpdate)
	assert.False(t, d.CanDelete)
}

func TestResolveNormalizesBareSegments(t *testing.T) {
	m := NewMatrix(
		[]models.Page{page(7, "/addbanner")},
		[]models.Permission{perm(models.RoleAdmin, 7, Flags{CanRead: true})},
	)

	assert.True(t, m.Resolve(models.RoleAdmin, "addbanner").Allowed)
}

func TestResolveIsDeterministic(t *testing.T) {
	m := NewMatrix(
		[]models.Page{page(1, "/students"), page(2, "/payments")},
		[]models.Permission{
			perm(models.RoleAdmin, 1, Flags{CanCreate: true, CanRead: true}),
			perm(models.RoleRegistered, 2, Flags{CanRead: true}),
		},
	)

	for i := 0; i < 10; i++ {
		assert.Equal(t, m.Resolve(models.RoleAdmin, "/students"), m.Resolve(models.RoleAdmin, "/students"))
		assert.Equal(t, m.Resolve(models.RoleRegistered, "/students"), m.Resolve(models.RoleRegistered, "/students"))
	}
}

func TestEmptyMatrixFailsClosed(t *testing.T) {
	m := NewMatrix(nil, nil)

	for _, path := range []string{"/students", "/payments", "/anything"} {
		assert.False(t, m.Resolve(models.RoleAdmin, path).Allowed, "path %s", path)
		assert.False(t, m.Resolve(models.RoleRegistered, path).Allowed, "path %s", path)
	}
}
