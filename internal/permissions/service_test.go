package permissions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createPage(t *testing.T, db *gorm.DB, url string) models.Page {
	t.Helper()
	p := models.Page{PageName: url, PageURL: url}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestSaveInsertsAndUpdates(t *testing.T) {
	db := newTestDB(t)
	p := createPage(t, db, "/students")

	entries := []Entry{{RoleID: models.RoleAdmin, PageID: p.ID, Flags: Flags{CanCreate: true, CanRead: true}}}

	result, err := Save(db, entries, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
	assert.Empty(t, result.Failed)

	var row models.Permission
	require.NoError(t, db.Where("role_id = ? AND page_id = ?", models.RoleAdmin, p.ID).First(&row).Error)
	assert.True(t, row.CanCreate)
	assert.True(t, row.CanRead)
	assert.False(t, row.CanUpdate)
	assert.Equal(t, "admin@example.com", row.CreatedBy)

	// Second save with different flags updates in place
	entries[0].Flags = Flags{CanRead: true}
	_, err = Save(db, entries, "other@example.com")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, db.Where("role_id = ? AND page_id = ?", models.RoleAdmin, p.ID).First(&row).Error)
	assert.False(t, row.CanCreate)
	assert.True(t, row.CanRead)
	assert.Equal(t, "other@example.com", row.ModifyBy)
}

func TestSaveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	p1 := createPage(t, db, "/students")
	p2 := createPage(t, db, "/payments")

	entries := []Entry{
		{RoleID: models.RoleAdmin, PageID: p1.ID, Flags: Flags{CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true}},
		{RoleID: models.RoleRegistered, PageID: p2.ID, Flags: Flags{CanRead: true}},
	}

	_, err := Save(db, entries, "admin@example.com")
	require.NoError(t, err)
	first, err := FetchPermissions(db)
	require.NoError(t, err)

	_, err = Save(db, entries, "admin@example.com")
	require.NoError(t, err)
	second, err := FetchPermissions(db)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].RoleID, second[i].RoleID)
		assert.Equal(t, first[i].PageID, second[i].PageID)
		assert.Equal(t, first[i].CanCreate, second[i].CanCreate)
		assert.Equal(t, first[i].CanRead, second[i].CanRead)
		assert.Equal(t, first[i].CanUpdate, second[i].CanUpdate)
		assert.Equal(t, first[i].CanDelete, second[i].CanDelete)
	}
}

func TestLoadBuildsResolvableSnapshot(t *testing.T) {
	db := newTestDB(t)
	p := createPage(t, db, "/handover")

	_, err := Save(db, []Entry{{RoleID: models.RoleAdmin, PageID: p.ID, Flags: Flags{CanCreate: true}}}, "admin@example.com")
	require.NoError(t, err)

	m, err := Load(db)
	require.NoError(t, err)

	d := m.Resolve(models.RoleAdmin, "/handover")
	assert.True(t, d.Allowed)
	assert.True(t, d.CanCreate)
	assert.False(t, m.Resolve(models.RoleRegistered, "/handover").Allowed)
}
