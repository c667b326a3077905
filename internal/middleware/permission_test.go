package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/permissions"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func guardedRouter(pageURL string, cap Capability) *gin.Engine {
	r := gin.New()
	r.POST("/target", RequireAuth(), RequirePermission(pageURL, cap), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/target", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func grantPage(t *testing.T, url string, roleID uint, flags permissions.Flags) {
	t.Helper()
	page := models.Page{PageName: url, PageURL: url}
	require.NoError(t, config.DB.Create(&page).Error)
	_, err := permissions.Save(config.DB, []permissions.Entry{{RoleID: roleID, PageID: page.ID, Flags: flags}}, "test")
	require.NoError(t, err)
}

func TestRequirePermissionDeniesWithoutMatrixRow(t *testing.T) {
	setupTestDB(t)
	r := guardedRouter("/students", CapCreate)

	token, err := GenerateToken(1, "staff@example.com", models.RoleRegistered)
	require.NoError(t, err)

	rec := do(r, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermissionGrantsMatchingFlag(t *testing.T) {
	setupTestDB(t)
	grantPage(t, "/students", models.RoleRegistered, permissions.Flags{CanCreate: true})
	r := guardedRouter("/students", CapCreate)

	token, err := GenerateToken(1, "staff@example.com", models.RoleRegistered)
	require.NoError(t, err)

	rec := do(r, token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRequirePermissionChecksSpecificCapability(t *testing.T) {
	setupTestDB(t)
	grantPage(t, "/students", models.RoleRegistered, permissions.Flags{CanRead: true})
	r := guardedRouter("/students", CapCreate)

	token, err := GenerateToken(1, "staff@example.com", models.RoleRegistered)
	require.NoError(t, err)

	rec := do(r, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermissionAdministratorBypass(t *testing.T) {
	setupTestDB(t)
	r := guardedRouter("/not-even-registered", CapDelete)

	token, err := GenerateToken(1, "root@example.com", models.RoleAdministrator)
	require.NoError(t, err)

	rec := do(r, token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRequirePermissionRequiresAuth(t *testing.T) {
	setupTestDB(t)
	r := guardedRouter("/students", CapCreate)

	rec := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
