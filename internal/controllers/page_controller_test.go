package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/permissions"
)

func pageRouter() *gin.Engine {
	r := gin.New()
	r.POST("/pages", CreatePage)
	r.DELETE("/pages/:id", DeletePage)
	return r
}

func TestDeletedPageURLCanBeRegisteredAgain(t *testing.T) {
	setupTestDB(t)
	r := pageRouter()

	rec := jsonRequest(t, r, http.MethodPost, "/pages",
		gin.H{"page_name": "Banners", "page_url": "/addbanner"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var page models.Page
	require.NoError(t, config.DB.Where("page_url = ?", "/addbanner").First(&page).Error)

	_, err := permissions.Save(config.DB,
		[]permissions.Entry{{RoleID: models.RoleAdmin, PageID: page.ID, Flags: permissions.Flags{CanRead: true}}},
		"admin@example.com")
	require.NoError(t, err)

	rec = jsonRequest(t, r, http.MethodDelete, "/pages/"+itoa(page.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Permission rows went with the page, tombstones included
	var permCount int64
	require.NoError(t, config.DB.Unscoped().Model(&models.Permission{}).
		Where("page_id = ?", page.ID).Count(&permCount).Error)
	assert.Zero(t, permCount)

	// The url is free for a fresh registration
	rec = jsonRequest(t, r, http.MethodPost, "/pages",
		gin.H{"page_name": "Banners", "page_url": "/addbanner"}, "")
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
