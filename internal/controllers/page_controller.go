package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/permissions"
)

// CreatePage registers a frontend route for permission gating. A bare
// segment is stored with its leading slash so matrix lookups match exactly.
func CreatePage(c *gin.Context) {
	var input struct {
		PageName string `json:"page_name" binding:"required"`
		PageURL  string `json:"page_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	page := models.Page{
		PageName:  strings.TrimSpace(input.PageName),
		PageURL:   permissions.NormalizePath(strings.TrimSpace(input.PageURL)),
		CreatedBy: actor,
	}
	if err := config.DB.Create(&page).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "page url already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create page: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// UpdatePage modifies a page's name or url.
func UpdatePage(c *gin.Context) {
	id := c.Param("id")
	var page models.Page
	if err := config.DB.First(&page, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	var input struct {
		PageName *string `json:"page_name"`
		PageURL  *string `json:"page_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PageName != nil {
		page.PageName = *input.PageName
	}
	if input.PageURL != nil {
		page.PageURL = permissions.NormalizePath(strings.TrimSpace(*input.PageURL))
	}

	if err := config.DB.Save(&page).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "page url already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage removes a page together with the permission rows referencing
// it, in one transaction. Leaving orphaned permission rows behind would be
// harmless for resolution but pollutes the matrix editor. Both deletes are
// unscoped: PageURL and (role_id, page_id) are uniquely indexed, and a
// deleted page must be re-registrable under the same url.
func DeletePage(c *gin.Context) {
	id := c.Param("id")
	var page models.Page
	if err := config.DB.First(&page, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("page_id = ?", page.ID).Delete(&models.Permission{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&page).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page deleted"})
}
