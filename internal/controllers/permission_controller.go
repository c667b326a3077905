package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/permissions"
)

// ListPages returns the full page registry. Fetched once per session by the
// client alongside the matrix.
func ListPages(c *gin.Context) {
	pages, err := permissions.FetchPages(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch pages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pages})
}

// ListPermissions ships the entire permission matrix to the authenticated
// client. The matrix is small (pages x roles) and structurally non-secret,
// so no per-role filtering happens here.
func ListPermissions(c *gin.Context) {
	perms, err := permissions.FetchPermissions(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch permissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": perms})
}

// SavePermissions upserts the staged matrix edits. Each (role, page) key is
// written atomically; keys that fail are reported back without blocking the
// rest of the batch.
func SavePermissions(c *gin.Context) {
	var body struct {
		Entries []permissions.Entry `json:"entries" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	result, err := permissions.Save(config.DB, body.Entries, actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save permissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
