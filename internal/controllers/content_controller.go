package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/storage"
)

func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Header.Get("Content-Type"), nil
}

func deleteBlob(c *gin.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := storage.Blob.Delete(c.Request.Context(), publicID); err != nil {
		logrus.WithError(err).WithField("public_id", publicID).Warn("could not delete blob")
	}
}

// CreateBanner uploads a banner image into a position slot. A taken position
// is reported as a conflict carrying the blocking banner's id: the client
// confirms, deletes that banner, and retries. Never an automatic overwrite.
func CreateBanner(c *gin.Context) {
	position, err := strconv.Atoi(c.PostForm("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position must be a number"})
		return
	}

	var existing models.Banner
	err = config.DB.Where("position = ?", position).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "position already taken",
			"conflict_id": existing.ID,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	data, contentType, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	blob, err := storage.Blob.Upload(c.Request.Context(), data, "banners", contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	banner := models.Banner{
		Title:     c.PostForm("title"),
		ImageURL:  blob.URL,
		PublicID:  blob.PublicID,
		Position:  position,
		Active:    true,
		CreatedBy: actor,
	}
	if err := config.DB.Create(&banner).Error; err != nil {
		deleteBlob(c, blob.PublicID)
		// A concurrent create can slip past the pre-check; report it the
		// same way, with the winning banner's id.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			resp := gin.H{"error": "position already taken"}
			if config.DB.Where("position = ?", position).First(&existing).Error == nil {
				resp["conflict_id"] = existing.ID
			}
			c.JSON(http.StatusConflict, resp)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create banner"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"banner": banner})
}

// ListBanners lists all banners ordered by position.
func ListBanners(c *gin.Context) {
	var banners []models.Banner
	if err := config.DB.Order("position").Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch banners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": banners})
}

// DeleteBanner removes a banner and its stored image. The delete is
// unscoped: position is uniquely indexed, and the slot must free up
// immediately for the delete-then-retry flow.
func DeleteBanner(c *gin.Context) {
	id := c.Param("id")
	var banner models.Banner
	if err := config.DB.First(&banner, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
		return
	}
	if err := config.DB.Unscoped().Delete(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete banner"})
		return
	}
	deleteBlob(c, banner.PublicID)
	c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
}

// CreateGalleryItem uploads an image into the gallery.
func CreateGalleryItem(c *gin.Context) {
	data, contentType, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	blob, err := storage.Blob.Upload(c.Request.Context(), data, "gallery", contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	item := models.Gallery{
		Title:     c.PostForm("title"),
		ImageURL:  blob.URL,
		PublicID:  blob.PublicID,
		CreatedBy: actor,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		deleteBlob(c, blob.PublicID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create gallery item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gallery": item})
}

// ListGallery lists gallery items, newest first.
func ListGallery(c *gin.Context) {
	var items []models.Gallery
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// DeleteGalleryItem removes a gallery item and its stored image.
func DeleteGalleryItem(c *gin.Context) {
	id := c.Param("id")
	var item models.Gallery
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete gallery item"})
		return
	}
	deleteBlob(c, item.PublicID)
	c.JSON(http.StatusOK, gin.H{"message": "gallery item deleted"})
}

// CreateFaculty uploads a faculty profile with photo.
func CreateFaculty(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	faculty := models.Faculty{
		Name:        name,
		Designation: c.PostForm("designation"),
	}
	if data, contentType, err := readUpload(c, "photo"); err == nil {
		blob, err := storage.Blob.Upload(c.Request.Context(), data, "faculty", contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		faculty.PhotoURL = blob.URL
		faculty.PublicID = blob.PublicID
	}
	actor, _ := middleware.CurrentEmail(c)
	faculty.CreatedBy = actor

	if err := config.DB.Create(&faculty).Error; err != nil {
		deleteBlob(c, faculty.PublicID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create faculty"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"faculty": faculty})
}

// ListFaculty lists faculty profiles.
func ListFaculty(c *gin.Context) {
	var faculty []models.Faculty
	if err := config.DB.Find(&faculty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch faculty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": faculty})
}

// DeleteFaculty removes a faculty profile and its photo.
func DeleteFaculty(c *gin.Context) {
	id := c.Param("id")
	var faculty models.Faculty
	if err := config.DB.First(&faculty, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty not found"})
		return
	}
	if err := config.DB.Delete(&faculty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete faculty"})
		return
	}
	deleteBlob(c, faculty.PublicID)
	c.JSON(http.StatusOK, gin.H{"message": "faculty deleted"})
}

// CreateNotification publishes a notification.
func CreateNotification(c *gin.Context) {
	var input models.Notification
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, _ := middleware.CurrentEmail(c)
	input.CreatedBy = actor
	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create notification"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notification": input})
}

// ListNotifications lists notifications, newest first.
func ListNotifications(c *gin.Context) {
	var items []models.Notification
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// DeleteNotification removes a notification.
func DeleteNotification(c *gin.Context) {
	id := c.Param("id")
	if err := config.DB.Delete(&models.Notification{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

// CreateLatestPost publishes a post.
func CreateLatestPost(c *gin.Context) {
	var input models.LatestPost
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, _ := middleware.CurrentEmail(c)
	input.CreatedBy = actor
	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": input})
}

// ListLatestPosts lists posts, newest first.
func ListLatestPosts(c *gin.Context) {
	var items []models.LatestPost
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// DeleteLatestPost removes a post.
func DeleteLatestPost(c *gin.Context) {
	id := c.Param("id")
	if err := config.DB.Delete(&models.LatestPost{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
