package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/models"
)

type createUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	MobileNo string `json:"mobile_no"`
	RoleID   uint   `json:"role_id" binding:"required"`
}

// CreateUser registers a back-office account with a hashed password.
func CreateUser(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hash),
		MobileNo:  input.MobileNo,
		RoleID:    input.RoleID,
		CreatedBy: actor,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListUsers returns every account with its role.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Role").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GetUser retrieves one account by id.
func GetUser(c *gin.Context) {
	id := c.Param("id")
	var user models.User
	if err := config.DB.Preload("Role").First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser modifies an account. When the session user changes their own
// email the response carries force_relogin so the client invalidates the
// session instead of continuing under a stale identity.
func UpdateUser(c *gin.Context) {
	id := c.Param("id")
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	originalEmail := user.Email

	var input struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		MobileNo *string `json:"mobile_no"`
		RoleID   *uint   `json:"role_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.MobileNo != nil {
		user.MobileNo = *input.MobileNo
	}
	if input.RoleID != nil {
		user.RoleID = *input.RoleID
	}
	actor, _ := middleware.CurrentEmail(c)
	user.ModifyBy = actor

	if err := config.DB.Save(&user).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
		return
	}

	sessionEmail, _ := middleware.CurrentEmail(c)
	forceRelogin := user.Email != originalEmail && originalEmail == sessionEmail

	c.JSON(http.StatusOK, gin.H{"user": user, "force_relogin": forceRelogin})
}

// DeleteUser removes an account. Unscoped so the email, which is uniquely
// indexed, can be registered again.
func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := config.DB.Unscoped().Delete(&models.User{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// ListRoles returns the fixed role set.
func ListRoles(c *gin.Context) {
	var roles []models.Role
	if err := config.DB.Order("id").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": roles})
}
