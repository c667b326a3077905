package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/storage"
)

// CreateStudent registers a student record.
func CreateStudent(c *gin.Context) {
	var input models.Student
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, _ := middleware.CurrentEmail(c)
	input.CreatedBy = actor

	if err := config.DB.Create(&input).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "roll number already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create student: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": input})
}

// GetStudent retrieves a student with academic details and documents.
func GetStudent(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := config.DB.
		Preload("AcademicDetails").
		Preload("AcademicDetails.EMIDetails").
		Preload("Documents").
		First(&student, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// ListStudents lists all students.
func ListStudents(c *gin.Context) {
	var students []models.Student
	if err := config.DB.Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch students"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": students})
}

// UpdateStudent modifies a student record.
func UpdateStudent(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := config.DB.First(&student, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	var input struct {
		Name       *string `json:"name"`
		Email      *string `json:"email"`
		MobileNo   *string `json:"mobile_no"`
		RollNumber *string `json:"roll_number"`
		Address    *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		student.Name = *input.Name
	}
	if input.Email != nil {
		student.Email = *input.Email
	}
	if input.MobileNo != nil {
		student.MobileNo = *input.MobileNo
	}
	if input.RollNumber != nil {
		student.RollNumber = *input.RollNumber
	}
	if input.Address != nil {
		student.Address = *input.Address
	}
	actor, _ := middleware.CurrentEmail(c)
	student.ModifyBy = actor

	if err := config.DB.Save(&student).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "roll number already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update student"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// DeleteStudent removes a student and its dependent rows (documents, EMI
// details, academic details) in one transaction. Students with recorded
// payments cannot be deleted: financial history must stay reconstructable.
func DeleteStudent(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := config.DB.Preload("Documents").First(&student, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	var paymentCount int64
	if err := config.DB.Model(&models.StudentPayment{}).
		Where("student_id = ?", student.ID).Count(&paymentCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check payment history"})
		return
	}
	if paymentCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "student has recorded payments and cannot be deleted"})
		return
	}

	// Unscoped throughout: the roll number is uniquely indexed and must be
	// reusable after the student is gone.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("student_id = ?", student.ID).Delete(&models.StudentDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("student_id = ?", student.ID).Delete(&models.EMIDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("student_id = ?", student.ID).Delete(&models.StudentAcademicDetail{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&student).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete student"})
		return
	}

	// Blob cleanup is best-effort; the rows are already gone.
	for _, doc := range student.Documents {
		if doc.PublicID == "" {
			continue
		}
		if err := storage.Blob.Delete(c.Request.Context(), doc.PublicID); err != nil {
			logrus.WithError(err).WithField("public_id", doc.PublicID).Warn("could not delete document blob")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}

// AddAcademicDetail attaches a course enrolment to a student.
func AddAcademicDetail(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := config.DB.First(&student, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	var input models.StudentAcademicDetail
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.StudentID = student.ID

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create academic detail"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"academic_detail": input})
}

// AddEMIDetail schedules a fee instalment against an academic record.
func AddEMIDetail(c *gin.Context) {
	var input models.EMIDetail
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.EMIAmount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emi_amount must be greater than zero"})
		return
	}

	var academic models.StudentAcademicDetail
	if err := config.DB.First(&academic, input.AcademicID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "academic detail not found"})
		return
	}
	input.StudentID = academic.StudentID

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create emi detail"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"emi_detail": input})
}

// UploadStudentDocument stores an uploaded file and attaches it to the
// student.
func UploadStudentDocument(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := config.DB.First(&student, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}

	blob, err := storage.Blob.Upload(c.Request.Context(), data, "documents", fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	doc := models.StudentDocument{
		StudentID: student.ID,
		Name:      c.PostForm("name"),
		FileURL:   blob.URL,
		PublicID:  blob.PublicID,
	}
	if doc.Name == "" {
		doc.Name = fileHeader.Filename
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save document"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": doc})
}
