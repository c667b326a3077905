package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Student struct {
	gorm.Model
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	MobileNo   string `json:"mobile_no"`
	RollNumber string `json:"roll_number" gorm:"uniqueIndex"`
	Address    string `json:"address"`

	CreatedBy string `json:"created_by"`
	ModifyBy  string `json:"modify_by"`

	AcademicDetails []StudentAcademicDetail `gorm:"foreignKey:StudentID" json:"academic_details,omitempty"`
	Documents       []StudentDocument       `gorm:"foreignKey:StudentID" json:"documents,omitempty"`
}

// StudentAcademicDetail records one course enrolment for a student.
type StudentAcademicDetail struct {
	gorm.Model
	StudentID   uint            `json:"student_id" gorm:"index;not null"`
	CourseName  string          `json:"course_name"`
	CollegeName string          `json:"college_name"`
	CourseYear  string          `json:"course_year"`
	SessionYear string          `json:"session_year"`
	TotalFees   decimal.Decimal `json:"total_fees" gorm:"type:decimal(12,2);default:0"`

	EMIDetails []EMIDetail `gorm:"foreignKey:AcademicID" json:"emi_details,omitempty"`
}

// EMIDetail is one scheduled fee instalment against an academic record.
type EMIDetail struct {
	gorm.Model
	StudentID  uint            `json:"student_id" gorm:"index;not null"`
	AcademicID uint            `json:"academic_id" gorm:"index;not null"`
	EMIAmount  decimal.Decimal `json:"emi_amount" gorm:"type:decimal(12,2);not null"`
	DueDate    time.Time       `json:"due_date"`
	Paid       bool            `json:"paid" gorm:"default:false"`
}

// StudentDocument is an uploaded file attached to a student record.
// PublicID is the blob-store key used when deleting the object.
type StudentDocument struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	Name      string `json:"name"`
	FileURL   string `json:"file_url"`
	PublicID  string `json:"public_id"`
}
