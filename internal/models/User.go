package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash, never serialized
	MobileNo string `json:"mobile_no"`
	RoleID   uint   `json:"role_id" gorm:"index;not null"`

	CreatedBy string `json:"created_by"`
	ModifyBy  string `json:"modify_by"`

	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}
