package models

import (
	"gorm.io/gorm"
)

// Permission is the central authorization fact: "can role R perform action A
// on page P". Uniquely keyed on (RoleID, PageID); upserted as a batch when an
// administrator edits the matrix.
type Permission struct {
	gorm.Model
	RoleID uint `json:"role_id" gorm:"uniqueIndex:idx_role_page;not null"`
	PageID uint `json:"page_id" gorm:"uniqueIndex:idx_role_page;not null"`

	CanCreate bool `json:"can_create"`
	CanRead   bool `json:"can_read"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`

	CreatedBy string `json:"created_by"`
	ModifyBy  string `json:"modify_by"`

	Role Role `gorm:"foreignKey:RoleID" json:"-"`
	Page Page `gorm:"foreignKey:PageID" json:"-"`
}
