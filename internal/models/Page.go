package models

import (
	"gorm.io/gorm"
)

// Page represents a navigable frontend route subject to permission gating.
// PageURL always carries a leading slash; resolution is by exact match.
type Page struct {
	gorm.Model
	PageName  string `json:"page_name" binding:"required"`
	PageURL   string `json:"page_url" gorm:"uniqueIndex;not null" binding:"required"`
	CreatedBy string `json:"created_by"`
}
