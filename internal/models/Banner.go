package models

import "gorm.io/gorm"

// Banner is a homepage banner slot. Position is unique; a collision is
// surfaced to the caller as a conflict, never overwritten automatically.
type Banner struct {
	gorm.Model
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	PublicID string `json:"public_id"`
	Position int    `json:"position" gorm:"uniqueIndex"`
	Active   bool   `json:"active" gorm:"default:true"`

	CreatedBy string `json:"created_by"`
}
