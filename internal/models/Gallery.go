package models

import "gorm.io/gorm"

type Gallery struct {
	gorm.Model
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	PublicID string `json:"public_id"`

	CreatedBy string `json:"created_by"`
}
