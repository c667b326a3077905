package models

import "gorm.io/gorm"

type Faculty struct {
	gorm.Model
	Name        string `json:"name"`
	Designation string `json:"designation"`
	PhotoURL    string `json:"photo_url"`
	PublicID    string `json:"public_id"`

	CreatedBy string `json:"created_by"`
}
