package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	Title  string `json:"title"`
	Body   string `json:"body"`
	Active bool   `json:"active" gorm:"default:true"`

	CreatedBy string `json:"created_by"`
}

type LatestPost struct {
	gorm.Model
	Title   string `json:"title"`
	Body    string `json:"body"`
	LinkURL string `json:"link_url"`
	Active  bool   `json:"active" gorm:"default:true"`

	CreatedBy string `json:"created_by"`
}
