package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	CourseName   string `json:"courseName"`
	Description  string `json:"description"`
	Price        uint   `json:"price"`
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`

	StudentsEnrolled datatypes.JSONSlice[uint] `json:"studentsEnrolled"`

	IsDeleted bool `gorm:"default:false"`
}
