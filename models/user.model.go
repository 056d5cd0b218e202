package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"default:''"`
	Email    string `gorm:"unique;not null"`
	Role     string `gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Password string `gorm:"not null"`

	// Courses and CourseProgress are appended together on enrollment so the
	// two arrays stay the same length: one progress record per course.
	Courses        datatypes.JSONSlice[uint] `json:"courses"`
	CourseProgress datatypes.JSONSlice[uint] `json:"courseProgress"`

	IsDeleted bool `gorm:"default:false"`
}
