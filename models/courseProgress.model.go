package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseProgress tracks which course videos a student has completed.
// One record is created per enrollment, empty at creation.
type CourseProgress struct {
	gorm.Model
	CourseID uint `json:"course_id" gorm:"index;not null"`
	UserID   uint `json:"user_id" gorm:"index;not null"`

	CompletedVideos datatypes.JSONSlice[uint] `json:"completedVideos"`
}
