package model

import (
	"time"

	"gorm.io/gorm"
)

// ExerciseSubmission 练习提交记录，只增不改
type ExerciseSubmission struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"userId"`
	ChapterID   string    `gorm:"size:100;index;not null" json:"chapterId"`
	ExerciseID  string    `gorm:"size:100;not null" json:"exerciseId"`
	Code        string    `gorm:"type:text" json:"code"`
	Passed      bool      `gorm:"default:false" json:"passed"`
	Feedback    string    `gorm:"size:255" json:"feedback"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (ExerciseSubmission) TableName() string {
	return "exercise_submissions"
}
