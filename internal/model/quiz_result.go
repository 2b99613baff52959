package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult 测验结果，只增不改
type QuizResult struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"userId"`
	ChapterID      string    `gorm:"size:100;index;not null" json:"chapterId"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers int       `gorm:"not null" json:"correctAnswers"`
	Score          int       `gorm:"not null" json:"score"`
	Answers        string    `gorm:"type:text" json:"answers"`
	CompletedAt    time.Time `json:"completedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
