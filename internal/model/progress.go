package model

import (
	"time"

	"gorm.io/gorm"
)

// Progress 用户在某章节某小节的学习进度，按 (user, chapter, section) 唯一
type Progress struct {
	gorm.Model
	UserID         uint       `gorm:"uniqueIndex:idx_user_chapter_section;not null" json:"userId"`
	ChapterID      string     `gorm:"size:100;uniqueIndex:idx_user_chapter_section;not null" json:"chapterId"`
	SectionID      string     `gorm:"size:100;uniqueIndex:idx_user_chapter_section;not null" json:"sectionId"`
	Completed      bool       `gorm:"default:false" json:"completed"`
	LastAccessedAt time.Time  `json:"lastAccessedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func (Progress) TableName() string {
	return "progress"
}
