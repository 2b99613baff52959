package model

// Chapter 课程章节，chapter_id 与内容目录名一致（如 "01-introduction"）
type Chapter struct {
	BaseModel
	ChapterID  string `gorm:"size:100;uniqueIndex;not null" json:"chapterId"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Summary    string `gorm:"size:1000" json:"summary"`
	OrderIndex int    `gorm:"not null" json:"orderIndex"`
	Available  bool   `gorm:"default:true" json:"available"`
}

func (Chapter) TableName() string {
	return "chapters"
}
