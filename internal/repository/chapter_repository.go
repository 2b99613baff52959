package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

// FindByChapterID 按目录名形式的章节ID查找（如 "01-introduction"）
func (r *ChapterRepository) FindByChapterID(chapterID string) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.DB.Where("chapter_id = ?", chapterID).First(&chapter).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) FindAllOrdered() ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Order("order_index").Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *ChapterRepository) FindAvailableOrdered() ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Where("available = ?", true).Order("order_index").Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) Update(chapter *model.Chapter) error {
	return r.DB.Save(chapter).Error
}
