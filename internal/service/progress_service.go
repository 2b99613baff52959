package service

import (
	"errors"
	"time"

	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	BadgeService *BadgeService
}

func NewProgressService(progressRepo *repository.ProgressRepository, badgeService *BadgeService) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		BadgeService: badgeService,
	}
}

// UpdateProgress 按 (user, chapter, section) upsert 进度。
// LastAccessedAt 每次刷新；CompletedAt 只在首次完成时写入，之后不再改动。
// 进度落库成功后才触发徽章评估，评估失败只记日志，不影响已保存的进度。
func (s *ProgressService) UpdateProgress(userID uint, chapterID, sectionID string, completed bool) (*model.Progress, error) {
	progress, err := s.ProgressRepo.FindByUserAndChapterAndSection(userID, chapterID, sectionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = &model.Progress{
			UserID:    userID,
			ChapterID: chapterID,
			SectionID: sectionID,
		}
	} else if err != nil {
		return nil, err
	}

	progress.Completed = completed
	progress.LastAccessedAt = time.Now()
	if completed && progress.CompletedAt == nil {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	if completed {
		if _, err := s.BadgeService.CheckAndAwardBadges(userID); err != nil {
			logger.Log.Error("Badge evaluation failed after progress update",
				zap.Uint("userId", userID), zap.Error(err))
		}
	}

	return progress, nil
}

func (s *ProgressService) GetUserProgress(userID uint) ([]model.Progress, error) {
	return s.ProgressRepo.FindByUserID(userID)
}

func (s *ProgressService) GetChapterProgress(userID uint, chapterID string) ([]model.Progress, error) {
	return s.ProgressRepo.FindByUserIDAndChapterID(userID, chapterID)
}

// GetCompletedChaptersCount 已完成章节数（按不同 chapter_id 去重）
func (s *ProgressService) GetCompletedChaptersCount(userID uint) (int, error) {
	count, err := s.ProgressRepo.CountDistinctCompletedChapters(userID)
	return int(count), err
}
