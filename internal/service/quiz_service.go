package service

import (
	"time"

	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

type QuizService struct {
	QuizRepo     *repository.QuizResultRepository
	BadgeService *BadgeService
}

func NewQuizService(quizRepo *repository.QuizResultRepository, badgeService *BadgeService) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		BadgeService: badgeService,
	}
}

// SubmitQuizResult 记录一次测验，得分为整数截断：7/10 -> 70，1/3 -> 33。
// 结果只追加，不覆盖历史记录。
func (s *QuizService) SubmitQuizResult(userID uint, chapterID string, totalQuestions, correctAnswers int, answers string) (*model.QuizResult, error) {
	if totalQuestions <= 0 {
		return nil, util.ErrInvalidQuizTotal
	}

	result := &model.QuizResult{
		UserID:         userID,
		ChapterID:      chapterID,
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
		Score:          correctAnswers * 100 / totalQuestions,
		Answers:        answers,
		CompletedAt:    time.Now(),
	}

	if err := s.QuizRepo.Create(result); err != nil {
		return nil, err
	}

	if _, err := s.BadgeService.CheckAndAwardBadges(userID); err != nil {
		logger.Log.Error("Badge evaluation failed after quiz submission",
			zap.Uint("userId", userID), zap.Error(err))
	}

	return result, nil
}

func (s *QuizService) GetUserQuizResults(userID uint) ([]model.QuizResult, error) {
	return s.QuizRepo.FindByUserID(userID)
}

func (s *QuizService) GetChapterQuizResults(userID uint, chapterID string) ([]model.QuizResult, error) {
	return s.QuizRepo.FindByUserIDAndChapterID(userID, chapterID)
}
