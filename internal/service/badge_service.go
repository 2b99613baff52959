package service

import (
	"errors"
	"sort"
	"time"

	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/pkg/logger"
	"learning_platform_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BadgeService struct {
	BadgeRepo    *repository.BadgeRepository
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	QuizRepo     *repository.QuizResultRepository
	ExerciseRepo *repository.ExerciseSubmissionRepository
}

func NewBadgeService(
	badgeRepo *repository.BadgeRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	quizRepo *repository.QuizResultRepository,
	exerciseRepo *repository.ExerciseSubmissionRepository,
) *BadgeService {
	return &BadgeService{
		BadgeRepo:    badgeRepo,
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		QuizRepo:     quizRepo,
		ExerciseRepo: exerciseRepo,
	}
}

type LeaderboardEntry struct {
	Name              string `json:"name"`
	BadgeCount        int64  `json:"badgeCount"`
	CompletedChapters int64  `json:"completedChapters"`
	TotalScore        int    `json:"totalScore"`
}

// CheckAndAwardBadges 基于用户的累计历史评估全部发放规则，返回本次新发放的徽章名。
// 规则彼此独立，每次全量评估；尚未种子化的徽章名直接跳过。
func (s *BadgeService) CheckAndAwardBadges(userID uint) ([]string, error) {
	completedChapters, err := s.ProgressRepo.CountDistinctCompletedChapters(userID)
	if err != nil {
		return nil, err
	}

	perfectQuizzes, err := s.QuizRepo.CountPerfectScores(userID)
	if err != nil {
		return nil, err
	}

	passedExercises, err := s.ExerciseRepo.CountPassed(userID)
	if err != nil {
		return nil, err
	}

	rules := []struct {
		name     string
		eligible bool
	}{
		{"First Chapter", completedChapters >= 1},
		{"Five Chapters", completedChapters >= 5},
		{"Ten Chapters", completedChapters >= 10},
		{"Quiz Master", perfectQuizzes >= 5},
		{"Code Ninja", passedExercises >= 10},
	}

	var awarded []string
	for _, rule := range rules {
		if !rule.eligible {
			continue
		}

		granted, err := s.awardBadge(userID, rule.name)
		if err != nil {
			return awarded, err
		}
		if granted {
			awarded = append(awarded, rule.name)
		}
	}

	return awarded, nil
}

// awardBadge 发放单个徽章，已持有时不重复发放。
// 应用层的查重和插入之间存在竞争窗口，最终由 user_badges 的
// (user_id, badge_id) 唯一索引兜底：重复插入按已发放吸收。
func (s *BadgeService) awardBadge(userID uint, badgeName string) (bool, error) {
	badge, err := s.BadgeRepo.FindByName(badgeName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	_, err = s.BadgeRepo.FindUserBadge(userID, badge.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	userBadge := &model.UserBadge{
		UserID:   userID,
		BadgeID:  badge.ID,
		EarnedAt: time.Now(),
	}
	if err := s.BadgeRepo.CreateUserBadge(userBadge); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	monitoring.BadgeAwardCounter.WithLabelValues(badgeName).Inc()
	logger.Log.Info("Badge awarded", zap.Uint("userId", userID), zap.String("badge", badgeName))
	return true, nil
}

func (s *BadgeService) GetAllBadges() ([]model.Badge, error) {
	return s.BadgeRepo.FindAll()
}

func (s *BadgeService) GetUserBadges(userID uint) ([]model.UserBadge, error) {
	return s.BadgeRepo.FindUserBadges(userID)
}

// GetLeaderboard 按总分降序取前 limit 名。总分相同的条目不做二级排序。
// 每次现算，不缓存。
func (s *BadgeService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		badgeCount, err := s.BadgeRepo.CountUserBadges(user.ID)
		if err != nil {
			return nil, err
		}

		completedChapters, err := s.ProgressRepo.CountDistinctCompletedChapters(user.ID)
		if err != nil {
			return nil, err
		}

		totalScore, err := s.QuizRepo.SumScores(user.ID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, LeaderboardEntry{
			Name:              user.Name,
			BadgeCount:        badgeCount,
			CompletedChapters: completedChapters,
			TotalScore:        int(totalScore),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}
