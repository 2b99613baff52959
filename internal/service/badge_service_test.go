package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"learning_platform_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeChapters(t *testing.T, s *testServices, userID uint, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := s.progress.UpdateProgress(userID, fmt.Sprintf("%02d-chapter", i), "s1", true)
		require.NoError(t, err)
	}
}

func badgeNames(userBadges []model.UserBadge) []string {
	names := make([]string, 0, len(userBadges))
	for _, ub := range userBadges {
		names = append(names, ub.Badge.Name)
	}
	return names
}

func TestCheckAndAwardBadges_ChapterThresholds(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)
	user := createTestUser(t, s, "alice", "alice@example.com")

	completeChapters(t, s, user.ID, 1)
	userBadges, err := s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"First Chapter"}, badgeNames(userBadges))

	completeChapters(t, s, user.ID, 5)
	userBadges, err = s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"First Chapter", "Five Chapters"}, badgeNames(userBadges))

	completeChapters(t, s, user.ID, 10)
	userBadges, err = s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"First Chapter", "Five Chapters", "Ten Chapters"}, badgeNames(userBadges))
}

func TestCheckAndAwardBadges_QuizMaster(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)
	user := createTestUser(t, s, "alice", "alice@example.com")

	// 4次满分+若干非满分：未达标
	for i := 0; i < 4; i++ {
		_, err := s.quiz.SubmitQuizResult(user.ID, "01-intro", 5, 5, "{}")
		require.NoError(t, err)
	}
	for i := 0; i < 6; i++ {
		_, err := s.quiz.SubmitQuizResult(user.ID, "01-intro", 5, 3, "{}")
		require.NoError(t, err)
	}

	userBadges, err := s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.NotContains(t, badgeNames(userBadges), "Quiz Master")

	// 第5次满分触发
	_, err = s.quiz.SubmitQuizResult(user.ID, "01-intro", 5, 5, "{}")
	require.NoError(t, err)

	userBadges, err = s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badgeNames(userBadges), "Quiz Master")
}

func TestCheckAndAwardBadges_CodeNinja(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)
	user := createTestUser(t, s, "alice", "alice@example.com")

	passing := strings.Repeat("a", 60)
	for i := 0; i < 9; i++ {
		_, err := s.exercise.SubmitExercise(user.ID, "01-intro", fmt.Sprintf("ex-%d", i), passing)
		require.NoError(t, err)
	}
	// 未通过的提交不计数
	_, err := s.exercise.SubmitExercise(user.ID, "01-intro", "ex-short", "short")
	require.NoError(t, err)

	userBadges, err := s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.NotContains(t, badgeNames(userBadges), "Code Ninja")

	_, err = s.exercise.SubmitExercise(user.ID, "01-intro", "ex-10", passing)
	require.NoError(t, err)

	userBadges, err = s.badge.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.Contains(t, badgeNames(userBadges), "Code Ninja")
}

func TestCheckAndAwardBadges_AwardsAtMostOnce(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)
	user := createTestUser(t, s, "alice", "alice@example.com")

	completeChapters(t, s, user.ID, 1)

	// 连续评估两次也只发一枚
	awarded, err := s.badge.CheckAndAwardBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)

	awarded, err = s.badge.CheckAndAwardBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)

	var count int64
	require.NoError(t, s.db.Model(&model.UserBadge{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckAndAwardBadges_UnseededCatalogSkipsSilently(t *testing.T) {
	s := newTestServices(t)
	// 不做徽章种子化
	user := createTestUser(t, s, "alice", "alice@example.com")

	completeChapters(t, s, user.ID, 1)

	awarded, err := s.badge.CheckAndAwardBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestAwardBadge_DuplicateInsertAbsorbed(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)
	user := createTestUser(t, s, "alice", "alice@example.com")

	badge, err := s.badge.BadgeRepo.FindByName("First Chapter")
	require.NoError(t, err)

	// 模拟并发竞争中先到的一方已插入
	require.NoError(t, s.badge.BadgeRepo.CreateUserBadge(&model.UserBadge{
		UserID:   user.ID,
		BadgeID:  badge.ID,
		EarnedAt: time.Now(),
	}))

	granted, err := s.badge.awardBadge(user.ID, "First Chapter")
	require.NoError(t, err)
	assert.False(t, granted)

	var count int64
	require.NoError(t, s.db.Model(&model.UserBadge{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetLeaderboard_OrderAndLimit(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)

	// 12个用户，第i个用户总分 i*5
	for i := 1; i <= 12; i++ {
		user := createTestUser(t, s, fmt.Sprintf("user-%02d", i), fmt.Sprintf("u%02d@example.com", i))
		_, err := s.quiz.SubmitQuizResult(user.ID, "01-intro", 100, i*5, "{}")
		require.NoError(t, err)
	}

	entries, err := s.badge.GetLeaderboard(10)
	require.NoError(t, err)

	assert.Len(t, entries, 10)
	assert.Equal(t, "user-12", entries[0].Name)
	assert.Equal(t, 60, entries[0].TotalScore)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalScore, entries[i].TotalScore)
	}
}

func TestGetLeaderboard_AggregatesPerUser(t *testing.T) {
	s := newTestServices(t)
	seedTestBadges(t, s.db)

	alice := createTestUser(t, s, "alice", "alice@example.com")
	_ = createTestUser(t, s, "bob", "bob@example.com")

	completeChapters(t, s, alice.ID, 1)
	_, err := s.quiz.SubmitQuizResult(alice.ID, "01-intro", 10, 7, "{}")
	require.NoError(t, err)
	_, err = s.quiz.SubmitQuizResult(alice.ID, "02-arrays", 10, 5, "{}")
	require.NoError(t, err)

	entries, err := s.badge.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "alice", entries[0].Name)
	assert.Equal(t, 120, entries[0].TotalScore)
	assert.EqualValues(t, 1, entries[0].CompletedChapters)
	assert.EqualValues(t, 1, entries[0].BadgeCount) // First Chapter

	assert.Equal(t, "bob", entries[1].Name)
	assert.Equal(t, 0, entries[1].TotalScore)
	assert.EqualValues(t, 0, entries[1].BadgeCount)
}
