package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgress_CreatesAndCompletes(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	progress, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", true)
	require.NoError(t, err)

	assert.True(t, progress.Completed)
	require.NotNil(t, progress.CompletedAt)
	assert.False(t, progress.LastAccessedAt.IsZero())
}

func TestUpdateProgress_CompletedAtSetOnlyOnce(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	first, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", true)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)
	firstCompletedAt := *first.CompletedAt
	firstAccessedAt := first.LastAccessedAt

	time.Sleep(10 * time.Millisecond)

	second, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", true)
	require.NoError(t, err)

	// completedAt 不变，lastAccessedAt 前进
	require.NotNil(t, second.CompletedAt)
	assert.WithinDuration(t, firstCompletedAt, *second.CompletedAt, time.Millisecond)
	assert.True(t, second.LastAccessedAt.After(firstAccessedAt))
}

func TestUpdateProgress_CompletedAtSurvivesToggle(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	first, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", true)
	require.NoError(t, err)
	firstCompletedAt := *first.CompletedAt

	time.Sleep(10 * time.Millisecond)

	toggled, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", false)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	again, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", true)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.WithinDuration(t, firstCompletedAt, *again.CompletedAt, time.Millisecond)
}

func TestUpdateProgress_UpsertsSingleRow(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	_, err := s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", false)
	require.NoError(t, err)
	_, err = s.progress.UpdateProgress(user.ID, "01-introduction", "section-1", true)
	require.NoError(t, err)

	rows, err := s.progress.GetUserProgress(user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGetCompletedChaptersCount_DistinctChapters(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	// 同一章节三个小节完成只算一章
	for _, section := range []string{"s1", "s2", "s3"} {
		_, err := s.progress.UpdateProgress(user.ID, "01-introduction", section, true)
		require.NoError(t, err)
	}
	_, err := s.progress.UpdateProgress(user.ID, "02-arrays", "s1", false)
	require.NoError(t, err)

	count, err := s.progress.GetCompletedChaptersCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
