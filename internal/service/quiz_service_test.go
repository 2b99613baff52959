package service

import (
	"testing"

	"learning_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuizResult_ScoreTruncates(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	tests := []struct {
		total   int
		correct int
		want    int
	}{
		{10, 7, 70},
		{3, 1, 33}, // 截断，不是四舍五入到34
		{3, 3, 100},
		{8, 0, 0},
	}

	for _, tt := range tests {
		result, err := s.quiz.SubmitQuizResult(user.ID, "01-introduction", tt.total, tt.correct, "{}")
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.Score, "correct=%d total=%d", tt.correct, tt.total)
	}
}

func TestSubmitQuizResult_RejectsNonPositiveTotal(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	_, err := s.quiz.SubmitQuizResult(user.ID, "01-introduction", 0, 0, "")
	assert.ErrorIs(t, err, util.ErrInvalidQuizTotal)

	_, err = s.quiz.SubmitQuizResult(user.ID, "01-introduction", -1, 0, "")
	assert.ErrorIs(t, err, util.ErrInvalidQuizTotal)

	results, err := s.quiz.GetUserQuizResults(user.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSubmitQuizResult_AppendOnly(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	_, err := s.quiz.SubmitQuizResult(user.ID, "01-introduction", 10, 5, "{}")
	require.NoError(t, err)
	_, err = s.quiz.SubmitQuizResult(user.ID, "01-introduction", 10, 8, "{}")
	require.NoError(t, err)

	// 同一章节重复提交产生两条历史记录，不覆盖
	results, err := s.quiz.GetChapterQuizResults(user.ID, "01-introduction")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
