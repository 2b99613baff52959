package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitExercise_LengthBoundary(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	// 严格大于50：51通过，50不通过
	passed, err := s.exercise.SubmitExercise(user.ID, "01-introduction", "ex-1", strings.Repeat("a", 51))
	require.NoError(t, err)
	assert.True(t, passed.Passed)
	assert.Equal(t, exercisePassedFeedback, passed.Feedback)

	failed, err := s.exercise.SubmitExercise(user.ID, "01-introduction", "ex-1", strings.Repeat("a", 50))
	require.NoError(t, err)
	assert.False(t, failed.Passed)
	assert.Equal(t, exerciseFailedFeedback, failed.Feedback)
}

func TestSubmitExercise_BlankCodeFails(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	blank, err := s.exercise.SubmitExercise(user.ID, "01-introduction", "ex-1", "")
	require.NoError(t, err)
	assert.False(t, blank.Passed)

	// 纯空白即使超长也不通过
	whitespace, err := s.exercise.SubmitExercise(user.ID, "01-introduction", "ex-1", strings.Repeat(" ", 80))
	require.NoError(t, err)
	assert.False(t, whitespace.Passed)
}

func TestSubmitExercise_AppendOnly(t *testing.T) {
	s := newTestServices(t)
	user := createTestUser(t, s, "alice", "alice@example.com")

	for i := 0; i < 3; i++ {
		_, err := s.exercise.SubmitExercise(user.ID, "01-introduction", "ex-1", strings.Repeat("a", 60))
		require.NoError(t, err)
	}

	submissions, err := s.exercise.GetUserSubmissions(user.ID)
	require.NoError(t, err)
	assert.Len(t, submissions, 3)
}
