package service

import (
	"strings"
	"time"

	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	exercisePassedFeedback = "Great job! Your solution is correct."
	exerciseFailedFeedback = "Keep trying! Review the requirements and try again."
)

type ExerciseService struct {
	ExerciseRepo *repository.ExerciseSubmissionRepository
	BadgeService *BadgeService
}

func NewExerciseService(exerciseRepo *repository.ExerciseSubmissionRepository, badgeService *BadgeService) *ExerciseService {
	return &ExerciseService{
		ExerciseRepo: exerciseRepo,
		BadgeService: badgeService,
	}
}

// SubmitExercise 记录一次练习提交。只有通过的提交才触发徽章评估。
func (s *ExerciseService) SubmitExercise(userID uint, chapterID, exerciseID, code string) (*model.ExerciseSubmission, error) {
	passed := validateCode(code)

	feedback := exerciseFailedFeedback
	if passed {
		feedback = exercisePassedFeedback
	}

	submission := &model.ExerciseSubmission{
		UserID:      userID,
		ChapterID:   chapterID,
		ExerciseID:  exerciseID,
		Code:        code,
		Passed:      passed,
		Feedback:    feedback,
		SubmittedAt: time.Now(),
	}

	if err := s.ExerciseRepo.Create(submission); err != nil {
		return nil, err
	}

	if passed {
		if _, err := s.BadgeService.CheckAndAwardBadges(userID); err != nil {
			logger.Log.Error("Badge evaluation failed after exercise submission",
				zap.Uint("userId", userID), zap.Error(err))
		}
	}

	return submission, nil
}

func (s *ExerciseService) GetUserSubmissions(userID uint) ([]model.ExerciseSubmission, error) {
	return s.ExerciseRepo.FindByUserID(userID)
}

// validateCode 占位校验：非空白且长度大于50即通过。
// TODO: 接入真正的编译与测试用例执行（如 Judge0）后替换
func validateCode(code string) bool {
	return strings.TrimSpace(code) != "" && len(code) > 50
}
