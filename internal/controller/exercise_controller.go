package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	ExerciseService *service.ExerciseService
}

func NewExerciseController(exerciseService *service.ExerciseService) *ExerciseController {
	return &ExerciseController{ExerciseService: exerciseService}
}

type SubmitExerciseRequest struct {
	ChapterID  string `json:"chapterId" binding:"required"`
	ExerciseID string `json:"exerciseId" binding:"required"`
	Code       string `json:"code"`
}

// @Summary 提交练习代码
// @Tags 练习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitExerciseRequest true "练习提交"
// @Success 201 {object} util.Response
// @Router /exercises/submit [post]
func (c *ExerciseController) SubmitExercise(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.ExerciseService.SubmitExercise(user.UserID, req.ChapterID, req.ExerciseID, req.Code)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, submission)
}

// @Summary 获取练习提交历史
// @Tags 练习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /exercises [get]
func (c *ExerciseController) GetSubmissions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.ExerciseService.GetUserSubmissions(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, submissions)
}
