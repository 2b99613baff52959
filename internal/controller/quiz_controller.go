package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type SubmitQuizRequest struct {
	ChapterID      string `json:"chapterId" binding:"required"`
	TotalQuestions int    `json:"totalQuestions" binding:"required"`
	CorrectAnswers int    `json:"correctAnswers"`
	Answers        string `json:"answers"`
}

// @Summary 提交测验结果
// @Description 得分按整数截断计算；历史结果只追加
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "测验结果"
// @Success 201 {object} util.Response
// @Router /quizzes/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuizResult(user.UserID, req.ChapterID,
		req.TotalQuestions, req.CorrectAnswers, req.Answers)
	if err != nil {
		if err == util.ErrInvalidQuizTotal {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary 获取测验历史
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /quizzes [get]
func (c *QuizController) GetQuizResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.GetUserQuizResults(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// @Summary 获取单章节测验历史
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path string true "章节ID"
// @Success 200 {object} util.Response
// @Router /quizzes/{chapterId} [get]
func (c *QuizController) GetChapterQuizResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.GetChapterQuizResults(user.UserID, ctx.Param("chapterId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
