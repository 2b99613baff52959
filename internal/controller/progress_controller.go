package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type UpdateProgressRequest struct {
	ChapterID string `json:"chapterId" binding:"required"`
	SectionID string `json:"sectionId" binding:"required"`
	Completed bool   `json:"completed"`
}

// @Summary 更新学习进度
// @Description 按 (章节, 小节) 记录进度；完成时触发徽章评估
// @Tags 进度
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProgressRequest true "进度信息"
// @Success 200 {object} util.Response
// @Router /progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateProgress(user.UserID, req.ChapterID, req.SectionID, req.Completed)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 获取学习进度
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId query string false "按章节过滤"
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	chapterID := ctx.Query("chapterId")

	var err error
	var progress interface{}
	if chapterID != "" {
		progress, err = c.ProgressService.GetChapterProgress(user.UserID, chapterID)
	} else {
		progress, err = c.ProgressService.GetUserProgress(user.UserID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 获取已完成章节数
// @Description 同一章节多个小节完成只计一次
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress/completed-count [get]
func (c *ProgressController) GetCompletedCount(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.ProgressService.GetCompletedChaptersCount(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"completedChapters": count})
}
