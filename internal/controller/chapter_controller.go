package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChapterController struct {
	ChapterService *service.ChapterService
}

func NewChapterController(chapterService *service.ChapterService) *ChapterController {
	return &ChapterController{ChapterService: chapterService}
}

// @Summary 获取可用章节列表
// @Description 按 order_index 升序返回全部可用章节
// @Tags 章节
// @Produce json
// @Success 200 {object} util.Response
// @Router /chapters [get]
func (c *ChapterController) GetChapters(ctx *gin.Context) {
	chapters, err := c.ChapterService.GetAvailableChapters()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, chapters)
}

// @Summary 获取单个章节
// @Tags 章节
// @Produce json
// @Param chapterId path string true "章节ID（目录名）"
// @Success 200 {object} util.Response
// @Router /chapters/{chapterId} [get]
func (c *ChapterController) GetChapter(ctx *gin.Context) {
	chapter, err := c.ChapterService.GetChapterByID(ctx.Param("chapterId"))
	if err != nil {
		if err == util.ErrChapterNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, chapter)
}

// @Summary 重新同步章节目录
// @Description 管理员手动触发内容目录同步；逐目录失败不影响整体
// @Tags 章节
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/chapters/sync [post]
func (c *ChapterController) SyncChapters(ctx *gin.Context) {
	loaded, errs := c.ChapterService.SyncFromFilesystem(c.ChapterService.Cfg.Content.Path)

	util.Success(ctx, gin.H{
		"loaded": loaded,
		"errors": len(errs),
	})
}
