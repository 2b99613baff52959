package controller

import (
	"learning_platform_backend/internal/service"
	"learning_platform_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// @Summary 获取全部徽章
// @Tags 成就系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /badges [get]
func (c *BadgeController) GetBadges(ctx *gin.Context) {
	badges, err := c.BadgeService.GetAllBadges()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// @Summary 获取我的徽章
// @Tags 成就系统
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /badges/me [get]
func (c *BadgeController) GetMyBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	userBadges, err := c.BadgeService.GetUserBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userBadges)
}

// @Summary 获取排行榜
// @Description 按测验总分降序，默认前10名
// @Tags 成就系统
// @Produce json
// @Param limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response
// @Router /leaderboard [get]
func (c *BadgeController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	leaderboard, err := c.BadgeService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, leaderboard)
}
