package controller

import (
	"supercharge_backend/internal/service"
	"supercharge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary 成就定义列表
// @Description 返回全部成就定义，无需登录
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) ListDefinitions(ctx *gin.Context) {
	util.Success(ctx, gin.H{"achievements": c.AchievementService.Definitions()})
}

// @Summary 用户已解锁成就
// @Tags 成就
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/user/achievements [get]
func (c *AchievementController) GetUserAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ids, err := c.AchievementService.GetUnlockedIDs(claims.UserID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"achievements": ids})
}
