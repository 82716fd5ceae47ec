package controller

import (
	"supercharge_backend/internal/service"
	"supercharge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type ToggleRequest struct {
	MilestoneID string `json:"milestone_id" binding:"required"`
	Completed   *bool  `json:"completed" binding:"required"`
}

// @Summary 全部进度
// @Description 返回当前用户在所有已触达路径上的进度
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetAllProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.ProgressService.GetAllProgress(claims.UserID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, views)
}

// @Summary 单路径进度
// @Description 返回指定路径的进度，未开始的路径返回空进度
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param pathId path string true "路径ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{pathId} [get]
func (c *ProgressController) GetPathProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.ProgressService.GetProgress(claims.UserID, ctx.Param("pathId"))
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 切换里程碑完成状态
// @Description 标记或取消里程碑完成，随后同步重评估成就
// @Tags 进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pathId path string true "路径ID"
// @Param toggle body ToggleRequest true "切换请求"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{pathId} [post]
func (c *ProgressController) ToggleMilestone(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressService.SetMilestoneCompletion(
		claims.UserID, ctx.Param("pathId"), req.MilestoneID, *req.Completed)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
