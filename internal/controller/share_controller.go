package controller

import (
	"supercharge_backend/internal/service"
	"supercharge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ShareController struct {
	ShareService *service.ShareService
}

func NewShareController(shareService *service.ShareService) *ShareController {
	return &ShareController{ShareService: shareService}
}

type CreateShareRequest struct {
	PathID string `json:"path_id" binding:"required"`
}

// @Summary 创建分享快照
// @Description 对当前进度生成不可变分享快照，任意完成度均可分享
// @Tags 分享
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateShareRequest true "路径"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/share/create [post]
func (c *ShareController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateShareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	snapshot, err := c.ShareService.Create(claims.UserID, req.PathID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Created(ctx, snapshot)
}

// @Summary 查看分享快照
// @Description 匿名可访问，返回创建时刻的进度快照
// @Tags 分享
// @Produce json
// @Param shareId path string true "分享ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/share/{shareId} [get]
func (c *ShareController) GetByID(ctx *gin.Context) {
	snapshot, err := c.ShareService.Resolve(ctx.Request.Context(), ctx.Param("shareId"))
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, snapshot)
}
