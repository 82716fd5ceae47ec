package controller

import (
	"supercharge_backend/internal/service"
	"supercharge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

type GenerateCertificateRequest struct {
	PathID string `json:"path_id" binding:"required"`
}

// @Summary 签发证书
// @Description 路径100%完成后签发证书；重复调用返回既有证书
// @Tags 证书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateCertificateRequest true "路径"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/certificate/generate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.CertificateService.Issue(claims.UserID, req.PathID)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, cert)
}

// @Summary 证书查询
// @Description 匿名可访问的证书验证接口
// @Tags 证书
// @Produce json
// @Param certificateId path string true "证书ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/certificate/{certificateId} [get]
func (c *CertificateController) GetByID(ctx *gin.Context) {
	cert, err := c.CertificateService.Lookup(ctx.Request.Context(), ctx.Param("certificateId"))
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, cert)
}
