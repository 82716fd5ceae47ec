package controller

import (
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{Catalog: cat}
}

// @Summary 职业路径列表
// @Description 返回全部职业路径及里程碑
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/career-paths [get]
func (c *CatalogController) ListPaths(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Paths())
}

// @Summary 职业路径详情
// @Tags 目录
// @Produce json
// @Param pathId path string true "路径ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/career-paths/{pathId} [get]
func (c *CatalogController) GetPath(ctx *gin.Context) {
	pathID := ctx.Param("pathId")
	path, ok := c.Catalog.Path(pathID)
	if !ok {
		util.Error(ctx, 404, "career path not found: "+pathID)
		return
	}

	util.Success(ctx, path)
}
