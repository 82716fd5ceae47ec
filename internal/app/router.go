package app

import (
	"supercharge_backend/docs"
	"supercharge_backend/internal/config"
	"supercharge_backend/internal/middleware"

	"supercharge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerAuthorizedRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 参考目录与成就定义：静态数据，游客可见
		public.GET("/career-paths", c.catalog.ListPaths)
		public.GET("/career-paths/:pathId", c.catalog.GetPath)
		public.GET("/achievements", c.achievement.ListDefinitions)
		public.GET("/quiz/questions", c.quiz.GetQuestions)

		// 证书与分享的匿名查询
		public.GET("/certificate/:certificateId", c.certificate.GetByID)
		public.GET("/share/:shareId", c.share.GetByID)
	}
}

func (a *App) registerAuthorizedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// 进度
	rg.GET("/progress", c.progress.GetAllProgress)
	rg.GET("/progress/:pathId", c.progress.GetPathProgress)
	rg.POST("/progress/:pathId", c.progress.ToggleMilestone)

	// 成就
	rg.GET("/user/achievements", c.achievement.GetUserAchievements)

	// 测验
	rg.POST("/quiz/submit", c.quiz.Submit)

	// 证书与分享
	rg.POST("/certificate/generate", c.certificate.Generate)
	rg.POST("/share/create", c.share.Create)
}
