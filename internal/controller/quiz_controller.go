package controller

import (
	"supercharge_backend/internal/service"
	"supercharge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary 测验题库
// @Description 返回当前测验题目，无需登录
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.Questions())
}

// @Summary 提交答卷
// @Description 对完整答卷打分并返回职业路径推荐，结果不持久化
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body service.QuizSubmission true "答卷"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Score(submission)
	if err != nil {
		util.FailFromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
