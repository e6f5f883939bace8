package controller

import (
	"errors"

	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProblemController struct {
	ProblemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

// ListProblems godoc
// @Summary 获取题目列表
// @Description 支持按状态、难度、章节和标题关键字筛选
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param status query string false "状态筛选" Enums(all, Not Started, In Progress, Completed)
// @Param difficulty query string false "难度筛选" Enums(all, Easy, Medium, Hard)
// @Param chapterId query int false "章节ID"
// @Param search query string false "标题关键字"
// @Success 200 {object} util.Response{data=[]model.Problem}
// @Router /api/problems [get]
func (c *ProblemController) ListProblems(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	filter := repository.ProblemFilter{
		Status:     ctx.Query("status"),
		Difficulty: ctx.Query("difficulty"),
		Search:     ctx.Query("search"),
	}
	if raw := ctx.Query("chapterId"); raw != "" {
		id := util.MustParseUint(raw)
		filter.ChapterID = &id
	}

	problems, err := c.ProblemService.List(user.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, problems)
}

// GetProblem godoc
// @Summary 获取单个题目
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Problem}
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/problems/{id} [get]
func (c *ProblemController) GetProblem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	problem, err := c.ProblemService.Get(user.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, problem)
}

// CreateProblem godoc
// @Summary 新建题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ProblemRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.Problem}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/problems [post]
func (c *ProblemController) CreateProblem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Create(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, problem)
}

// UpdateProblem godoc
// @Summary 更新题目
// @Description 首次将状态改为Completed时记录完成时间
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param   body body service.ProblemRequest true "题目信息"
// @Success 200 {object} util.Response{data=model.Problem}
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/problems/{id} [put]
func (c *ProblemController) UpdateProblem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Update(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, problem)
}

// DeleteProblem godoc
// @Summary 删除题目
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/problems/{id} [delete]
func (c *ProblemController) DeleteProblem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.ProblemService.Delete(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
