package controller

import (
	"errors"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// ListGoals godoc
// @Summary 获取目标列表
// @Tags 目标
// @Produce  json
// @Security ApiKeyAuth
// @Param status query string false "状态筛选" Enums(all, active, completed, paused)
// @Param type query string false "类型筛选" Enums(all, daily, weekly, monthly, yearly)
// @Param chapterId query int false "章节ID"
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Router /api/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var chapterID *uint
	if raw := ctx.Query("chapterId"); raw != "" {
		id := util.MustParseUint(raw)
		chapterID = &id
	}

	goals, err := c.GoalService.List(user.UserID, ctx.Query("status"), ctx.Query("type"), chapterID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// CreateGoal godoc
// @Summary 新建目标
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.GoalRequest true "目标信息"
// @Success 201 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Create(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, goal)
}

// UpdateGoal godoc
// @Summary 更新目标
// @Description 当前值达到目标值时自动标记为已完成
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Param   body body service.GoalRequest true "目标信息"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Update(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, goal)
}

// UpdateGoalProgressRequest 只更新目标进度
type UpdateGoalProgressRequest struct {
	Current int `json:"current" binding:"min=0"`
}

// UpdateGoalProgress godoc
// @Summary 更新目标进度
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Param   body body UpdateGoalProgressRequest true "当前进度"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id}/progress [patch]
func (c *GoalController) UpdateGoalProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req UpdateGoalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateProgress(user.UserID, util.MustParseUint(ctx.Param("id")), req.Current)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, goal)
}

// DeleteGoal godoc
// @Summary 删除目标
// @Tags 目标
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.GoalService.Delete(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
