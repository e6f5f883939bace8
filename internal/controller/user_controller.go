package controller

import (
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetUserStats godoc
// @Summary 获取用户总览统计
// @Description 题目完成情况、连续天数、学习时长、周目标进度、积分和等级
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserStats}
// @Router /api/user/stats [get]
func (c *UserController) GetUserStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	result, err := c.UserService.Stats(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetPreferences godoc
// @Summary 获取偏好设置
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserPreferences}
// @Router /api/user/preferences [get]
func (c *UserController) GetPreferences(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	prefs, err := c.UserService.GetPreferences(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// UpdatePreferences godoc
// @Summary 更新偏好设置
// @Description 邮件提醒开关、提醒时间、时区和周学习目标
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.PreferencesRequest true "偏好设置"
// @Success 200 {object} util.Response{data=model.UserPreferences}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/user/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.PreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prefs, err := c.UserService.UpdatePreferences(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}
