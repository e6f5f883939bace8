package controller

import (
	"errors"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScheduleController struct {
	ScheduleService *service.ScheduleService
}

func NewScheduleController(scheduleService *service.ScheduleService) *ScheduleController {
	return &ScheduleController{ScheduleService: scheduleService}
}

// ListSchedule godoc
// @Summary 获取学习日程
// @Tags 日程
// @Produce  json
// @Security ApiKeyAuth
// @Param from query string false "起始日期 YYYY-MM-DD"
// @Param to query string false "截止日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.ScheduleEntry}
// @Router /api/schedule [get]
func (c *ScheduleController) ListSchedule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	entries, err := c.ScheduleService.List(user.UserID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entries)
}

// UpsertSchedule godoc
// @Summary 写入某天的日程
// @Description 该日期已有日程时整体覆盖
// @Tags 日程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ScheduleRequest true "日程信息"
// @Success 200 {object} util.Response{data=model.ScheduleEntry}
// @Failure 400 {object} util.Response "日期格式错误"
// @Router /api/schedule [post]
func (c *ScheduleController) UpsertSchedule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.ScheduleService.Upsert(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entry)
}

// UpdateSchedule godoc
// @Summary 更新日程
// @Tags 日程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "日程ID"
// @Param   body body service.ScheduleRequest true "日程信息"
// @Success 200 {object} util.Response{data=model.ScheduleEntry}
// @Failure 404 {object} util.Response "日程不存在"
// @Router /api/schedule/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.ScheduleService.Update(user.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidDate):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entry)
}

// DeleteSchedule godoc
// @Summary 删除日程
// @Tags 日程
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "日程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "日程不存在"
// @Router /api/schedule/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.ScheduleService.Delete(user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
