package controller

import (
	"errors"

	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StudySessionController struct {
	SessionService *service.StudySessionService
}

func NewStudySessionController(sessionService *service.StudySessionService) *StudySessionController {
	return &StudySessionController{SessionService: sessionService}
}

// ListSessions godoc
// @Summary 获取学习记录列表
// @Description 支持日期范围和数量限制，按日期倒序
// @Tags 学习记录
// @Produce  json
// @Security ApiKeyAuth
// @Param startDate query string false "起始日期 YYYY-MM-DD"
// @Param endDate query string false "截止日期 YYYY-MM-DD"
// @Param limit query int false "返回条数上限"
// @Success 200 {object} util.Response{data=[]model.StudySession}
// @Router /api/study-sessions [get]
func (c *StudySessionController) ListSessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	limit := util.ParseIntOrDefault(ctx.Query("limit"), 0)
	sessions, err := c.SessionService.List(user.UserID, ctx.Query("startDate"), ctx.Query("endDate"), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// RecordSession godoc
// @Summary 记录学习
// @Description 当天已有记录时合并：时长和做题数累加、主题取并集、笔记拼接
// @Tags 学习记录
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.StudySessionRequest true "学习记录"
// @Success 200 {object} util.Response{data=model.StudySession} "合并到已有记录"
// @Success 201 {object} util.Response{data=model.StudySession} "新建记录"
// @Failure 400 {object} util.Response "日期格式错误"
// @Router /api/study-sessions [post]
func (c *StudySessionController) RecordSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.StudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, created, err := c.SessionService.Record(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if created {
		util.Created(ctx, session)
	} else {
		util.Success(ctx, session)
	}
}

// UpdateSession godoc
// @Summary 更新学习记录
// @Tags 学习记录
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Param   body body service.StudySessionRequest true "学习记录"
// @Success 200 {object} util.Response{data=model.StudySession}
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/study-sessions/{id} [put]
func (c *StudySessionController) UpdateSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	var req service.StudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.Update(ctx.Request.Context(), user.UserID, util.MustParseUint(ctx.Param("id")), req)
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
	util.Success(ctx, session)
}

// DeleteSession godoc
// @Summary 删除学习记录
// @Tags 学习记录
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/study-sessions/{id} [delete]
func (c *StudySessionController) DeleteSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	if err := c.SessionService.Delete(ctx.Request.Context(), user.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// GetSessionStats godoc
// @Summary 获取学习统计
// @Description 今日/本周/本月/累计汇总、连续天数、近7天图表和高频主题
// @Tags 学习记录
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.SessionStats}
// @Router /api/study-sessions/stats [get]
func (c *StudySessionController) GetSessionStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	result, err := c.SessionService.Stats(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
