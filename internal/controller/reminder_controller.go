package controller

import (
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ReminderController 定时提醒入口，只允许外部cron带密钥调用
type ReminderController struct {
	ReminderService *service.ReminderService
}

func NewReminderController(reminderService *service.ReminderService) *ReminderController {
	return &ReminderController{ReminderService: reminderService}
}

// TriggerDailyReminders godoc
// @Summary 触发每日学习提醒
// @Description 给开启邮件提醒且今天还没学习的用户发提醒邮件
// @Tags 提醒
// @Produce  json
// @Success 200 {object} util.Response{data=service.ReminderResult}
// @Failure 401 {object} util.Response "密钥错误"
// @Router /api/reminders/daily [post]
func (c *ReminderController) TriggerDailyReminders(ctx *gin.Context) {
	result, err := c.ReminderService.SendDailyReminders(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// TriggerWeeklyReports godoc
// @Summary 触发每周进度报告
// @Description 给开启邮件提醒的用户发最近一周的学习汇总邮件
// @Tags 提醒
// @Produce  json
// @Success 200 {object} util.Response{data=service.ReminderResult}
// @Failure 401 {object} util.Response "密钥错误"
// @Router /api/reminders/weekly [post]
func (c *ReminderController) TriggerWeeklyReports(ctx *gin.Context) {
	result, err := c.ReminderService.SendWeeklyReports(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
