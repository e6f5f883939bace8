package controller

import (
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary 获取成就列表
// @Description 按当前指标评估全部成就，新解锁的成就记录首次解锁时间
// @Tags 成就
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AchievementSummary}
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	summary, err := c.AchievementService.Evaluate(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
