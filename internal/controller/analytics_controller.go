package controller

import (
	"dsa_tracker_backend/internal/service"
	"dsa_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetAnalytics godoc
// @Summary 获取进度分析
// @Description 完成率、难度分布、近7天完成图、主题进度、月度目标和连续天数
// @Tags 分析
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AnalyticsOverview}
// @Router /api/analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	overview, err := c.AnalyticsService.Overview(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
