package app

import (
	"dsa_tracker_backend/docs"
	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/middleware"
	"dsa_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 定时任务入口(密钥鉴权)
	cron := router.Group("/api/reminders")
	cron.Use(middleware.CronAuthMiddleware(cfg.Cron.Secret))
	{
		cron.POST("/daily", c.reminder.TriggerDailyReminders)
		cron.POST("/weekly", c.reminder.TriggerWeeklyReports)
	}

	// 3. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 题目
		authGroup.GET("/problems", c.problem.ListProblems)
		authGroup.POST("/problems", c.problem.CreateProblem)
		authGroup.GET("/problems/:id", c.problem.GetProblem)
		authGroup.PUT("/problems/:id", c.problem.UpdateProblem)
		authGroup.DELETE("/problems/:id", c.problem.DeleteProblem)

		// 章节
		authGroup.GET("/chapters", c.chapter.ListChapters)
		authGroup.POST("/chapters", c.chapter.CreateChapter)
		authGroup.GET("/chapters/:id", c.chapter.GetChapter)
		authGroup.PUT("/chapters/:id", c.chapter.UpdateChapter)
		authGroup.PUT("/chapters/:id/progress", c.chapter.UpdateChapterProgress)
		authGroup.DELETE("/chapters/:id", c.chapter.DeleteChapter)

		// 学习记录与统计
		authGroup.GET("/study-sessions", c.session.ListSessions)
		authGroup.POST("/study-sessions", c.session.RecordSession)
		authGroup.GET("/study-sessions/stats", c.session.GetSessionStats)
		authGroup.PUT("/study-sessions/:id", c.session.UpdateSession)
		authGroup.DELETE("/study-sessions/:id", c.session.DeleteSession)

		// 目标
		authGroup.GET("/goals", c.goal.ListGoals)
		authGroup.POST("/goals", c.goal.CreateGoal)
		authGroup.PUT("/goals/:id", c.goal.UpdateGoal)
		authGroup.PATCH("/goals/:id/progress", c.goal.UpdateGoalProgress)
		authGroup.DELETE("/goals/:id", c.goal.DeleteGoal)

		// 日程
		authGroup.GET("/schedule", c.schedule.ListSchedule)
		authGroup.POST("/schedule", c.schedule.UpsertSchedule)
		authGroup.PUT("/schedule/:id", c.schedule.UpdateSchedule)
		authGroup.DELETE("/schedule/:id", c.schedule.DeleteSchedule)

		// 代码片段
		authGroup.GET("/snippets", c.snippet.ListSnippets)
		authGroup.POST("/snippets", c.snippet.CreateSnippet)
		authGroup.GET("/snippets/:id", c.snippet.GetSnippet)
		authGroup.PUT("/snippets/:id", c.snippet.UpdateSnippet)
		authGroup.DELETE("/snippets/:id", c.snippet.DeleteSnippet)

		// 成就与分析
		authGroup.GET("/achievements", c.achievement.GetAchievements)
		authGroup.GET("/analytics", c.analytics.GetAnalytics)

		// 用户统计与偏好
		authGroup.GET("/user/stats", c.user.GetUserStats)
		authGroup.GET("/user/preferences", c.user.GetPreferences)
		authGroup.PUT("/user/preferences", c.user.UpdatePreferences)

		// 附件上传
		authGroup.POST("/uploads/attachments", c.upload.UploadAttachment)
	}
}
