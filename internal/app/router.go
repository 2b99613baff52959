package app

import (
	"learning_platform_backend/internal/config"
	"learning_platform_backend/internal/middleware"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/chapters", c.chapter.GetChapters)
		public.GET("/chapters/:chapterId", c.chapter.GetChapter)
		public.GET("/badges", c.badge.GetBadges)
		public.GET("/leaderboard", c.badge.GetLeaderboard)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/progress", c.progress.GetProgress)
		authGroup.POST("/progress", c.progress.UpdateProgress)
		authGroup.GET("/progress/completed-count", c.progress.GetCompletedCount)

		authGroup.POST("/quizzes/submit", c.quiz.SubmitQuiz)
		authGroup.GET("/quizzes", c.quiz.GetQuizResults)
		authGroup.GET("/quizzes/:chapterId", c.quiz.GetChapterQuizResults)

		authGroup.POST("/exercises/submit", c.exercise.SubmitExercise)
		authGroup.GET("/exercises", c.exercise.GetSubmissions)

		authGroup.GET("/badges/me", c.badge.GetMyBadges)
	}

	// 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/chapters/sync", c.chapter.SyncChapters)
	}
}
