package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/controllers"
	"github.com/yigit/campus-survey/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	surveyController *controllers.SurveyController,
	feedbackController *controllers.FeedbackController,
	analyticsController *controllers.AnalyticsController,
	systemController *controllers.SystemController,
) {
	api := router.Group("/api")

	// --- Submissions ---
	api.POST("/survey", middleware.ValidateBody(middleware.SurveySchema), surveyController.SubmitSurvey)

	feedback := api.Group("/feedback")
	{
		feedback.POST("", middleware.ValidateBody(middleware.FeedbackSchema), feedbackController.SubmitFeedback)
		feedback.GET("", feedbackController.ListFeedback)
		feedback.GET("/stats", feedbackController.GetFeedbackStats)
	}

	// --- Dashboards ---
	analytics := api.Group("/analytics")
	{
		analytics.GET("/overview", analyticsController.GetOverview)
		analytics.GET("/interview-candidates", analyticsController.GetInterviewCandidates)
		analytics.GET("/detailed", analyticsController.GetDetailedAnalytics)
	}

	// --- System ---
	api.GET("/health", systemController.Health)
	router.GET("/ping", systemController.Ping)
}
