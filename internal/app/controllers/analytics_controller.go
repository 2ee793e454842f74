package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/services"
	"github.com/yigit/campus-survey/internal/middleware"
)

// AnalyticsController serves the survey dashboards
type AnalyticsController struct {
	surveyService services.SurveyService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(surveyService services.SurveyService) *AnalyticsController {
	return &AnalyticsController{
		surveyService: surveyService,
	}
}

// GetOverview returns survey counts
// @Summary Survey overview
// @Description Total surveys plus counts by department and by year, most frequent first
// @Tags analytics
// @Produce json
// @Success 200 {object} models.SurveyOverview "Survey overview"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /analytics/overview [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	overview, err := c.surveyService.GetOverview(ctx.Request.Context())
	if err != nil {
		middleware.HandleQueryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// GetInterviewCandidates lists respondents open to an interview
// @Summary Interview candidates
// @Description Surveys whose authors agreed to be contacted, reduced to contact and priority fields
// @Tags analytics
// @Produce json
// @Success 200 {array} models.InterviewCandidate "Interview candidates"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /analytics/interview-candidates [get]
func (c *AnalyticsController) GetInterviewCandidates(ctx *gin.Context) {
	candidates, err := c.surveyService.GetInterviewCandidates(ctx.Request.Context())
	if err != nil {
		middleware.HandleQueryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// GetDetailedAnalytics returns priority and budget analysis
// @Summary Detailed analytics
// @Description Frequency of each top priority and the mean of each budget allocation weight
// @Tags analytics
// @Produce json
// @Success 200 {object} models.DetailedAnalytics "Detailed analytics"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /analytics/detailed [get]
func (c *AnalyticsController) GetDetailedAnalytics(ctx *gin.Context) {
	analytics, err := c.surveyService.GetDetailedAnalytics(ctx.Request.Context())
	if err != nil {
		middleware.HandleQueryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, analytics)
}
