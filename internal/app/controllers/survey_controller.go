package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/app/models/dto"
	"github.com/yigit/campus-survey/internal/app/services"
	"github.com/yigit/campus-survey/internal/middleware"
)

// SurveyController handles survey submissions
type SurveyController struct {
	surveyService services.SurveyService
}

// NewSurveyController creates a new SurveyController
func NewSurveyController(surveyService services.SurveyService) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

// SubmitSurvey stores a campus resource survey
// @Summary Submit a survey
// @Description Validates and stores one campus resource survey response
// @Tags survey
// @Accept json
// @Produce json
// @Param request body models.SurveyResponse true "Survey response"
// @Success 201 {object} dto.SubmissionResponse "Survey submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid survey or storage failure"
// @Router /survey [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	var survey models.SurveyResponse
	if err := ctx.ShouldBindJSON(&survey); err != nil {
		middleware.HandleSubmissionError(ctx, middleware.BindError(err))
		return
	}

	id, err := c.surveyService.SubmitSurvey(ctx.Request.Context(), &survey, ctx.Request.UserAgent())
	if err != nil {
		middleware.HandleSubmissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmissionResponse{
		Message: dto.SurveySubmittedMessage,
		ID:      id,
	})
}
