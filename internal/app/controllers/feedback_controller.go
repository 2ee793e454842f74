package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/app/models/dto"
	"github.com/yigit/campus-survey/internal/app/services"
	"github.com/yigit/campus-survey/internal/middleware"
)

// FeedbackController handles feedback submission and reporting
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback stores a feedback entry
// @Summary Submit feedback
// @Description Validates and stores one feedback entry; rating must be between 1 and 5
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body models.FeedbackEntry true "Feedback entry"
// @Success 201 {object} dto.SubmissionResponse "Feedback submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback or storage failure"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var entry models.FeedbackEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		middleware.HandleSubmissionError(ctx, middleware.BindError(err))
		return
	}

	id, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), &entry, ctx.Request.UserAgent())
	if err != nil {
		middleware.HandleSubmissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmissionResponse{
		Message: dto.FeedbackSubmittedMessage,
		ID:      id,
	})
}

// ListFeedback returns recent feedback
// @Summary List feedback
// @Description Returns up to 100 feedback entries, newest first
// @Tags feedback
// @Produce json
// @Success 200 {array} models.FeedbackEntry "Feedback entries"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	entries, err := c.feedbackService.ListFeedback(ctx.Request.Context())
	if err != nil {
		middleware.HandleQueryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// GetFeedbackStats returns feedback totals
// @Summary Feedback statistics
// @Description Returns the total number of entries, the mean rating and counts per category
// @Tags feedback
// @Produce json
// @Success 200 {object} models.FeedbackStats "Feedback statistics"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /feedback/stats [get]
func (c *FeedbackController) GetFeedbackStats(ctx *gin.Context) {
	stats, err := c.feedbackService.GetFeedbackStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleQueryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
