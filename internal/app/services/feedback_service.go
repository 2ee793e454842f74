package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/app/repositories"
	"github.com/yigit/campus-survey/internal/pkg/helpers"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, entry *models.FeedbackEntry, userAgent string) (string, error)
	ListFeedback(ctx context.Context) ([]*models.FeedbackEntry, error)
	GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
	now          func() time.Time
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		now:          helpers.NowUTC,
	}
}

// SubmitFeedback stamps the entry with its timestamp and initial status and stores it
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, entry *models.FeedbackEntry, userAgent string) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("feedback entry is nil")
	}

	entry.ApplyDefaults(s.now())
	if entry.UserAgent == "" {
		entry.UserAgent = userAgent
	}

	id, err := s.feedbackRepo.CreateFeedback(ctx, entry)
	if err != nil {
		return "", err
	}

	logger.Info().
		Str("id", id).
		Str("category", entry.Category).
		Int("rating", entry.Rating).
		Msg("Feedback submitted")
	return id, nil
}

// ListFeedback returns the most recent entries, newest first
func (s *feedbackServiceImpl) ListFeedback(ctx context.Context) ([]*models.FeedbackEntry, error) {
	entries, err := s.feedbackRepo.ListRecentFeedback(ctx, repositories.FeedbackListLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.FeedbackEntry{}
	}
	return entries, nil
}

// GetFeedbackStats returns total, mean rating and per-category counts
func (s *feedbackServiceImpl) GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	return s.feedbackRepo.GetFeedbackStats(ctx)
}
