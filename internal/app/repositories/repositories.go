package repositories

import (
	"context"

	"github.com/yigit/campus-survey/internal/app/models"
)

// FeedbackListLimit caps the feedback list endpoint.
const FeedbackListLimit = 100

// SurveyRepository is the surveys collection of the storage connector.
type SurveyRepository interface {
	// CreateSurvey validates and inserts one survey, returning its generated id.
	CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error)
	GetOverview(ctx context.Context) (*models.SurveyOverview, error)
	GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error)
	// GetPriorityAnalysis counts every topPriorities element, most frequent first.
	GetPriorityAnalysis(ctx context.Context) ([]models.GroupCount, error)
	// GetBudgetAnalysis returns one row of averages, or none when there are no surveys.
	GetBudgetAnalysis(ctx context.Context) ([]models.BudgetAverages, error)
}

// FeedbackRepository is the feedback collection of the storage connector.
type FeedbackRepository interface {
	// CreateFeedback validates and inserts one entry, returning its generated id.
	CreateFeedback(ctx context.Context, entry *models.FeedbackEntry) (string, error)
	// ListRecentFeedback returns up to limit entries, newest first.
	ListRecentFeedback(ctx context.Context, limit int64) ([]*models.FeedbackEntry, error)
	GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error)
}

// HealthChecker reports storage liveness.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Repositories holds the storage connector: both collections over one shared connection
type Repositories struct {
	SurveyRepository   SurveyRepository
	FeedbackRepository FeedbackRepository
	Health             HealthChecker

	close func(ctx context.Context) error
}

// IsConnected reports whether the database currently answers.
func (r *Repositories) IsConnected(ctx context.Context) bool {
	return r.Health != nil && r.Health.Ping(ctx) == nil
}

// Close releases the underlying connection.
func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}
