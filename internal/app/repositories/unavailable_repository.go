package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/pkg/apperrors"
)

// unavailableRepository stands in for the storage connector when no database client
// could be created at startup. Submissions are still validated so callers get the
// field error first; everything else fails as an infrastructure error.
type unavailableRepository struct {
	cause error
}

// NewUnavailableRepositories builds a degraded storage connector that reports cause.
func NewUnavailableRepositories(cause error) *Repositories {
	repo := &unavailableRepository{cause: cause}
	return &Repositories{
		SurveyRepository:   repo,
		FeedbackRepository: repo,
		Health:             repo,
	}
}

func (r *unavailableRepository) err(op string) error {
	if r.cause == nil {
		return apperrors.NewInfrastructureError(op, apperrors.ErrNotConnected)
	}
	return apperrors.NewInfrastructureError(op, fmt.Errorf("%w: %v", apperrors.ErrNotConnected, r.cause))
}

func (r *unavailableRepository) Ping(ctx context.Context) error {
	return r.err("ping")
}

func (r *unavailableRepository) CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error) {
	if err := survey.Validate(); err != nil {
		return "", err
	}
	return "", r.err("insert survey")
}

func (r *unavailableRepository) GetOverview(ctx context.Context) (*models.SurveyOverview, error) {
	return nil, r.err("survey overview")
}

func (r *unavailableRepository) GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error) {
	return nil, r.err("interview candidates")
}

func (r *unavailableRepository) GetPriorityAnalysis(ctx context.Context) ([]models.GroupCount, error) {
	return nil, r.err("priority analysis")
}

func (r *unavailableRepository) GetBudgetAnalysis(ctx context.Context) ([]models.BudgetAverages, error) {
	return nil, r.err("budget analysis")
}

func (r *unavailableRepository) CreateFeedback(ctx context.Context, entry *models.FeedbackEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}
	return "", r.err("insert feedback")
}

func (r *unavailableRepository) ListRecentFeedback(ctx context.Context, limit int64) ([]*models.FeedbackEntry, error) {
	return nil, r.err("list feedback")
}

func (r *unavailableRepository) GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	return nil, r.err("feedback stats")
}
