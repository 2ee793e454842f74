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

// SurveyService defines the interface for survey submission and analytics
type SurveyService interface {
	SubmitSurvey(ctx context.Context, survey *models.SurveyResponse, userAgent string) (string, error)
	GetOverview(ctx context.Context) (*models.SurveyOverview, error)
	GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error)
	GetDetailedAnalytics(ctx context.Context) (*models.DetailedAnalytics, error)
}

// surveyServiceImpl implements the SurveyService interface
type surveyServiceImpl struct {
	surveyRepo repositories.SurveyRepository
	now        func() time.Time
}

// NewSurveyService creates a new survey service instance
func NewSurveyService(surveyRepo repositories.SurveyRepository) SurveyService {
	return &surveyServiceImpl{
		surveyRepo: surveyRepo,
		now:        helpers.NowUTC,
	}
}

// SubmitSurvey stamps the submission metadata and stores the survey
func (s *surveyServiceImpl) SubmitSurvey(ctx context.Context, survey *models.SurveyResponse, userAgent string) (string, error) {
	if survey == nil {
		return "", fmt.Errorf("survey is nil")
	}

	survey.ApplyDefaults(s.now())
	if survey.UserAgent == "" {
		survey.UserAgent = userAgent
	}

	id, err := s.surveyRepo.CreateSurvey(ctx, survey)
	if err != nil {
		return "", err
	}

	logger.Info().
		Str("id", id).
		Str("department", survey.Department).
		Bool("contactForInterview", survey.ContactForInterview).
		Msg("Survey submitted")
	return id, nil
}

// GetOverview returns survey counts by department and year
func (s *surveyServiceImpl) GetOverview(ctx context.Context) (*models.SurveyOverview, error) {
	return s.surveyRepo.GetOverview(ctx)
}

// GetInterviewCandidates returns the surveys whose authors agreed to be contacted
func (s *surveyServiceImpl) GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error) {
	return s.surveyRepo.GetInterviewCandidates(ctx)
}

// GetDetailedAnalytics combines the priority frequencies and budget averages
func (s *surveyServiceImpl) GetDetailedAnalytics(ctx context.Context) (*models.DetailedAnalytics, error) {
	priorities, err := s.surveyRepo.GetPriorityAnalysis(ctx)
	if err != nil {
		return nil, err
	}

	budgets, err := s.surveyRepo.GetBudgetAnalysis(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DetailedAnalytics{
		PriorityAnalysis: models.NonNilGroups(priorities),
		BudgetAnalysis:   nonNilBudgets(budgets),
	}, nil
}

func nonNilBudgets(b []models.BudgetAverages) []models.BudgetAverages {
	if b == nil {
		return []models.BudgetAverages{}
	}
	return b
}
