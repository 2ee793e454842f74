package seed

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/campus-survey/internal/app/models"
	appRepos "github.com/yigit/campus-survey/internal/app/repositories"
)

type countingStore struct {
	surveys  int64
	feedback int64
	err      error
}

func (s *countingStore) CreateSurvey(ctx context.Context, survey *appModels.SurveyResponse) (string, error) {
	if err := survey.Validate(); err != nil {
		return "", err
	}
	s.surveys++
	return "id", nil
}

func (s *countingStore) GetOverview(ctx context.Context) (*appModels.SurveyOverview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &appModels.SurveyOverview{Total: s.surveys}, nil
}

func (s *countingStore) GetInterviewCandidates(ctx context.Context) ([]*appModels.InterviewCandidate, error) {
	return nil, nil
}

func (s *countingStore) GetPriorityAnalysis(ctx context.Context) ([]appModels.GroupCount, error) {
	return nil, nil
}

func (s *countingStore) GetBudgetAnalysis(ctx context.Context) ([]appModels.BudgetAverages, error) {
	return nil, nil
}

func (s *countingStore) CreateFeedback(ctx context.Context, entry *appModels.FeedbackEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}
	s.feedback++
	return "id", nil
}

func (s *countingStore) ListRecentFeedback(ctx context.Context, limit int64) ([]*appModels.FeedbackEntry, error) {
	return nil, nil
}

func (s *countingStore) GetFeedbackStats(ctx context.Context) (*appModels.FeedbackStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &appModels.FeedbackStats{Total: s.feedback}, nil
}

func reposFor(store *countingStore) *appRepos.Repositories {
	return &appRepos.Repositories{SurveyRepository: store, FeedbackRepository: store}
}

func TestCreateDemoData_FillsEmptyCollectionsOnce(t *testing.T) {
	store := &countingStore{}
	lgr := zerolog.New(io.Discard)

	if err := CreateDemoData(context.Background(), reposFor(store), lgr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.surveys != int64(len(demoSurveys())) || store.feedback != int64(len(demoFeedback())) {
		t.Fatalf("seeded %d surveys and %d feedback", store.surveys, store.feedback)
	}

	if err := CreateDemoData(context.Background(), reposFor(store), lgr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.surveys != int64(len(demoSurveys())) {
		t.Errorf("second run inserted again: %d surveys", store.surveys)
	}
}

func TestCreateDemoData_ReportsStorageErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &countingStore{err: storeErr}

	err := CreateDemoData(context.Background(), reposFor(store), zerolog.New(io.Discard))
	if !errors.Is(err, storeErr) {
		t.Fatalf("error = %v, want %v", err, storeErr)
	}
	if store.surveys != 0 || store.feedback != 0 {
		t.Errorf("inserted documents despite storage error")
	}
}
