package controllers_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/pkg/apperrors"
)

// memoryStore is an in-process stand-in for the document store. It applies the same
// validation, grouping and ordering rules as the database backends.
type memoryStore struct {
	mu       sync.Mutex
	seq      int
	surveys  []models.SurveyResponse
	feedback []models.FeedbackEntry
	down     bool
}

func (s *memoryStore) unavailable(op string) error {
	if s.down {
		return apperrors.NewInfrastructureError(op, apperrors.ErrNotConnected)
	}
	return nil
}

func (s *memoryStore) nextID() string {
	s.seq++
	return fmt.Sprintf("id-%03d", s.seq)
}

func (s *memoryStore) Ping(ctx context.Context) error {
	return s.unavailable("ping")
}

func (s *memoryStore) CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error) {
	if err := survey.Validate(); err != nil {
		return "", err
	}
	if err := s.unavailable("insert survey"); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := *survey
	doc.ID = s.nextID()
	s.surveys = append(s.surveys, doc)
	return doc.ID, nil
}

func (s *memoryStore) GetOverview(ctx context.Context) (*models.SurveyOverview, error) {
	if err := s.unavailable("survey overview"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var departments, years []string
	for _, sv := range s.surveys {
		departments = append(departments, sv.Department)
		years = append(years, sv.Year)
	}
	return &models.SurveyOverview{
		Total:        int64(len(s.surveys)),
		ByDepartment: countBy(departments),
		ByYear:       countBy(years),
	}, nil
}

func (s *memoryStore) GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error) {
	if err := s.unavailable("interview candidates"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.InterviewCandidate{}
	for _, sv := range s.surveys {
		if !sv.ContactForInterview {
			continue
		}
		out = append(out, &models.InterviewCandidate{
			Name: sv.Name, Email: sv.Email, Department: sv.Department, Year: sv.Year,
			TopPriorities: sv.TopPriorities, Suggestions: sv.Suggestions, SubmittedAt: sv.SubmittedAt,
		})
	}
	return out, nil
}

func (s *memoryStore) GetPriorityAnalysis(ctx context.Context) ([]models.GroupCount, error) {
	if err := s.unavailable("priority analysis"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var priorities []string
	for _, sv := range s.surveys {
		priorities = append(priorities, sv.TopPriorities...)
	}
	return countBy(priorities), nil
}

func (s *memoryStore) GetBudgetAnalysis(ctx context.Context) ([]models.BudgetAverages, error) {
	if err := s.unavailable("budget analysis"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.surveys) == 0 {
		return []models.BudgetAverages{}, nil
	}
	var avg models.BudgetAverages
	n := float64(len(s.surveys))
	for _, sv := range s.surveys {
		avg.AvgAcademics += sv.BudgetAllocation.Academics / n
		avg.AvgFacilities += sv.BudgetAllocation.Facilities / n
		avg.AvgTechnology += sv.BudgetAllocation.Technology / n
		avg.AvgSupport += sv.BudgetAllocation.Support / n
		avg.AvgInfrastructure += sv.BudgetAllocation.Infrastructure / n
	}
	return []models.BudgetAverages{avg}, nil
}

func (s *memoryStore) CreateFeedback(ctx context.Context, entry *models.FeedbackEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}
	if err := s.unavailable("insert feedback"); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := *entry
	doc.ID = s.nextID()
	s.feedback = append(s.feedback, doc)
	return doc.ID, nil
}

func (s *memoryStore) ListRecentFeedback(ctx context.Context, limit int64) ([]*models.FeedbackEntry, error) {
	if err := s.unavailable("list feedback"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.FeedbackEntry, 0, len(s.feedback))
	for i := range s.feedback {
		entry := s.feedback[i]
		out = append(out, &entry)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	if err := s.unavailable("feedback stats"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &models.FeedbackStats{Total: int64(len(s.feedback))}
	var categories []string
	var sum float64
	for _, f := range s.feedback {
		sum += float64(f.Rating)
		categories = append(categories, f.Category)
	}
	if len(s.feedback) > 0 {
		stats.AverageRating = sum / float64(len(s.feedback))
	}
	stats.Categories = countBy(categories)
	return stats, nil
}

func countBy(keys []string) []models.GroupCount {
	counts := map[string]int64{}
	for _, k := range keys {
		counts[k]++
	}
	out := make([]models.GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, models.GroupCount{ID: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}
