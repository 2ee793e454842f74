package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/campus-survey/internal/app/models"
	appRepos "github.com/yigit/campus-survey/internal/app/repositories"
	"github.com/yigit/campus-survey/internal/pkg/helpers"
)

const demoUserAgent = "campus-survey-seed"

// CreateDemoData fills empty collections with a handful of surveys and feedback entries
// so the dashboards have something to show. Collections that already hold documents
// are left alone.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data (Surveys/Feedback)...")
	var finalErr error // To collect potential errors without stopping the process

	now := helpers.NowUTC()

	// --- Surveys --- //
	overview, err := repos.SurveyRepository.GetOverview(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting existing surveys")
		finalErr = errors.Join(finalErr, err)
	case overview.Total > 0:
		lgr.Info().Int64("surveys", overview.Total).Msg("Surveys already present, skipping survey demo data")
	default:
		for i, survey := range demoSurveys() {
			survey.SubmittedAt = now.Add(time.Duration(i-10) * time.Hour)
			survey.UserAgent = demoUserAgent
			survey.ApplyDefaults(now)
			if _, err := repos.SurveyRepository.CreateSurvey(ctx, survey); err != nil {
				lgr.Error().Err(err).Str("studentId", survey.StudentID).Msg("Error creating demo survey")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Feedback --- //
	stats, err := repos.FeedbackRepository.GetFeedbackStats(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting existing feedback")
		finalErr = errors.Join(finalErr, err)
	case stats.Total > 0:
		lgr.Info().Int64("feedback", stats.Total).Msg("Feedback already present, skipping feedback demo data")
	default:
		for i, entry := range demoFeedback() {
			entry.Timestamp = now.Add(time.Duration(i-10) * time.Hour)
			entry.UserAgent = demoUserAgent
			entry.ApplyDefaults(now)
			if _, err := repos.FeedbackRepository.CreateFeedback(ctx, entry); err != nil {
				lgr.Error().Err(err).Str("category", entry.Category).Msg("Error creating demo feedback")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data check/creation completed.")
	}
	return finalErr
}

func demoSurveys() []*appModels.SurveyResponse {
	return []*appModels.SurveyResponse{
		{
			StudentID: "S1001", Name: "Ada Lovelace", Email: "ada@campus.edu",
			Year: "2", Department: "CS", Program: "BS", Accommodation: "on-campus",
			LibraryNeeds:        []string{"quiet-study", "extended-hours"},
			LibraryUsage:        "daily",
			TopPriorities:       []string{"library", "wifi"},
			BudgetAllocation:    appModels.BudgetAllocation{Academics: 30, Facilities: 20, Technology: 30, Support: 10, Infrastructure: 10},
			Suggestions:         "Keep the library open during finals week.",
			ContactForInterview: true,
		},
		{
			StudentID: "S1002", Name: "Alan Turing", Email: "alan@campus.edu",
			Year: "3", Department: "CS", Program: "MS", Accommodation: "off-campus",
			SoftwareNeeds:     []string{"matlab", "ide-licences"},
			TopPriorities:     []string{"wifi", "labs"},
			BudgetAllocation:  appModels.BudgetAllocation{Academics: 20, Facilities: 10, Technology: 40, Support: 10, Infrastructure: 20},
			VolunteerInterest: true,
		},
		{
			StudentID: "S1003", Name: "Rosalind Franklin", Email: "rosalind@campus.edu",
			Year: "4", Department: "BIO", Program: "BS", Accommodation: "on-campus",
			LabNeeds:            []string{"microscopes", "late-access"},
			TopPriorities:       []string{"labs", "healthcare"},
			BudgetAllocation:    appModels.BudgetAllocation{Academics: 25, Facilities: 35, Technology: 15, Support: 15, Infrastructure: 10},
			Suggestions:         "More lab slots for final year projects.",
			ContactForInterview: true,
		},
	}
}

func demoFeedback() []*appModels.FeedbackEntry {
	return []*appModels.FeedbackEntry{
		{Name: "Ada Lovelace", Email: "ada@campus.edu", Category: "facilities", Rating: 4, Message: "Study rooms are great but always full."},
		{Name: "Alan Turing", Email: "alan@campus.edu", Category: "technology", Rating: 2, Message: "Wi-Fi drops in the engineering building."},
		{Name: "Rosalind Franklin", Email: "rosalind@campus.edu", Category: "facilities", Rating: 5, Message: "The new lab equipment is excellent."},
	}
}
