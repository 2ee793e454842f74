package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/db"
	"github.com/yigit/campus-survey/internal/pkg/dberrors"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// surveyDocument is a survey as stored in the surveys collection
type surveyDocument struct {
	ID                    primitive.ObjectID `bson:"_id"`
	models.SurveyResponse `bson:",inline"`
}

// MongoSurveyRepository handles survey documents in MongoDB
type MongoSurveyRepository struct {
	coll *mongo.Collection
}

// NewMongoSurveyRepository creates a new MongoSurveyRepository
func NewMongoSurveyRepository(database *db.MongoDB) *MongoSurveyRepository {
	return &MongoSurveyRepository{coll: database.Collection(models.SurveyCollection)}
}

// NewMongoRepositories builds the storage connector on a MongoDB session
func NewMongoRepositories(database *db.MongoDB) *Repositories {
	return &Repositories{
		SurveyRepository:   NewMongoSurveyRepository(database),
		FeedbackRepository: NewMongoFeedbackRepository(database),
		Health:             database,
		close:              database.Close,
	}
}

// CreateSurvey inserts a validated survey
func (r *MongoSurveyRepository) CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error) {
	if err := survey.Validate(); err != nil {
		return "", err
	}

	doc := surveyDocument{ID: primitive.NewObjectID(), SurveyResponse: *survey}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logDBError(err, "Error inserting survey document")
		return "", dberrors.Wrap("insert survey", err)
	}

	return doc.ID.Hex(), nil
}

// GetOverview counts surveys in total, per department and per year
func (r *MongoSurveyRepository) GetOverview(ctx context.Context) (*models.SurveyOverview, error) {
	var facets []struct {
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
		ByDepartment []models.GroupCount `bson:"byDepartment"`
		ByYear       []models.GroupCount `bson:"byYear"`
	}
	if err := aggregate(ctx, r.coll, surveyOverviewPipeline(), &facets); err != nil {
		return nil, dberrors.Wrap("survey overview", err)
	}

	overview := &models.SurveyOverview{ByDepartment: []models.GroupCount{}, ByYear: []models.GroupCount{}}
	if len(facets) == 0 {
		return overview, nil
	}
	if len(facets[0].Total) > 0 {
		overview.Total = facets[0].Total[0].Count
	}
	overview.ByDepartment = models.NonNilGroups(facets[0].ByDepartment)
	overview.ByYear = models.NonNilGroups(facets[0].ByYear)
	return overview, nil
}

// GetInterviewCandidates lists surveys whose authors agreed to an interview
func (r *MongoSurveyRepository) GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error) {
	filter, opts := interviewCandidatesQuery()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logDBError(err, "Error finding interview candidates")
		return nil, dberrors.Wrap("interview candidates", err)
	}

	candidates := []*models.InterviewCandidate{}
	if err := cursor.All(ctx, &candidates); err != nil {
		logDBError(err, "Error decoding interview candidates")
		return nil, dberrors.Wrap("interview candidates", err)
	}
	return candidates, nil
}

// GetPriorityAnalysis counts each distinct topPriorities value
func (r *MongoSurveyRepository) GetPriorityAnalysis(ctx context.Context) ([]models.GroupCount, error) {
	var groups []models.GroupCount
	if err := aggregate(ctx, r.coll, priorityAnalysisPipeline(), &groups); err != nil {
		return nil, dberrors.Wrap("priority analysis", err)
	}
	return models.NonNilGroups(groups), nil
}

// GetBudgetAnalysis averages the budget allocation weights
func (r *MongoSurveyRepository) GetBudgetAnalysis(ctx context.Context) ([]models.BudgetAverages, error) {
	budgets := []models.BudgetAverages{}
	if err := aggregate(ctx, r.coll, budgetAnalysisPipeline(), &budgets); err != nil {
		return nil, dberrors.Wrap("budget analysis", err)
	}
	return budgets, nil
}

// aggregate runs pipeline on coll and decodes every result into out
func aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		logDBError(err, fmt.Sprintf("Error running aggregation on %s", coll.Name()))
		return err
	}
	if err := cursor.All(ctx, out); err != nil {
		logDBError(err, fmt.Sprintf("Error decoding aggregation on %s", coll.Name()))
		return err
	}
	return nil
}

// logDBError logs unreachable-database failures as warnings and everything else as errors
func logDBError(err error, msg string) {
	if dberrors.IsConnectionError(err) {
		logger.Warn().Err(err).Msg(msg + " (database unreachable)")
		return
	}
	logger.Error().Err(err).Msg(msg)
}
