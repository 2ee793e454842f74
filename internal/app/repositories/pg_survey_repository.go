package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/db"
	"github.com/yigit/campus-survey/internal/pkg/dberrors"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// PostgresSurveyRepository handles survey documents stored as JSONB rows
type PostgresSurveyRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPostgresSurveyRepository creates a new PostgresSurveyRepository
func NewPostgresSurveyRepository(database *db.PostgresDB) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{
		db: database,
		sb: pgStatementBuilder,
	}
}

// CreateSurvey inserts a validated survey
func (r *PostgresSurveyRepository) CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error) {
	if err := survey.Validate(); err != nil {
		return "", err
	}
	if err := r.db.Ready(ctx); err != nil {
		logDBError(err, "Database not ready for survey insert")
		return "", dberrors.Wrap("insert survey", err)
	}

	data, err := json.Marshal(survey)
	if err != nil {
		return "", fmt.Errorf("failed to encode survey document: %w", err)
	}

	id := uuid.New().String()
	sql, args, err := r.sb.Insert(models.SurveyCollection).
		Columns("id", "data", "submitted_at").
		Values(id, data, survey.SubmittedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create survey SQL")
		return "", fmt.Errorf("failed to build create survey query: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		logDBError(err, "Error executing create survey query")
		return "", dberrors.Wrap("insert survey", err)
	}

	return id, nil
}

// GetOverview counts surveys in total, per department and per year
func (r *PostgresSurveyRepository) GetOverview(ctx context.Context) (*models.SurveyOverview, error) {
	if err := r.db.Ready(ctx); err != nil {
		return nil, dberrors.Wrap("survey overview", err)
	}

	totalSQL, totalArgs, err := buildCountQuery(r.sb, models.SurveyCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to build survey count query: %w", err)
	}
	deptSQL, deptArgs, err := buildCountByQuery(r.sb, models.SurveyCollection, "department")
	if err != nil {
		return nil, fmt.Errorf("failed to build department count query: %w", err)
	}
	yearSQL, yearArgs, err := buildCountByQuery(r.sb, models.SurveyCollection, "year")
	if err != nil {
		return nil, fmt.Errorf("failed to build year count query: %w", err)
	}

	overview := &models.SurveyOverview{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Total, err = queryCount(gctx, r.db, totalSQL, totalArgs)
		return err
	})
	g.Go(func() (err error) {
		overview.ByDepartment, err = queryGroupCounts(gctx, r.db, deptSQL, deptArgs)
		return err
	})
	g.Go(func() (err error) {
		overview.ByYear, err = queryGroupCounts(gctx, r.db, yearSQL, yearArgs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dberrors.Wrap("survey overview", err)
	}

	return overview, nil
}

// buildInterviewCandidatesQuery selects the projected fields of surveys flagged for interview
func buildInterviewCandidatesQuery(sb squirrel.StatementBuilderType) (string, []interface{}, error) {
	pairs := make([]string, 0, len(models.InterviewCandidateFields))
	for _, field := range models.InterviewCandidateFields {
		pairs = append(pairs, fmt.Sprintf("'%s', data->'%s'", field, field))
	}
	return sb.Select(fmt.Sprintf("jsonb_build_object(%s)", strings.Join(pairs, ", "))).
		From(models.SurveyCollection).
		Where(squirrel.Expr("(data->>'contactForInterview')::boolean = ?", true)).
		OrderBy("submitted_at ASC").
		ToSql()
}

// GetInterviewCandidates lists surveys whose authors agreed to an interview
func (r *PostgresSurveyRepository) GetInterviewCandidates(ctx context.Context) ([]*models.InterviewCandidate, error) {
	if err := r.db.Ready(ctx); err != nil {
		return nil, dberrors.Wrap("interview candidates", err)
	}

	sql, args, err := buildInterviewCandidatesQuery(r.sb)
	if err != nil {
		logger.Error().Err(err).Msg("Error building interview candidates SQL")
		return nil, fmt.Errorf("failed to build interview candidates query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logDBError(err, "Error executing interview candidates query")
		return nil, dberrors.Wrap("interview candidates", err)
	}

	candidates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.InterviewCandidate, error) {
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return nil, err
		}
		candidate := &models.InterviewCandidate{}
		return candidate, json.Unmarshal(raw, candidate)
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning interview candidate rows")
		return nil, dberrors.Wrap("interview candidates", err)
	}
	if candidates == nil {
		candidates = []*models.InterviewCandidate{}
	}
	return candidates, nil
}

// buildPriorityAnalysisQuery expands topPriorities into one row per element and counts them
func buildPriorityAnalysisQuery(sb squirrel.StatementBuilderType) (string, []interface{}, error) {
	return sb.Select("p.value AS grp", "COUNT(*) AS cnt").
		From(models.SurveyCollection).
		JoinClause("CROSS JOIN LATERAL jsonb_array_elements_text("+
			"CASE WHEN jsonb_typeof(data->'topPriorities') = 'array' "+
			"THEN data->'topPriorities' ELSE '[]'::jsonb END) AS p(value)").
		GroupBy("p.value").
		OrderBy("cnt DESC", "grp ASC").
		ToSql()
}

// GetPriorityAnalysis counts each distinct topPriorities value
func (r *PostgresSurveyRepository) GetPriorityAnalysis(ctx context.Context) ([]models.GroupCount, error) {
	if err := r.db.Ready(ctx); err != nil {
		return nil, dberrors.Wrap("priority analysis", err)
	}

	sql, args, err := buildPriorityAnalysisQuery(r.sb)
	if err != nil {
		return nil, fmt.Errorf("failed to build priority analysis query: %w", err)
	}

	groups, err := queryGroupCounts(ctx, r.db, sql, args)
	if err != nil {
		return nil, dberrors.Wrap("priority analysis", err)
	}
	return groups, nil
}

// buildBudgetAnalysisQuery averages each weight; HAVING drops the row when there are no surveys
func buildBudgetAnalysisQuery(sb squirrel.StatementBuilderType) (string, []interface{}, error) {
	avg := func(field, alias string) string {
		return fmt.Sprintf("COALESCE(AVG((data->'budgetAllocation'->>'%s')::float8), 0) AS %s", field, alias)
	}
	return sb.Select(
		avg("academics", "avg_academics"),
		avg("facilities", "avg_facilities"),
		avg("technology", "avg_technology"),
		avg("support", "avg_support"),
		avg("infrastructure", "avg_infrastructure"),
	).
		From(models.SurveyCollection).
		Having("COUNT(*) > 0").
		ToSql()
}

// GetBudgetAnalysis averages the budget allocation weights
func (r *PostgresSurveyRepository) GetBudgetAnalysis(ctx context.Context) ([]models.BudgetAverages, error) {
	if err := r.db.Ready(ctx); err != nil {
		return nil, dberrors.Wrap("budget analysis", err)
	}

	sql, args, err := buildBudgetAnalysisQuery(r.sb)
	if err != nil {
		return nil, fmt.Errorf("failed to build budget analysis query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logDBError(err, "Error executing budget analysis query")
		return nil, dberrors.Wrap("budget analysis", err)
	}

	budgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BudgetAverages, error) {
		var b models.BudgetAverages
		err := row.Scan(&b.AvgAcademics, &b.AvgFacilities, &b.AvgTechnology, &b.AvgSupport, &b.AvgInfrastructure)
		return b, err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning budget analysis row")
		return nil, dberrors.Wrap("budget analysis", err)
	}
	if budgets == nil {
		budgets = []models.BudgetAverages{}
	}
	return budgets, nil
}
