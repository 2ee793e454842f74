package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/db"
	"github.com/yigit/campus-survey/internal/pkg/dberrors"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// PostgresFeedbackRepository handles feedback documents stored as JSONB rows
type PostgresFeedbackRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPostgresFeedbackRepository creates a new PostgresFeedbackRepository
func NewPostgresFeedbackRepository(database *db.PostgresDB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{
		db: database,
		sb: pgStatementBuilder,
	}
}

// CreateFeedback inserts a validated feedback entry
func (r *PostgresFeedbackRepository) CreateFeedback(ctx context.Context, entry *models.FeedbackEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}
	if err := r.db.Ready(ctx); err != nil {
		logDBError(err, "Database not ready for feedback insert")
		return "", dberrors.Wrap("insert feedback", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to encode feedback document: %w", err)
	}

	id := uuid.New().String()
	sql, args, err := r.sb.Insert(models.FeedbackCollection).
		Columns("id", "data", `"timestamp"`).
		Values(id, data, entry.Timestamp).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create feedback SQL")
		return "", fmt.Errorf("failed to build create feedback query: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		logDBError(err, "Error executing create feedback query")
		return "", dberrors.Wrap("insert feedback", err)
	}

	return id, nil
}

// buildRecentFeedbackQuery selects the newest feedback rows first
func buildRecentFeedbackQuery(sb squirrel.StatementBuilderType, limit int64) (string, []interface{}, error) {
	return sb.Select("id::text", "data").
		From(models.FeedbackCollection).
		OrderBy(`"timestamp" DESC`).
		Limit(uint64(limit)).
		ToSql()
}

// ListRecentFeedback returns the newest entries first
func (r *PostgresFeedbackRepository) ListRecentFeedback(ctx context.Context, limit int64) ([]*models.FeedbackEntry, error) {
	if err := r.db.Ready(ctx); err != nil {
		return nil, dberrors.Wrap("list feedback", err)
	}

	sql, args, err := buildRecentFeedbackQuery(r.sb, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list feedback SQL")
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logDBError(err, "Error executing list feedback query")
		return nil, dberrors.Wrap("list feedback", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.FeedbackEntry, error) {
		var (
			id  string
			raw []byte
		)
		if err := row.Scan(&id, &raw); err != nil {
			return nil, err
		}
		entry := &models.FeedbackEntry{}
		if err := json.Unmarshal(raw, entry); err != nil {
			return nil, err
		}
		entry.ID = id
		return entry, nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning feedback rows")
		return nil, dberrors.Wrap("list feedback", err)
	}
	if entries == nil {
		entries = []*models.FeedbackEntry{}
	}
	return entries, nil
}

// buildAverageRatingQuery averages the rating field, 0 on an empty table
func buildAverageRatingQuery(sb squirrel.StatementBuilderType) (string, []interface{}, error) {
	return sb.Select("COALESCE(AVG((data->>'rating')::float8), 0)").
		From(models.FeedbackCollection).
		ToSql()
}

// GetFeedbackStats computes total, mean rating and per-category counts
func (r *PostgresFeedbackRepository) GetFeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	if err := r.db.Ready(ctx); err != nil {
		return nil, dberrors.Wrap("feedback stats", err)
	}

	totalSQL, totalArgs, err := buildCountQuery(r.sb, models.FeedbackCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to build feedback count query: %w", err)
	}
	avgSQL, avgArgs, err := buildAverageRatingQuery(r.sb)
	if err != nil {
		return nil, fmt.Errorf("failed to build average rating query: %w", err)
	}
	catSQL, catArgs, err := buildCountByQuery(r.sb, models.FeedbackCollection, "category")
	if err != nil {
		return nil, fmt.Errorf("failed to build category count query: %w", err)
	}

	stats := &models.FeedbackStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = queryCount(gctx, r.db, totalSQL, totalArgs)
		return err
	})
	g.Go(func() error {
		if err := r.db.Pool.QueryRow(gctx, avgSQL, avgArgs...).Scan(&stats.AverageRating); err != nil {
			logDBError(err, "Error executing average rating query")
			return err
		}
		return nil
	})
	g.Go(func() (err error) {
		stats.Categories, err = queryGroupCounts(gctx, r.db, catSQL, catArgs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dberrors.Wrap("feedback stats", err)
	}

	return stats, nil
}
