package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/db"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// pgStatementBuilder uses $n placeholders
var pgStatementBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// NewPostgresRepositories builds the storage connector on a PostgreSQL pool
func NewPostgresRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		SurveyRepository:   NewPostgresSurveyRepository(database),
		FeedbackRepository: NewPostgresFeedbackRepository(database),
		Health:             database,
		close:              database.Close,
	}
}

// jsonText extracts a top-level text field of the data document
func jsonText(field string) string {
	return fmt.Sprintf("data->>'%s'", field)
}

// buildCountQuery counts every row of table
func buildCountQuery(sb squirrel.StatementBuilderType, table string) (string, []interface{}, error) {
	return sb.Select("COUNT(*)").From(table).ToSql()
}

// buildCountByQuery groups table rows on a text field of the document, most frequent first
func buildCountByQuery(sb squirrel.StatementBuilderType, table, field string) (string, []interface{}, error) {
	return sb.Select(
		fmt.Sprintf("COALESCE(%s, '') AS grp", jsonText(field)),
		"COUNT(*) AS cnt",
	).
		From(table).
		GroupBy("grp").
		OrderBy("cnt DESC", "grp ASC").
		ToSql()
}

// queryCount runs a single-value count query
func queryCount(ctx context.Context, database *db.PostgresDB, sql string, args []interface{}) (int64, error) {
	var total int64
	if err := database.Pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logDBError(err, "Error executing count query")
		return 0, err
	}
	return total, nil
}

// queryGroupCounts runs a (grp, cnt) query and collects the buckets
func queryGroupCounts(ctx context.Context, database *db.PostgresDB, sql string, args []interface{}) ([]models.GroupCount, error) {
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		logDBError(err, "Error executing group count query")
		return nil, err
	}

	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GroupCount, error) {
		var g models.GroupCount
		err := row.Scan(&g.ID, &g.Count)
		return g, err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning group count rows")
		return nil, err
	}
	return models.NonNilGroups(groups), nil
}
