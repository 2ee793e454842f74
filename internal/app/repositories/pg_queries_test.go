package repositories

import (
	"strings"
	"testing"
)

func assertContains(t *testing.T, sql string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(sql, f) {
			t.Errorf("query %q does not contain %q", sql, f)
		}
	}
}

func TestBuildCountByQuery(t *testing.T) {
	sql, args, err := buildCountByQuery(pgStatementBuilder, "surveys", "department")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	assertContains(t, sql,
		"COALESCE(data->>'department', '') AS grp",
		"COUNT(*) AS cnt",
		"FROM surveys",
		"GROUP BY grp",
		"ORDER BY cnt DESC, grp ASC",
	)
}

func TestBuildInterviewCandidatesQuery(t *testing.T) {
	sql, args, err := buildInterviewCandidatesQuery(pgStatementBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("args = %v, want [true]", args)
	}
	assertContains(t, sql,
		"jsonb_build_object('name', data->'name'",
		"'submittedAt', data->'submittedAt'",
		"(data->>'contactForInterview')::boolean = $1",
		"ORDER BY submitted_at ASC",
	)
	if strings.Contains(sql, "'_id'") {
		t.Errorf("candidate projection must not include _id: %s", sql)
	}
}

func TestBuildPriorityAnalysisQuery(t *testing.T) {
	sql, _, err := buildPriorityAnalysisQuery(pgStatementBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, sql,
		"CROSS JOIN LATERAL jsonb_array_elements_text(",
		"GROUP BY p.value",
		"ORDER BY cnt DESC, grp ASC",
	)
}

func TestBuildBudgetAnalysisQuery(t *testing.T) {
	sql, _, err := buildBudgetAnalysisQuery(pgStatementBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, sql,
		"COALESCE(AVG((data->'budgetAllocation'->>'academics')::float8), 0) AS avg_academics",
		"AS avg_infrastructure",
		"HAVING COUNT(*) > 0",
	)
}

func TestBuildRecentFeedbackQuery(t *testing.T) {
	sql, _, err := buildRecentFeedbackQuery(pgStatementBuilder, FeedbackListLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, sql,
		"FROM feedback",
		`ORDER BY "timestamp" DESC`,
		"LIMIT 100",
	)
}

func TestBuildAverageRatingQuery(t *testing.T) {
	sql, _, err := buildAverageRatingQuery(pgStatementBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, sql, "COALESCE(AVG((data->>'rating')::float8), 0)", "FROM feedback")
}
