package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus-survey/internal/app/controllers"
	"github.com/yigit/campus-survey/internal/app/models"
	"github.com/yigit/campus-survey/internal/app/models/dto"
	"github.com/yigit/campus-survey/internal/app/routes"
	"github.com/yigit/campus-survey/internal/app/services"
	"github.com/yigit/campus-survey/internal/middleware"
)

const surveyS1 = `{"studentId":"S1","name":"A","email":"a@x.com","year":"2","department":"CS","program":"BS","topPriorities":["library","wifi"]}`

func newTestRouter(store *memoryStore) *gin.Engine {
	surveyService := services.NewSurveyService(store)
	feedbackService := services.NewFeedbackService(store)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery())
	routes.SetupRouter(router,
		controllers.NewSurveyController(surveyService),
		controllers.NewFeedbackController(feedbackService),
		controllers.NewAnalyticsController(surveyService),
		controllers.NewSystemController(services.NewHealthService(store)),
	)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "controller-test")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestSubmitSurvey_ThenOverview(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)

	rec := do(t, router, http.MethodPost, "/api/survey", surveyS1)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var created dto.SubmissionResponse
	decode(t, rec, &created)
	if created.ID == "" || created.Message != dto.SurveySubmittedMessage {
		t.Errorf("response = %+v", created)
	}
	if store.surveys[0].UserAgent != "controller-test" {
		t.Errorf("UserAgent = %q, want header value", store.surveys[0].UserAgent)
	}

	rec = do(t, router, http.MethodGet, "/api/analytics/overview", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("overview status = %d", rec.Code)
	}
	var overview models.SurveyOverview
	decode(t, rec, &overview)
	if overview.Total != 1 {
		t.Errorf("Total = %d, want 1", overview.Total)
	}
	if len(overview.ByDepartment) != 1 || overview.ByDepartment[0] != (models.GroupCount{ID: "CS", Count: 1}) {
		t.Errorf("ByDepartment = %+v, want [{CS 1}]", overview.ByDepartment)
	}
}

func TestSubmitSurvey_ReplayCreatesDistinctRecords(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	var ids []string
	for i := 0; i < 2; i++ {
		rec := do(t, router, http.MethodPost, "/api/survey", surveyS1)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d", rec.Code)
		}
		var created dto.SubmissionResponse
		decode(t, rec, &created)
		ids = append(ids, created.ID)
	}
	if ids[0] == ids[1] {
		t.Errorf("replayed submission reused id %q", ids[0])
	}
}

func TestSubmitSurvey_MissingRequiredField(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)

	rec := do(t, router, http.MethodPost, "/api/survey", `{"studentId":"S1","name":"A","email":"a@x.com","year":"2","program":"BS"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body dto.ErrorResponse
	decode(t, rec, &body)
	if !strings.Contains(body.Error, "department") {
		t.Errorf("error = %q, want it to name department", body.Error)
	}
	if len(store.surveys) != 0 {
		t.Errorf("stored %d surveys, want 0", len(store.surveys))
	}
}

func TestSubmitFeedback_RatingOutOfRange(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	rec := do(t, router, http.MethodPost, "/api/feedback", `{"name":"A","email":"a@x","category":"food","rating":6,"message":"m"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body dto.ErrorResponse
	decode(t, rec, &body)
	if !strings.Contains(body.Error, "rating") {
		t.Errorf("error = %q, want it to name rating", body.Error)
	}

	rec = do(t, router, http.MethodGet, "/api/feedback/stats", "")
	var stats models.FeedbackStats
	decode(t, rec, &stats)
	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if stats.AverageRating != 0 {
		t.Errorf("AverageRating = %v, want 0", stats.AverageRating)
	}
}

func TestFeedback_SubmitListAndStats(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)

	for _, body := range []string{
		`{"name":"A","email":"a@x","category":"food","rating":4,"message":"first","timestamp":"2024-01-01T10:00:00Z"}`,
		`{"name":"B","email":"b@x","category":"wifi","rating":2,"message":"second","timestamp":"2024-01-02T10:00:00Z"}`,
		`{"name":"C","email":"c@x","category":"food","rating":5,"message":"third","timestamp":"2024-01-03T10:00:00Z"}`,
	} {
		if rec := do(t, router, http.MethodPost, "/api/feedback", body); rec.Code != http.StatusCreated {
			t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
		}
	}
	if store.feedback[0].Status != models.FeedbackStatusNew {
		t.Errorf("Status = %q, want new", store.feedback[0].Status)
	}

	rec := do(t, router, http.MethodGet, "/api/feedback", "")
	var entries []models.FeedbackEntry
	decode(t, rec, &entries)
	if len(entries) != 3 || entries[0].Message != "third" || entries[2].Message != "first" {
		t.Errorf("entries not newest first: %+v", entries)
	}

	rec = do(t, router, http.MethodGet, "/api/feedback/stats", "")
	var stats models.FeedbackStats
	decode(t, rec, &stats)
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.AverageRating < 3.66 || stats.AverageRating > 3.67 {
		t.Errorf("AverageRating = %v, want 11/3", stats.AverageRating)
	}
	if len(stats.Categories) != 2 || stats.Categories[0] != (models.GroupCount{ID: "food", Count: 2}) {
		t.Errorf("Categories = %+v", stats.Categories)
	}
}

func TestAnalytics_InterviewCandidatesAndDetailed(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	for _, body := range []string{
		`{"studentId":"S1","name":"A","email":"a@x","year":"1","department":"CS","program":"BS","topPriorities":["wifi","library"],"contactForInterview":true,"budgetAllocation":{"academics":40,"technology":60}}`,
		`{"studentId":"S2","name":"B","email":"b@x","year":"2","department":"EE","program":"BS","topPriorities":["wifi"],"budgetAllocation":{"academics":20,"technology":40}}`,
	} {
		if rec := do(t, router, http.MethodPost, "/api/survey", body); rec.Code != http.StatusCreated {
			t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
		}
	}

	rec := do(t, router, http.MethodGet, "/api/analytics/interview-candidates", "")
	var raw []map[string]interface{}
	decode(t, rec, &raw)
	if len(raw) != 1 {
		t.Fatalf("got %d candidates, want 1", len(raw))
	}
	if len(raw[0]) != len(models.InterviewCandidateFields) {
		t.Errorf("candidate has fields %v, want only %v", raw[0], models.InterviewCandidateFields)
	}
	if _, ok := raw[0]["studentId"]; ok {
		t.Error("candidate exposes studentId")
	}

	rec = do(t, router, http.MethodGet, "/api/analytics/detailed", "")
	var detailed models.DetailedAnalytics
	decode(t, rec, &detailed)

	var sum int64
	for _, g := range detailed.PriorityAnalysis {
		sum += g.Count
	}
	if sum != 3 {
		t.Errorf("priority counts sum to %d, want 3", sum)
	}
	if detailed.PriorityAnalysis[0] != (models.GroupCount{ID: "wifi", Count: 2}) {
		t.Errorf("top priority = %+v, want wifi x2", detailed.PriorityAnalysis[0])
	}
	if len(detailed.BudgetAnalysis) != 1 {
		t.Fatalf("BudgetAnalysis = %+v, want one row", detailed.BudgetAnalysis)
	}
	if got := detailed.BudgetAnalysis[0]; got.AvgAcademics != 30 || got.AvgTechnology != 50 || got.AvgSupport != 0 {
		t.Errorf("budget averages = %+v", got)
	}
}

func TestAnalytics_EmptyStore(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	rec := do(t, router, http.MethodGet, "/api/analytics/detailed", "")
	if body := strings.TrimSpace(rec.Body.String()); body != `{"priorityAnalysis":[],"budgetAnalysis":[]}` {
		t.Errorf("body = %s", body)
	}

	rec = do(t, router, http.MethodGet, "/api/analytics/interview-candidates", "")
	if body := strings.TrimSpace(rec.Body.String()); body != `[]` {
		t.Errorf("body = %s", body)
	}
}

func TestDatabaseDown(t *testing.T) {
	router := newTestRouter(&memoryStore{down: true})

	for _, path := range []string{
		"/api/analytics/overview",
		"/api/analytics/interview-candidates",
		"/api/analytics/detailed",
		"/api/feedback",
		"/api/feedback/stats",
	} {
		if rec := do(t, router, http.MethodGet, path, ""); rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s status = %d, want 500", path, rec.Code)
		}
	}

	rec := do(t, router, http.MethodPost, "/api/survey", surveyS1)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST /api/survey status = %d, want 400", rec.Code)
	}
	var body dto.ErrorResponse
	decode(t, rec, &body)
	if !strings.Contains(body.Error, "database not connected") {
		t.Errorf("error = %q", body.Error)
	}

	rec = do(t, router, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	var health dto.HealthResponse
	decode(t, rec, &health)
	if health.Database != models.DatabaseDisconnected {
		t.Errorf("Database = %q, want Disconnected", health.Database)
	}
}

func TestHealth_Connected(t *testing.T) {
	router := newTestRouter(&memoryStore{})

	rec := do(t, router, http.MethodGet, "/api/health", "")
	var health dto.HealthResponse
	decode(t, rec, &health)
	if health.Status != controllers.HealthStatusOK || health.Database != models.DatabaseConnected {
		t.Errorf("health = %+v", health)
	}
	if health.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}

	rec = do(t, router, http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK {
		t.Errorf("ping status = %d", rec.Code)
	}
}

func TestSubmitSurvey_CoercesScalarTypes(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)

	body := `{"studentId":1001,"name":"A","email":"a@x.com","year":2,"department":"CS","program":"BS","labAccess":"3","contactForInterview":"true"}`
	rec := do(t, router, http.MethodPost, "/api/survey", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	got := store.surveys[0]
	if got.StudentID != "1001" || got.Year != "2" {
		t.Errorf("studentId, year = %q, %q, want \"1001\", \"2\"", got.StudentID, got.Year)
	}
	if got.LabAccess == nil || *got.LabAccess != 3 {
		t.Errorf("LabAccess = %v, want 3", got.LabAccess)
	}
	if !got.ContactForInterview {
		t.Error("ContactForInterview = false, want true")
	}

	rec = do(t, router, http.MethodGet, "/api/analytics/overview", "")
	var overview models.SurveyOverview
	decode(t, rec, &overview)
	if len(overview.ByYear) != 1 || overview.ByYear[0] != (models.GroupCount{ID: "2", Count: 1}) {
		t.Errorf("ByYear = %+v, want [{2 1}]", overview.ByYear)
	}
}

func TestSubmitFeedback_RatingCoercion(t *testing.T) {
	tests := []struct {
		name     string
		rating   string
		wantCode int
	}{
		{"numeric string", `"4"`, http.StatusCreated},
		{"integral float", `4.0`, http.StatusCreated},
		{"fractional", `4.5`, http.StatusBadRequest},
		{"string out of range", `"6"`, http.StatusBadRequest},
		{"not a number", `"great"`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			router := newTestRouter(store)

			body := `{"name":"A","email":"a@x","category":"food","message":"m","rating":` + tt.rating + `}`
			rec := do(t, router, http.MethodPost, "/api/feedback", body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode == http.StatusCreated {
				if store.feedback[0].Rating != 4 {
					t.Errorf("Rating = %d, want 4", store.feedback[0].Rating)
				}
				return
			}
			var errBody dto.ErrorResponse
			decode(t, rec, &errBody)
			if !strings.Contains(errBody.Error, "rating") {
				t.Errorf("error = %q, want it to name rating", errBody.Error)
			}
			if strings.Contains(errBody.Error, "Go struct") {
				t.Errorf("error leaks decoder details: %q", errBody.Error)
			}
			if len(store.feedback) != 0 {
				t.Errorf("stored %d entries, want 0", len(store.feedback))
			}
		})
	}
}

func TestSubmitFeedback_IgnoresClientStatusAndResponse(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(store)

	body := `{"name":"A","email":"a@x","category":"food","rating":3,"message":"m","status":"resolved","response":"fixed"}`
	if rec := do(t, router, http.MethodPost, "/api/feedback", body); rec.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if got := store.feedback[0]; got.Status != models.FeedbackStatusNew || got.Response != nil {
		t.Errorf("stored status %q response %v, want new and no response", got.Status, got.Response)
	}
}
