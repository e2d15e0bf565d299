package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/auth"

	"github.com/gin-gonic/gin"
)

func seededLogsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logs := auditlog.NewService(auditlog.NewMemoryRepo())
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	logs.SetClock(func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Hour)
	})

	ctx := context.Background()
	logs.RecordCreate(auth.WithActor(ctx, "alice"), "Campaign", 1, nil)      // t+1h
	logs.RecordCreate(auth.WithActor(ctx, "bob"), "CreativeContent", 1, nil) // t+2h
	logs.RecordUpdate(auth.WithActor(ctx, "alice"), "Campaign", 1, nil, nil) // t+3h

	r := gin.New()
	LogsHandler{Logs: logs}.Register(r.Group("/v1/logs"))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeLogs(t *testing.T, w *httptest.ResponseRecorder) (int, []auditlog.Entry) {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Total   *int            `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	var entries []auditlog.Entry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if env.Total == nil {
		t.Fatal("total missing")
	}
	return *env.Total, entries
}

func TestLogsAllNewestFirst(t *testing.T) {
	r := seededLogsRouter(t)

	w := get(t, r, "/v1/logs")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	total, entries := decodeLogs(t, w)
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if entries[0].ID != 3 || entries[2].ID != 1 {
		t.Fatalf("ids = %d..%d, want 3..1", entries[0].ID, entries[2].ID)
	}
}

func TestLogsByEntity(t *testing.T) {
	r := seededLogsRouter(t)

	w := get(t, r, "/v1/logs/entity?type=Campaign&id=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	total, _ := decodeLogs(t, w)
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}

	// Type is mandatory.
	w = get(t, r, "/v1/logs/entity?id=1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogsByUser(t *testing.T) {
	r := seededLogsRouter(t)

	w := get(t, r, "/v1/logs/user?userId=bob")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	total, entries := decodeLogs(t, w)
	if total != 1 || entries[0].EntityType != "CreativeContent" {
		t.Fatalf("total = %d, entries = %+v", total, entries)
	}

	w = get(t, r, "/v1/logs/user")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogsByDateRange(t *testing.T) {
	r := seededLogsRouter(t)

	// Inclusive bounds; plain dates are accepted.
	w := get(t, r, "/v1/logs/date-range?startDate=2024-06-01T02:00:00Z&endDate=2024-06-01T03:00:00Z")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	total, _ := decodeLogs(t, w)
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}

	w = get(t, r, "/v1/logs/date-range?startDate=not-a-date&endDate=2024-06-02")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
