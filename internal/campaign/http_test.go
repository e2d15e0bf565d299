package campaign

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campaign-docs/internal/auditlog"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logs := auditlog.NewService(auditlog.NewMemoryRepo())
	svc := NewService(logs)

	r := gin.New()
	Handler{Service: svc, Logs: logs}.Register(r.Group("/v1/campaigns"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{
	"name": "Summer Launch",
	"type": "Institutional",
	"actionNumber": "ACT-2024-001",
	"projectNumber": "PRJ-778",
	"totalDisbursement": 1500.5,
	"plannedStartDate": "2024-12-01"
}`

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return env
}

func TestCreateCampaignEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/campaigns", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	if !env.Success {
		t.Fatalf("success = false: %s", w.Body.String())
	}

	var got Campaign
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.ID != 1 || got.Name != "Summer Launch" {
		t.Fatalf("data = %+v", got)
	}
}

func TestCreateCampaignValidationError(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/campaigns", `{"name": "only a name"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decode(t, w)
	if env.Success {
		t.Fatal("success should be false")
	}
	if env.Error == "" {
		t.Fatal("error message expected")
	}
}

func TestListCampaignsEnvelope(t *testing.T) {
	r := newTestRouter(t)

	// Empty store lists as [] with total 0, never null.
	w := doJSON(t, r, http.MethodGet, "/v1/campaigns", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	env := decode(t, w)
	if string(env.Data) != "[]" {
		t.Fatalf("data = %s, want []", env.Data)
	}
	if env.Total == nil || *env.Total != 0 {
		t.Fatalf("total = %v, want 0", env.Total)
	}

	doJSON(t, r, http.MethodPost, "/v1/campaigns", createBody)
	w = doJSON(t, r, http.MethodGet, "/v1/campaigns", "")
	env = decode(t, w)
	if env.Total == nil || *env.Total != 1 {
		t.Fatalf("total = %v, want 1", env.Total)
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/campaigns/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetCampaignInvalidID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/campaigns/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateCampaignEndpoint(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/v1/campaigns", createBody)

	w := doJSON(t, r, http.MethodPatch, "/v1/campaigns/1", `{"name": "Renamed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	env := decode(t, w)

	var got Campaign
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Name != "Renamed" || got.ActionNumber != "ACT-2024-001" {
		t.Fatalf("data = %+v", got)
	}
}

func TestDeleteThenLogsStillServed(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/v1/campaigns", createBody)

	w := doJSON(t, r, http.MethodDelete, "/v1/campaigns/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	// History survives the delete; the logs route does not 404.
	w = doJSON(t, r, http.MethodGet, "/v1/campaigns/1/logs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("logs status = %d", w.Code)
	}
	env := decode(t, w)
	if env.Total == nil || *env.Total != 2 {
		t.Fatalf("total = %v, want 2", env.Total)
	}
}

func TestSearchEndpoints(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/v1/campaigns", createBody)

	w := doJSON(t, r, http.MethodGet, "/v1/campaigns/search/action-number?q=act-2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	env := decode(t, w)
	if env.Total == nil || *env.Total != 1 {
		t.Fatalf("total = %v, want 1", env.Total)
	}

	w = doJSON(t, r, http.MethodGet, "/v1/campaigns/search/project-number?q=missing", "")
	env = decode(t, w)
	if env.Total == nil || *env.Total != 0 {
		t.Fatalf("total = %v, want 0", env.Total)
	}
}
