package resumes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:             "0",
		Env:              "dev",
		JWTSecret:        "test-secret",
		CORSAllowOrigins: []string{"http://localhost:3000"},
		MaxBodyBytes:     1 << 20,
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerUser(t *testing.T, router *gin.Engine, name, email string) (userID, token string) {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, resp.Code, resp.Body.String())
	}
	var out struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return out.User.ID, out.Token
}

type resumeResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Title      string          `json:"title"`
	ResumeData json.RawMessage `json:"resumeData"`
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
}

func createResume(t *testing.T, router *gin.Engine, token, title string, data any) resumeResponse {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/resumes", token, map[string]any{
		"title": title, "resumeData": data,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create resume: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var out resumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return out
}

func TestResumeCRUD(t *testing.T) {
	router := newTestRouter(t)
	annID, annToken := registerUser(t, router, "Ann", "ann@x.com")

	created := createResume(t, router, annToken, "CV", map[string]any{"skills": []string{"go"}})
	if created.ID == "" || created.UserID != annID {
		t.Fatalf("unexpected created resume: %+v", created)
	}

	respGet := doJSON(t, router, http.MethodGet, "/api/resumes/"+created.ID, annToken, nil)
	if respGet.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", respGet.Code)
	}

	respUpdate := doJSON(t, router, http.MethodPut, "/api/resumes/"+created.ID, annToken, map[string]any{
		"title": "Better CV",
	})
	if respUpdate.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", respUpdate.Code, respUpdate.Body.String())
	}
	var updated resumeResponse
	if err := json.NewDecoder(respUpdate.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Title != "Better CV" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	var data struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal(updated.ResumeData, &data); err != nil {
		t.Fatalf("decode resume data: %v", err)
	}
	if len(data.Skills) != 1 || data.Skills[0] != "go" {
		t.Fatalf("title-only update must leave resumeData unchanged: %s", string(updated.ResumeData))
	}
	if !(updated.UpdatedAt > created.UpdatedAt) {
		t.Fatalf("updatedAt must increase: %s -> %s", created.UpdatedAt, updated.UpdatedAt)
	}

	respDelete := doJSON(t, router, http.MethodDelete, "/api/resumes/"+created.ID, annToken, nil)
	if respDelete.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", respDelete.Code)
	}
	respGone := doJSON(t, router, http.MethodGet, "/api/resumes/"+created.ID, annToken, nil)
	if respGone.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", respGone.Code)
	}
}

func TestResumeOwnershipOpacity(t *testing.T) {
	router := newTestRouter(t)
	_, annToken := registerUser(t, router, "Ann", "ann@x.com")
	_, bobToken := registerUser(t, router, "Bob", "bob@x.com")

	created := createResume(t, router, annToken, "CV", map[string]any{"skills": []any{}})

	missingID := "99999999-9999-9999-9999-999999999999"
	for _, tc := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/resumes/" + created.ID, nil},
		{http.MethodPut, "/api/resumes/" + created.ID, map[string]any{"title": "Stolen"}},
		{http.MethodDelete, "/api/resumes/" + created.ID, nil},
	} {
		foreign := doJSON(t, router, tc.method, tc.path, bobToken, tc.body)
		missing := doJSON(t, router, tc.method, "/api/resumes/"+missingID, bobToken, tc.body)
		if foreign.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404 for foreign resume, got %d", tc.method, tc.path, foreign.Code)
		}
		if foreign.Code != missing.Code || foreign.Body.String() != missing.Body.String() {
			t.Fatalf("%s: foreign and missing resumes must be indistinguishable", tc.method)
		}
	}

	// Ann still owns an intact resume.
	respGet := doJSON(t, router, http.MethodGet, "/api/resumes/"+created.ID, annToken, nil)
	if respGet.Code != http.StatusOK {
		t.Fatalf("owner get: expected 200, got %d", respGet.Code)
	}
}

func TestResumeListOrdering(t *testing.T) {
	router := newTestRouter(t)
	_, annToken := registerUser(t, router, "Ann", "ann@x.com")

	respEmpty := doJSON(t, router, http.MethodGet, "/api/resumes", annToken, nil)
	if respEmpty.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", respEmpty.Code)
	}
	var empty []resumeResponse
	if err := json.NewDecoder(respEmpty.Body).Decode(&empty); err != nil {
		t.Fatalf("decode empty list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d items", len(empty))
	}

	var ids []string
	for i := 0; i < 3; i++ {
		created := createResume(t, router, annToken, fmt.Sprintf("CV %d", i), map[string]any{"n": i})
		ids = append(ids, created.ID)
	}
	// Touch the first one so it becomes the most recent.
	doJSON(t, router, http.MethodPut, "/api/resumes/"+ids[0], annToken, map[string]any{"title": "CV 0 again"})

	respList := doJSON(t, router, http.MethodGet, "/api/resumes", annToken, nil)
	var out []resumeResponse
	if err := json.NewDecoder(respList.Body).Decode(&out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 resumes, got %d", len(out))
	}
	if out[0].ID != ids[0] {
		t.Fatalf("expected most recently updated first, got %s", out[0].ID)
	}
	for i := 1; i < len(out); i++ {
		if out[i].UpdatedAt > out[i-1].UpdatedAt {
			t.Fatalf("list not ordered by updatedAt descending")
		}
	}
}

func TestResumeValidationAndAuth(t *testing.T) {
	router := newTestRouter(t)
	_, annToken := registerUser(t, router, "Ann", "ann@x.com")

	respNoData := doJSON(t, router, http.MethodPost, "/api/resumes", annToken, map[string]any{
		"title": "CV",
	})
	if respNoData.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without resumeData, got %d", respNoData.Code)
	}
	respNoTitle := doJSON(t, router, http.MethodPost, "/api/resumes", annToken, map[string]any{
		"resumeData": map[string]any{},
	})
	if respNoTitle.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without title, got %d", respNoTitle.Code)
	}

	respNoToken := doJSON(t, router, http.MethodGet, "/api/resumes", "", nil)
	if respNoToken.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", respNoToken.Code)
	}
	respBadToken := doJSON(t, router, http.MethodGet, "/api/resumes", "garbage", nil)
	if respBadToken.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token on resume routes, got %d", respBadToken.Code)
	}
}
