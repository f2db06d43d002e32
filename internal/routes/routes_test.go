package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnav/edutech_backend_v1/internal/assistant"
	"github.com/vaishnav/edutech_backend_v1/internal/auth"
	"github.com/vaishnav/edutech_backend_v1/internal/config"
	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/metrics"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
	"github.com/vaishnav/edutech_backend_v1/internal/ws"
)

// 2024-02-20 10:00 UTC: the seeded Physics/Mathematics due dates fall around it.
var testNow = time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)

type testServer struct {
	r        *gin.Engine
	store    *database.Store
	sessions *session.Manager
}

func newTestServer(t *testing.T, opts ...session.Option) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppEnv:           "test",
		JWTSecret:        "test-secret",
		JWTExpiresIn:     "60",
		DemoUsers:        "student:student123:student,admin:admin123:admin",
		GenAIEnabled:     "false",
		CORSAllowOrigins: "*",
		Timezone:         "UTC",
	}
	store := database.Open()
	database.Seed(store)

	accounts, err := auth.ParseAccounts(cfg.DemoUsers)
	require.NoError(t, err)
	provider, err := auth.NewStaticProvider(accounts, 4)
	require.NoError(t, err)

	reg := metrics.New()
	hub := ws.NewChatHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	sessions := session.NewManager(provider, opts...)
	r := gin.New()
	Register(r, Deps{
		Cfg:       cfg,
		Store:     store,
		Sessions:  sessions,
		Assistant: assistant.New(nil, time.Second, nil, reg),
		Hub:       hub,
		Metrics:   reg,
		Now:       func() time.Time { return testNow },
	})
	return &testServer{r: r, store: store, sessions: sessions}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.r.ServeHTTP(w, req)
	return w
}

func (ts *testServer) upload(t *testing.T, path, token, filename string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("contents"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	ts.r.ServeHTTP(w, req)
	return w
}

func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type httpTest struct {
	name   string
	method string
	path   string
	body   any
	status int
}

func TestLoginFailureLeavesClientUnauthenticated(t *testing.T) {
	ts := newTestServer(t)

	tests := []httpTest{
		{"unknown user", http.MethodPost, "/api/v1/auth/login", gin.H{"username": "ghost", "password": "student123"}, http.StatusUnauthorized},
		{"wrong password", http.MethodPost, "/api/v1/auth/login", gin.H{"username": "student", "password": "nope"}, http.StatusUnauthorized},
		{"missing password", http.MethodPost, "/api/v1/auth/login", gin.H{"username": "student"}, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.do(t, tc.method, tc.path, "", tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.NotContains(t, w.Body.String(), "access_token")
		})
	}

	w := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "ghost", "password": "x"})
	assert.Equal(t, "Invalid username or password", decode(t, w)["error"])

	health := decode(t, ts.do(t, http.MethodGet, "/healthz", "", nil))
	assert.Equal(t, 0.0, health["sessions"])
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "student", "student123")

	me := ts.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "student", decode(t, me)["role"])
	assert.Equal(t, "/api/v1/student/dashboard", decode(t, me)["dashboard"])

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/student/dashboard", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodGet, "/api/v1/admin/dashboard", token, nil).Code)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/api/v1/auth/me", token, nil).Code)
	// logout without a session still succeeds
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/v1/auth/logout", "", nil).Code)
}

func TestStudentDashboard(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "student", "student123")

	dash := decode(t, ts.do(t, http.MethodGet, "/api/v1/student/dashboard", token, nil))
	assert.Equal(t, 100.0, dash["discipline_score"])
	assert.Equal(t, "A", dash["academic_grade"])

	w := ts.do(t, http.MethodPost, "/api/v1/student/dashboard/section", token, gin.H{"section": "ATTENDANCE"})
	require.Equal(t, http.StatusOK, w.Code)
	view := decode(t, w)["view"].(map[string]any)
	assert.Equal(t, "attendance", view["current_view"])

	w = ts.do(t, http.MethodPut, "/api/v1/student/dashboard/language", token, gin.H{"language": "Hindi"})
	require.Equal(t, http.StatusOK, w.Code)
	view = decode(t, w)["view"].(map[string]any)
	assert.Equal(t, "Hindi", view["selected_language"])

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPut, "/api/v1/student/dashboard/language", token, gin.H{"language": "Latin"}).Code)

	w = ts.do(t, http.MethodPost, "/api/v1/student/dashboard/back", token, nil)
	view = decode(t, w)["view"].(map[string]any)
	assert.Equal(t, "dashboard", view["current_view"])
}

func TestAdminDashboardSearch(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin", "admin123")

	w := ts.do(t, http.MethodGet, "/api/v1/admin/dashboard?q=10-a", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	students := decode(t, w)["recent_students"].([]any)
	assert.Len(t, students, 2)

	// search term sticks to the session
	w = ts.do(t, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	assert.Len(t, decode(t, w)["recent_students"].([]any), 2)

	w = ts.do(t, http.MethodPost, "/api/v1/admin/dashboard/tab", token, gin.H{"tab": "events"})
	view := decode(t, w)["view"].(map[string]any)
	assert.Equal(t, "events", view["current_view"])
}

func TestCreateAssignment(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin", "admin123")

	w := ts.do(t, http.MethodPost, "/api/v1/admin/assignments", token, gin.H{"title": "Lab", "subject": "Biology"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill in all required fields", decode(t, w)["error"])

	form := gin.H{
		"title":           "Biology Worksheet",
		"description":     "Cell structure questions.",
		"subject":         "Biology",
		"due_date":        "2024-02-20",
		"due_time":        "08:00",
		"total_marks":     "40",
		"max_submissions": "",
	}
	w = ts.do(t, http.MethodPost, "/api/v1/admin/assignments", token, form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, 6.0, created["id"])
	assert.Equal(t, "live", created["status"], "due today is live even if the time has passed")
	assert.Equal(t, 40.0, created["total_marks"])
	assert.Equal(t, 0.0, created["submissions"])
	assert.Equal(t, "admin", created["created_by"])
	assert.Equal(t, "2024-02-20", created["created_date"])
	assert.NotContains(t, created, "max_submissions")

	form["due_date"] = "2024-02-01"
	w = ts.do(t, http.MethodPost, "/api/v1/admin/assignments", token, form)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 7.0, decode(t, w)["id"])
	assert.Equal(t, "overdue", decode(t, w)["status"])

	form["due_date"] = "01/02/2024"
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/admin/assignments", token, form).Code)

	// edit re-derives the status
	form["due_date"] = "2024-03-10"
	w = ts.do(t, http.MethodPut, "/api/v1/admin/assignments/4", token, form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", decode(t, w)["status"])

	list := decode(t, ts.do(t, http.MethodGet, "/api/v1/assignments?status=overdue", token, nil))
	assert.Len(t, list["data"].([]any), 1)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodDelete, "/api/v1/admin/assignments/7", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/assignments/7", token, nil).Code)
}

func TestCreateEvent(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin", "admin123")

	form := gin.H{
		"title":            "Debate",
		"description":      "Inter-class debate.",
		"date":             "2024-02-20",
		"time":             "23:00",
		"location":         "Hall B",
		"max_participants": 40,
	}
	cases := []struct {
		date string
		id   float64
		typ  string
	}{
		{"2024-02-20", 6, "live"},
		{"2024-01-05", 7, "completed"},
		{"2024-04-01", 8, "upcoming"},
	}
	for _, tc := range cases {
		form["date"] = tc.date
		w := ts.do(t, http.MethodPost, "/api/v1/admin/events", token, form)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		ev := decode(t, w)
		assert.Equal(t, tc.id, ev["id"])
		assert.Equal(t, tc.typ, ev["type"])
		assert.Equal(t, "open", ev["status"])
		assert.Equal(t, 0.0, ev["participants"])
	}

	form["status"] = "postponed"
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/admin/events", token, form).Code)

	delete(form, "location")
	w := ts.do(t, http.MethodPost, "/api/v1/admin/events", token, form)
	assert.Equal(t, "Please fill in all required fields", decode(t, w)["error"])
}

func TestUploads(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "student", "student123")

	w := ts.upload(t, "/api/v1/student/attendance/leave-letter", token, "sick_note.PNG")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Leave letter uploaded successfully!", decode(t, w)["message"])

	assert.Equal(t, http.StatusUnsupportedMediaType, ts.upload(t, "/api/v1/student/events/od-form", token, "od.png").Code)
	assert.Equal(t, http.StatusCreated, ts.upload(t, "/api/v1/student/events/certificate", token, "cert.jpeg").Code)

	w = ts.upload(t, "/api/v1/student/assignments/1/submissions", token, "answers.pdf")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sub := decode(t, w)["submission"].(map[string]any)
	assert.Equal(t, 5.0, sub["id"])
	assert.Equal(t, "answers.pdf", sub["file_name"])
	assert.Equal(t, "submitted", sub["status"])

	assert.Equal(t, http.StatusUnsupportedMediaType, ts.upload(t, "/api/v1/student/assignments/1/submissions", token, "virus.exe").Code)
	assert.Equal(t, http.StatusConflict, ts.upload(t, "/api/v1/student/assignments/3/submissions", token, "late.pdf").Code)

	a, err := ts.store.GetAssignment(1)
	require.NoError(t, err)
	assert.Equal(t, 26, a.Submissions)
	assert.Len(t, ts.store.ListUploads("student"), 3)
}

func TestGradingAndCertificates(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin", "admin123")

	w := ts.do(t, http.MethodPut, "/api/v1/admin/submissions/3/grade", token, gin.H{"marks": 70, "feedback": "Solid"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "graded", decode(t, w)["status"])

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPut, "/api/v1/admin/submissions/3/grade", token, gin.H{"marks": 100}).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPut, "/api/v1/admin/submissions/99/grade", token, gin.H{"marks": 1}).Code)

	issued := decode(t, ts.do(t, http.MethodGet, "/api/v1/certificates?status=issued", token, nil))
	assert.Len(t, issued["data"].([]any), 2)

	w = ts.do(t, http.MethodPost, "/api/v1/admin/certificates/4/issue", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cert := decode(t, w)
	assert.Equal(t, "issued", cert["status"])
	assert.Equal(t, "2024-02-20", cert["issue_date"])
}

func TestAssistantMessages(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "student", "student123")

	w := ts.do(t, http.MethodPost, "/api/v1/student/assistant/messages", token, gin.H{"message": "What are my CIA 2 marks?"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bot := decode(t, w)
	assert.Equal(t, "bot", bot["sender"])
	assert.Equal(t, 5.0, bot["id"])
	assert.True(t, strings.HasPrefix(bot["message"].(string), "CIA 2 (2024) marks:\n- Mathematics: 45/50"))

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/api/v1/student/assistant/messages", token, gin.H{"message": "  "}).Code)

	msgs := decode(t, ts.do(t, http.MethodGet, "/api/v1/student/assistant/messages", token, nil))
	assert.Len(t, msgs["data"].([]any), 5)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t, "student", "student123")

	w := ts.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `edutech_logins_total{outcome="success"} 1`)
}

func TestExpiredSessionsAreDropped(t *testing.T) {
	now := time.Now()
	ts := newTestServer(t, session.WithTTL(time.Hour), session.WithClock(func() time.Time { return now }))

	tokens := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		tokens = append(tokens, ts.login(t, "student", "student123"))
	}
	require.Equal(t, 5, ts.sessions.Count())

	now = now.Add(2 * time.Hour)
	w := ts.do(t, http.MethodGet, "/api/v1/auth/me", tokens[0], nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 4, ts.sessions.Count())

	for _, tok := range tokens[1:] {
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/v1/auth/logout", tok, nil).Code)
	}
	assert.Equal(t, 0, ts.sessions.Count())
}

func TestPaginationBounds(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin", "admin123")

	tests := []struct {
		name  string
		query string
		rows  int
		limit float64
	}{
		{"huge limit", "?page=3&limit=9223372036854775807", 0, 100},
		{"huge page", "?page=9223372036854775807&limit=2", 0, 2},
		{"first page", "?page=1&limit=2", 2, 2},
		{"past the end", "?page=50", 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/api/v1/certificates"+tt.query, token, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			body := decode(t, w)
			assert.Len(t, body["data"].([]any), tt.rows)
			assert.Equal(t, tt.limit, body["meta"].(map[string]any)["limit"])
		})
	}
}
