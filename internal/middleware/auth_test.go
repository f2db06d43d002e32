package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnav/edutech_backend_v1/internal/auth"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
)

func newSessions(t *testing.T) (*session.Manager, *session.Session) {
	t.Helper()
	p, err := auth.NewStaticProvider([]auth.Account{{Username: "student", Password: "pw", Role: models.RoleStudent}}, 4)
	require.NoError(t, err)
	m := session.NewManager(p)
	s, err := m.Login(context.Background(), auth.Credentials{Username: "student", Password: "pw"})
	require.NoError(t, err)
	return m, s
}

func router(m *session.Manager, cfg AuthConfig, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", AuthMiddleware(m, cfg), RequireRoles(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentSession(c).ID)
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	m, s := newSessions(t)
	cfg := AuthConfig{JWTSecret: "secret", JWTExpiresIn: time.Hour}
	r := router(m, cfg, models.RoleStudent)

	token, err := IssueToken(s, cfg, time.Now())
	require.NoError(t, err)

	w := get(r, "/x", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.ID, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x?token="+token, "").Code, "query token only when enabled")

	forged, err := IssueToken(s, AuthConfig{JWTSecret: "other", JWTExpiresIn: time.Hour}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", forged).Code)

	expired, err := IssueToken(s, cfg, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", expired).Code)

	m.Logout(s.ID)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", token).Code)
}

func TestQueryTokenAndRoles(t *testing.T) {
	m, s := newSessions(t)
	cfg := AuthConfig{JWTSecret: "secret", JWTExpiresIn: time.Hour, AllowQueryToken: true}
	token, err := IssueToken(s, cfg, time.Now())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(router(m, cfg, models.RoleStudent), "/x?token="+token, "").Code)
	assert.Equal(t, http.StatusForbidden, get(router(m, cfg, models.RoleAdmin), "/x", token).Code)
}
