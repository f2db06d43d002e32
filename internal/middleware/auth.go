package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
)

const (
	issuer = "edutech_backend_v1"

	// context keys
	UserKey    = "user"
	SessionKey = "session"
)

type AuthConfig struct {
	JWTSecret    string
	JWTExpiresIn time.Duration
	// AllowQueryToken also reads ?token=, for websocket clients that cannot set headers.
	AllowQueryToken bool
}

// Claims only points at server-side session state; logout invalidates the token
// even before it expires.
type Claims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 access token for s.
func IssueToken(s *session.Session, cfg AuthConfig, now time.Time) (string, error) {
	cl := Claims{
		SessionID: s.ID,
		Role:      string(s.User.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTExpiresIn)),
			Subject:   s.User.Username,
			ID:        s.ID,
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString([]byte(cfg.JWTSecret))
	return tok, errors.Wrap(err, "sign access token")
}

func parseToken(tokenStr string, cfg AuthConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func bearerToken(c *gin.Context, allowQuery bool) string {
	auth := c.GetHeader("Authorization")
	if auth != "" && strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	if allowQuery {
		return strings.TrimSpace(c.Query("token"))
	}
	return ""
}

func authenticate(c *gin.Context, sessions *session.Manager, cfg AuthConfig) (*session.Session, string) {
	tokenStr := bearerToken(c, cfg.AllowQueryToken)
	if tokenStr == "" {
		return nil, "missing or invalid authorization header"
	}
	claims, err := parseToken(tokenStr, cfg)
	if err != nil {
		return nil, "invalid token"
	}
	s, ok := sessions.Get(claims.SessionID)
	if !ok {
		return nil, "session expired or logged out"
	}
	return s, ""
}

func AuthMiddleware(sessions *session.Manager, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, msg := authenticate(c, sessions, cfg)
		if s == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set(UserKey, s.User)
		c.Set(SessionKey, s)
		c.Next()
	}
}

// OptionalAuth attaches the session when the token is valid and never aborts.
func OptionalAuth(sessions *session.Manager, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, _ := authenticate(c, sessions, cfg); s != nil {
			c.Set(UserKey, s.User)
			c.Set(SessionKey, s)
		}
		c.Next()
	}
}

// RequireRoles admits only the listed roles. Admin does not implicitly pass student
// routes.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := map[models.Role]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		uVal, ok := c.Get(UserKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		user := uVal.(models.User)
		if _, ok := allowed[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session set by AuthMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}
