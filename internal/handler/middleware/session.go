package middleware

import (
	"log/slog"
	"strings"

	"seapass-bff/internal/pkg/config"
	"seapass-bff/internal/pkg/jwt"
	"seapass-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxBearerKey    = "bearer_token"
	ctxSubjectKey   = "user_id"
	ctxSessionIDKey = "session_id"
)

// SessionMiddleware attaches caller identity without ever rejecting a
// request: a missing or invalid credential just means demo mode. The
// bearer is kept verbatim for forwarding to the upstream backend.
type SessionMiddleware struct {
	tokens *jwt.Service
}

func NewSessionMiddleware(cfg config.AuthConfig) *SessionMiddleware {
	var tokens *jwt.Service
	if cfg.JWTSecret != "" {
		tokens = jwt.NewService(cfg.JWTSecret)
	}
	return &SessionMiddleware{tokens: tokens}
}

func (m *SessionMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := strings.TrimSpace(c.GetHeader("X-Session-ID")); sessionID != "" {
			c.Set(ctxSessionIDKey, sessionID)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		bearer := strings.TrimSpace(authHeader[len("Bearer "):])
		if bearer == "" {
			c.Next()
			return
		}
		c.Set(ctxBearerKey, bearer)

		if m.tokens != nil {
			claims, err := m.tokens.ValidateToken(bearer)
			if err != nil {
				slog.Warn("bearer token rejected, continuing in demo mode", "error", err.Error())
			} else {
				c.Set(ctxSubjectKey, claims.Subject)
			}
		}

		c.Next()
	}
}

func GetBearer(c *gin.Context) string {
	return c.GetString(ctxBearerKey)
}

func GetSubject(c *gin.Context) string {
	return c.GetString(ctxSubjectKey)
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

// AuthFromContext assembles the usecase-facing caller identity.
func AuthFromContext(c *gin.Context) usecase.AuthContext {
	return usecase.AuthContext{
		Bearer:    GetBearer(c),
		Subject:   GetSubject(c),
		SessionID: GetSessionID(c),
	}
}
