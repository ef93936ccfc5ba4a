package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"scan-bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChannelAuth admits embedded content that presents a bridge channel token.
type ChannelAuth struct {
	endpoint usecase.BridgeEndpoint
}

const (
	ctxChannelIDKey = "channel_id"
	tokenQueryParam = "token"
)

func NewChannelAuth(endpoint usecase.BridgeEndpoint) *ChannelAuth {
	return &ChannelAuth{
		endpoint: endpoint,
	}
}

func (m *ChannelAuth) RequireChannel() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		// browsers cannot set headers on a websocket handshake
		if token == "" {
			token = c.Query(tokenQueryParam)
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Channel token required",
			})
			c.Abort()
			return
		}

		channelID, err := m.endpoint.Authorize(token)
		if err != nil {
			slog.Warn("Channel token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired channel token",
			})
			c.Abort()
			return
		}

		c.Set(ctxChannelIDKey, channelID)
		c.Next()
	}
}

func GetChannelID(c *gin.Context) (uuid.UUID, bool) {
	channelID, exists := c.Get(ctxChannelIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := channelID.(uuid.UUID)
	return id, ok
}
