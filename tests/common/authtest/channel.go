//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"scan-bridge/internal/pkg/config"
	"scan-bridge/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type ChannelTokenHelper struct {
	cfg config.BridgeConfig
}

func NewChannelTokenHelper(cfg config.BridgeConfig) *ChannelTokenHelper {
	return &ChannelTokenHelper{cfg: cfg}
}

func (h *ChannelTokenHelper) GenerateToken(t *testing.T, channelID uuid.UUID, origin string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.TokenSecret, h.cfg.TokenDuration)
	token, err := service.GenerateToken(channelID, origin)
	require.NoError(t, err)
	return token
}

func (h *ChannelTokenHelper) CreateExpiredToken(t *testing.T, channelID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.TokenSecret, time.Millisecond)
	token, err := service.GenerateToken(channelID, "https://content.example.com")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
