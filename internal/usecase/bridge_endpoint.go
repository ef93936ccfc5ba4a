package usecase

import (
	"context"
	"log/slog"

	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/pkg/jwt"

	"github.com/google/uuid"
)

type BridgeChannel struct {
	ID     uuid.UUID
	Origin string
	Token  string
}

// BridgeEndpoint is the only entry point embedded content has into the host. A
// channel is issued when the content view is created; every scan call names it.
type BridgeEndpoint interface {
	OpenChannel(origin string) (*BridgeChannel, error)
	Authorize(token string) (uuid.UUID, error)
	// RequestScan always returns: "" means no result (denied, dismissed, timed out,
	// superseded or shutting down).
	RequestScan(ctx context.Context, channelID uuid.UUID, reason string) string
}

//go:generate mockgen -source=bridge_endpoint.go -destination=../../tests/mock/usecase/mock_bridge_endpoint.go -package=usecasemock

type ScanRequester interface {
	RequestScan(ctx context.Context, channelID uuid.UUID, reason string) (string, error)
}

type bridgeEndpointImpl struct {
	requester  ScanRequester
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewBridgeEndpoint(requester ScanRequester, jwtService *jwt.Service, logger *slog.Logger) BridgeEndpoint {
	if logger == nil {
		logger = slog.Default()
	}
	return &bridgeEndpointImpl{
		requester:  requester,
		jwtService: jwtService,
		logger:     logger.With("component", "bridge"),
	}
}

func (e *bridgeEndpointImpl) OpenChannel(origin string) (*BridgeChannel, error) {
	id := uuid.New()
	token, err := e.jwtService.GenerateToken(id, origin)
	if err != nil {
		return nil, errs.Wrap(err, "issue bridge channel token")
	}
	e.logger.Info("bridge channel opened", "channel_id", id, "origin", origin)
	return &BridgeChannel{ID: id, Origin: origin, Token: token}, nil
}

func (e *bridgeEndpointImpl) Authorize(token string) (uuid.UUID, error) {
	claims, err := e.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidChannelToken)
	}
	return claims.ChannelID, nil
}

func (e *bridgeEndpointImpl) RequestScan(ctx context.Context, channelID uuid.UUID, reason string) string {
	value, err := e.requester.RequestScan(ctx, channelID, reason)
	if err != nil {
		e.logger.Warn("scan request not admitted", "channel_id", channelID, "error", err)
		return ""
	}
	return value
}
