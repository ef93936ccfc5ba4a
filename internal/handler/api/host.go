package api

import (
	"context"
	"log/slog"
	"time"

	resdto "scan-bridge/internal/handler/dto/response"
	"scan-bridge/internal/infra/hostui"
	"scan-bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type HostHandler struct {
	control  usecase.CaptureControl
	hub      *hostui.Hub
	upgrader *websocket.Upgrader
	logger   *slog.Logger
}

func NewHostHandler(control usecase.CaptureControl, hub *hostui.Hub, upgrader *websocket.Upgrader, logger *slog.Logger) *HostHandler {
	return &HostHandler{control: control, hub: hub, upgrader: upgrader, logger: logger}
}

// @Summary Host UI socket
// @Description WebSocket pushing capture state transitions and acknowledgment cues to the native shell
// @Tags host
// @Router /api/host/ws [get]
func (h *HostHandler) Socket(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("host socket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	h.hub.AddConnection(ws)
	defer h.hub.RemoveConnection(ws)

	if st, err := h.control.Snapshot(c.Request.Context()); err == nil {
		if err := h.hub.Send(ws, stateEvent(st)); err != nil {
			return
		}
	}

	// inbound frames are ignored; reading detects the close
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// RelayState pushes every capture state transition to the host UI until ctx ends or
// the broker stops.
func (h *HostHandler) RelayState(ctx context.Context) error {
	states, err := h.control.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for st := range states {
			h.hub.Broadcast(stateEvent(st))
		}
	}()
	return nil
}

func stateEvent(st usecase.CaptureState) hostui.Event {
	return hostui.Event{
		Type:  hostui.EventState,
		State: resdto.FromCaptureState(st),
		Time:  time.Now(),
	}
}
