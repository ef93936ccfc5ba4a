package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	reqdto "scan-bridge/internal/handler/dto/request"
	resdto "scan-bridge/internal/handler/dto/response"
	"scan-bridge/internal/handler/httperr"
	"scan-bridge/internal/handler/middleware"
	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type BridgeHandler struct {
	endpoint usecase.BridgeEndpoint
	upgrader *websocket.Upgrader
	logger   *slog.Logger
}

func NewBridgeHandler(endpoint usecase.BridgeEndpoint, upgrader *websocket.Upgrader, logger *slog.Logger) *BridgeHandler {
	return &BridgeHandler{endpoint: endpoint, upgrader: upgrader, logger: logger}
}

// @Summary Open bridge channel
// @Description Issue a channel token for a newly created embedded content view
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body reqdto.OpenChannelRequest true "Open channel request"
// @Success 201 {object} resdto.ChannelResponse
// @Failure 400 {object} map[string]string
// @Router /api/bridge/channels [post]
func (h *BridgeHandler) OpenChannel(c *gin.Context) {
	var req reqdto.OpenChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ch, err := h.endpoint.OpenChannel(req.Origin)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to open channel", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBridgeChannel(ch))
}

// @Summary Request scan
// @Description Ask the host to capture one barcode. Blocks until the request settles; an empty result means no value.
// @Tags bridge
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest false "Scan request"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/bridge/scan [post]
func (h *BridgeHandler) RequestScan(c *gin.Context) {
	channelID, ok := middleware.GetChannelID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidChannelToken, "Unauthorized", nil)
		return
	}
	var req reqdto.ScanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	// client disconnect cancels the context, which dismisses the request
	result := h.endpoint.RequestScan(c.Request.Context(), channelID, req.Reason)
	c.JSON(http.StatusOK, resdto.ScanResponse{Result: result})
}

// @Summary Bridge socket
// @Description WebSocket carrying requestScan calls from embedded content. Closing it dismisses outstanding requests.
// @Tags bridge
// @Security BearerAuth
// @Param token query string false "Channel token"
// @Router /api/bridge/ws [get]
func (h *BridgeHandler) Socket(c *gin.Context) {
	channelID, ok := middleware.GetChannelID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidChannelToken, "Unauthorized", nil)
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("bridge socket upgrade failed", "channel_id", channelID, "error", err)
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var (
		wg      sync.WaitGroup
		writeMu sync.Mutex
	)
	reply := func(v resdto.BridgeReply) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := ws.WriteJSON(v); err != nil {
			h.logger.Debug("bridge reply not delivered", "channel_id", channelID, "id", v.ID, "error", err)
		}
	}

	h.logger.Info("bridge socket connected", "channel_id", channelID)
	for {
		var msg reqdto.BridgeMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("bridge socket read ended", "channel_id", channelID, "error", err)
			}
			break
		}
		if msg.Method != reqdto.MethodRequestScan {
			reply(resdto.ErrorReply(msg.ID, errs.ErrUnknownBridgeMethod.Error()))
			continue
		}
		wg.Add(1)
		go func(msg reqdto.BridgeMessage) {
			defer wg.Done()
			result := h.endpoint.RequestScan(ctx, channelID, msg.Reason)
			reply(resdto.ScanReply(msg.ID, result))
		}(msg)
	}

	cancel()
	wg.Wait()
	h.logger.Info("bridge socket closed", "channel_id", channelID)
}
