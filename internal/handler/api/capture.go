package api

import (
	"net/http"

	reqdto "scan-bridge/internal/handler/dto/request"
	resdto "scan-bridge/internal/handler/dto/response"
	"scan-bridge/internal/handler/httperr"
	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

type CaptureHandler struct {
	control usecase.CaptureControl
	history usecase.SettlementHistory
}

func NewCaptureHandler(control usecase.CaptureControl, history usecase.SettlementHistory) *CaptureHandler {
	return &CaptureHandler{control: control, history: history}
}

// @Summary Capture state
// @Description Current phase of the capture session as rendered by the host UI
// @Tags capture
// @Produce json
// @Success 200 {object} resdto.CaptureStateResponse
// @Failure 503 {object} map[string]string
// @Router /api/capture/state [get]
func (h *CaptureHandler) State(c *gin.Context) {
	st, err := h.control.Snapshot(c.Request.Context())
	if err != nil {
		abortControlError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCaptureState(st))
}

// @Summary Dismiss capture
// @Description Settle the outstanding scan request with an empty result
// @Tags capture
// @Success 204 "No Content"
// @Failure 503 {object} map[string]string
// @Router /api/capture/dismiss [post]
func (h *CaptureHandler) Dismiss(c *gin.Context) {
	if err := h.control.Dismiss(c.Request.Context()); err != nil {
		abortControlError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle torch
// @Description Flip the torch while a capture session is active
// @Tags capture
// @Produce json
// @Success 200 {object} resdto.TorchResponse
// @Failure 503 {object} map[string]string
// @Router /api/capture/torch [post]
func (h *CaptureHandler) ToggleTorch(c *gin.Context) {
	on, err := h.control.ToggleTorch(c.Request.Context())
	if err != nil {
		abortControlError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TorchResponse{TorchOn: on})
}

// @Summary Report decode
// @Description Feed one raw decode event from the camera pipeline
// @Tags capture
// @Accept json
// @Param request body reqdto.DecodeRequest true "Decode event"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/capture/decode [post]
func (h *CaptureHandler) Decode(c *gin.Context) {
	var req reqdto.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.control.Decode(c.Request.Context(), req.ToDomain()); err != nil {
		abortControlError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Settlement history
// @Description Recent settlements, newest first. Decoded values are never recorded.
// @Tags capture
// @Produce json
// @Param limit query int false "Maximum rows" minimum(1) maximum(500)
// @Success 200 {array} resdto.SettlementResponse
// @Failure 400 {object} map[string]string
// @Router /api/capture/history [get]
func (h *CaptureHandler) History(c *gin.Context) {
	var q reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultHistoryLimit
	}
	recs, err := h.history.Recent(c.Request.Context(), q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load history", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlements(recs))
}

func abortControlError(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrBrokerClosed) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Scanner is shutting down", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Capture control failed", nil)
}
