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

type CapabilityHandler struct {
	control  usecase.CaptureControl
	prompter usecase.PermissionPrompter
}

func NewCapabilityHandler(control usecase.CaptureControl, prompter usecase.PermissionPrompter) *CapabilityHandler {
	return &CapabilityHandler{control: control, prompter: prompter}
}

// @Summary Request camera permission
// @Description Prompt for camera access again, e.g. after an earlier denial
// @Tags capability
// @Produce json
// @Success 200 {object} resdto.CapabilityResponse
// @Router /api/capability/request [post]
func (h *CapabilityHandler) Request(c *gin.Context) {
	status := h.control.RetryPermission(c.Request.Context())
	c.JSON(http.StatusOK, resdto.CapabilityResponse{Status: status.String()})
}

// @Summary Answer permission prompt
// @Description Deliver the user's answer to a pending camera permission prompt
// @Tags capability
// @Accept json
// @Param request body reqdto.PermissionDecisionRequest true "Decision"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/capability/decision [post]
func (h *CapabilityHandler) Decide(c *gin.Context) {
	var req reqdto.PermissionDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.prompter.Decide(*req.Granted); err != nil {
		if errs.Is(err, errs.ErrNoPendingPrompt) {
			httperr.AbortWithError(c, http.StatusConflict, err, "No permission prompt is pending", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record decision", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
