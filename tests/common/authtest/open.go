//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"scan-bridge/internal/handler/dto/request"
	"scan-bridge/internal/handler/dto/response"
	"scan-bridge/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// OpenChannel registers embedded content through the host API and returns its token.
func OpenChannel(t *testing.T, router *gin.Engine, origin string) response.ChannelResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/bridge/channels",
		request.OpenChannelRequest{Origin: origin}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ch response.ChannelResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &ch)
	require.NotEmpty(t, ch.Token, "channel token is empty")

	return ch
}
