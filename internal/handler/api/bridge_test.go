//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"scan-bridge/internal/handler/api"
	reqdto "scan-bridge/internal/handler/dto/request"
	resdto "scan-bridge/internal/handler/dto/response"
	"scan-bridge/internal/handler/middleware"
	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/usecase"
	"scan-bridge/tests/common/httptest"
	"scan-bridge/tests/common/testutil"
	usecasemock "scan-bridge/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const validToken = "valid-channel-token"

type BridgeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockEndpoint *usecasemock.MockBridgeEndpoint
	handler      *api.BridgeHandler
	channelID    uuid.UUID
}

func (s *BridgeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEndpoint = usecasemock.NewMockBridgeEndpoint(s.mockCtrl)
	s.handler = api.NewBridgeHandler(s.mockEndpoint, &websocket.Upgrader{}, discardLogger)
	s.channelID = uuid.New()

	s.mockEndpoint.EXPECT().Authorize(validToken).Return(s.channelID, nil).AnyTimes()
	s.mockEndpoint.EXPECT().Authorize(gomock.Not(validToken)).
		Return(uuid.Nil, errs.ErrInvalidChannelToken).AnyTimes()

	auth := middleware.NewChannelAuth(s.mockEndpoint)
	s.router.POST("/api/bridge/channels", s.handler.OpenChannel)
	s.router.POST("/api/bridge/scan", auth.RequireChannel(), s.handler.RequestScan)
	s.router.GET("/api/bridge/ws", auth.RequireChannel(), s.handler.Socket)
}

func (s *BridgeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBridgeHandlerSuite(t *testing.T) {
	suite.Run(t, new(BridgeHandlerTestSuite))
}

func (s *BridgeHandlerTestSuite) TestOpenChannel() {
	url := "/api/bridge/channels"
	reqBody := reqdto.OpenChannelRequest{Origin: "https://content.example.com"}

	s.Run("success: returns 201 with channel token", func() {
		channelID := uuid.New()
		s.mockEndpoint.EXPECT().OpenChannel("https://content.example.com").
			Return(&usecase.BridgeChannel{ID: channelID, Origin: reqBody.Origin, Token: "tok"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ChannelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(channelID.String(), body.ChannelID)
		s.Equal("tok", body.Token)
	})

	s.Run("error: 400 when origin is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("origin", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when origin is too long", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("origin", strings.Repeat("a", 2049)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BridgeHandlerTestSuite) TestRequestScan() {
	url := "/api/bridge/scan"

	s.Run("success: returns the settled value", func() {
		s.mockEndpoint.EXPECT().RequestScan(gomock.Any(), s.channelID, "Scan boarding pass").
			Return("M1DOE/JOHN").Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.ScanRequest{Reason: "Scan boarding pass"}, validToken)

		var body resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("M1DOE/JOHN", body.Result)
	})

	s.Run("success: empty result is still 200", func() {
		s.mockEndpoint.EXPECT().RequestScan(gomock.Any(), s.channelID, "").Return("").Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, validToken)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Contains(body, "result")
		s.Empty(body["result"])
	})

	s.Run("error: 401 without a channel token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ScanRequest{}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 with a foreign token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ScanRequest{}, "forged")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BridgeHandlerTestSuite) dialBridge(token string) (*websocket.Conn, *http.Response, error) {
	srv := nethttptest.NewServer(s.router)
	s.T().Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/bridge/ws?token=" + token
	return websocket.DefaultDialer.Dial(url, nil)
}

func (s *BridgeHandlerTestSuite) TestSocket() {
	s.Run("requestScan is answered with the correlation id", func() {
		s.mockEndpoint.EXPECT().RequestScan(gomock.Any(), s.channelID, "Scan ticket").
			Return("TICKET-9").Times(1)

		conn, _, err := s.dialBridge(validToken)
		s.Require().NoError(err)
		defer conn.Close()

		s.Require().NoError(conn.WriteJSON(reqdto.BridgeMessage{ID: "7", Method: "requestScan", Reason: "Scan ticket"}))

		var reply map[string]any
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		s.Require().NoError(conn.ReadJSON(&reply))
		s.Equal("7", reply["id"])
		s.Equal("TICKET-9", reply["result"])
		s.NotContains(reply, "error")
	})

	s.Run("unknown methods get an error reply", func() {
		conn, _, err := s.dialBridge(validToken)
		s.Require().NoError(err)
		defer conn.Close()

		s.Require().NoError(conn.WriteJSON(reqdto.BridgeMessage{ID: "8", Method: "openSettings"}))

		var reply resdto.BridgeReply
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		s.Require().NoError(conn.ReadJSON(&reply))
		s.Equal("8", reply.ID)
		s.Nil(reply.Result)
		s.NotEmpty(reply.Error)
	})

	s.Run("closing the socket cancels the outstanding request", func() {
		cancelled := make(chan struct{})
		s.mockEndpoint.EXPECT().RequestScan(gomock.Any(), s.channelID, "").
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ string) string {
				<-ctx.Done()
				close(cancelled)
				return ""
			}).Times(1)

		conn, _, err := s.dialBridge(validToken)
		s.Require().NoError(err)
		s.Require().NoError(conn.WriteJSON(reqdto.BridgeMessage{ID: "9", Method: "requestScan"}))
		time.Sleep(20 * time.Millisecond)
		s.Require().NoError(conn.Close())

		select {
		case <-cancelled:
		case <-time.After(2 * time.Second):
			s.Fail("request context was not cancelled on close")
		}
	})

	s.Run("handshake without token is rejected", func() {
		_, resp, err := s.dialBridge("")
		s.Require().Error(err)
		s.Require().NotNil(resp)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}
