package response

import (
	"scan-bridge/internal/usecase"
)

type ChannelResponse struct {
	ChannelID string `json:"channelId"`
	Origin    string `json:"origin"`
	Token     string `json:"token"`
}

func FromBridgeChannel(ch *usecase.BridgeChannel) *ChannelResponse {
	return &ChannelResponse{
		ChannelID: ch.ID.String(),
		Origin:    ch.Origin,
		Token:     ch.Token,
	}
}

type ScanResponse struct {
	Result string `json:"result"`
}

// BridgeReply answers one BridgeMessage; exactly one of Result or Error is meaningful.
type BridgeReply struct {
	ID     string  `json:"id"`
	Result *string `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

func ScanReply(id, result string) BridgeReply {
	return BridgeReply{ID: id, Result: &result}
}

func ErrorReply(id, msg string) BridgeReply {
	return BridgeReply{ID: id, Error: msg}
}
