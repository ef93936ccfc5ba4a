package request

type OpenChannelRequest struct {
	Origin string `json:"origin" binding:"required,max=2048"`
}

type ScanRequest struct {
	Reason string `json:"reason" binding:"max=512"`
}

// BridgeMessage is one frame sent by embedded content over the bridge socket.
type BridgeMessage struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Reason string `json:"reason"`
}

const MethodRequestScan = "requestScan"
