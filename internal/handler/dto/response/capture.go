package response

import (
	"scan-bridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CaptureStateResponse struct {
	Phase                    string `json:"phase"`
	TorchOn                  bool   `json:"torchOn"`
	DismissAffordanceVisible bool   `json:"dismissAffordanceVisible"`
	RequestID                string `json:"requestId,omitempty" copier:"-"`
	Reason                   string `json:"reason,omitempty"`
	Capability               string `json:"capability"`
	LastOutcome              string `json:"lastOutcome,omitempty"`
}

func FromCaptureState(st usecase.CaptureState) *CaptureStateResponse {
	res := &CaptureStateResponse{}
	_ = copier.Copy(res, &st)
	if st.RequestID != uuid.Nil {
		res.RequestID = st.RequestID.String()
	}
	return res
}

type TorchResponse struct {
	TorchOn bool `json:"torchOn"`
}

type CapabilityResponse struct {
	Status string `json:"status"`
}

type SettlementResponse struct {
	RequestID   string `json:"requestId" copier:"-"`
	ChannelID   string `json:"channelId,omitempty" copier:"-"`
	Reason      string `json:"reason"`
	Outcome     string `json:"outcome"`
	Symbology   string `json:"symbology,omitempty"`
	RequestedAt int64  `json:"requestedAt" copier:"-"`
	SettledAt   int64  `json:"settledAt" copier:"-"`
}

func FromSettlements(recs []usecase.SettlementRecord) []*SettlementResponse {
	res := make([]*SettlementResponse, len(recs))
	for i := range recs {
		r := &SettlementResponse{}
		_ = copier.Copy(r, &recs[i])
		r.RequestID = recs[i].RequestID.String()
		if recs[i].ChannelID != uuid.Nil {
			r.ChannelID = recs[i].ChannelID.String()
		}
		r.RequestedAt = recs[i].RequestedAt.Unix()
		r.SettledAt = recs[i].SettledAt.Unix()
		res[i] = r
	}
	return res
}
