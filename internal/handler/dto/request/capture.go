package request

import (
	"scan-bridge/internal/domain/scan"
)

type DecodeRequest struct {
	Value     string `json:"value"`
	Symbology string `json:"symbology" binding:"required"`
}

func (r *DecodeRequest) ToDomain() scan.RawDecode {
	return scan.RawDecode{
		Value:     r.Value,
		Symbology: r.Symbology,
	}
}

type PermissionDecisionRequest struct {
	Granted *bool `json:"granted" binding:"required"`
}

type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}
