package response

import "storeledger/internal/domain/entities"

type FeeConfigResponse struct {
	FixedFee  float64 `json:"fixedFee"`
	FeeRate   float64 `json:"feeRate"`
	BlockRate float64 `json:"blockRate"`
}

func FromFeeConfig(cfg entities.FeeConfig) FeeConfigResponse {
	return FeeConfigResponse{
		FixedFee:  cfg.FixedFee,
		FeeRate:   cfg.FeeRate,
		BlockRate: cfg.BlockRate,
	}
}
