package request

import "storeledger/internal/domain/entities"

// FeeConfigRequest replaces the fee configuration wholesale. Zero values are
// legal rates; presence validation is all the boundary does.
type FeeConfigRequest struct {
	FixedFee  float64 `json:"fixedFee"`
	FeeRate   float64 `json:"feeRate"`
	BlockRate float64 `json:"blockRate"`
}

func (r FeeConfigRequest) ToFeeConfig() entities.FeeConfig {
	return entities.FeeConfig{
		FixedFee:  r.FixedFee,
		FeeRate:   r.FeeRate,
		BlockRate: r.BlockRate,
	}
}
