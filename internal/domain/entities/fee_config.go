package entities

// FeeConfig holds the process-wide fee parameters applied to every new
// purchase. It is replaced wholesale on save; no history is retained and
// in-flight payments keep the rates they were created with.
type FeeConfig struct {
	FixedFee  float64 `json:"fixedFee"`
	FeeRate   float64 `json:"feeRate"`
	BlockRate float64 `json:"blockRate"`
}
