package request

// StoreCreateRequest is the payload for store creation. FeeRate stays
// unbound so a store with a zero rate can be created; range checks live in
// the use case.
type StoreCreateRequest struct {
	Name    string  `json:"name" binding:"required"`
	FeeRate float64 `json:"feeRate"`
}
