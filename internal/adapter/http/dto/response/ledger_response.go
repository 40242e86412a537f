package response

// CreatedResponse carries the id of a newly created store or payment.
type CreatedResponse struct {
	ID string `json:"id"`
}

// BatchTransitionResponse reports a batch lifecycle call. Amount is the
// aggregate the transition moved on the store's balances.
type BatchTransitionResponse struct {
	Status bool    `json:"status"`
	Amount float64 `json:"amount"`
}

// StatusResponse is the body of the completed route, which does not report
// an amount.
type StatusResponse struct {
	Status bool `json:"status"`
}

// PayoutResponse lists the swept payment ids and the total paid out.
type PayoutResponse struct {
	IDs    []string `json:"ids"`
	Amount float64  `json:"amount"`
}
