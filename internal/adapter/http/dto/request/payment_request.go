package request

// PaymentCreateRequest is the purchase payload.
type PaymentCreateRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// PaymentBatchRequest carries the id set for the batch lifecycle routes
// (processed / completed / rejected). Ids that do not match the expected
// prior status are skipped by the ledger, not rejected here.
type PaymentBatchRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
