package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"storeledger/internal/adapter/http/dto/request"
	"storeledger/internal/adapter/http/dto/response"
	"storeledger/internal/usecase"
	"storeledger/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidBatchPayload   = pkg.NewDomainErrorSimple("INVALID_BATCH_INPUT", "Invalid payment ids payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment records a purchase against a store.
//
// @Summary  Create payment (purchase)
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    store_id path string true "store id"
// @Param    payload body request.PaymentCreateRequest true "purchase"
// @Success  201 {object} response.CreatedResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	storeID := c.Param("store_id")

	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Purchase(c.Request.Context(), storeID, payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] purchase failed store_id=%s amount=%.2f err=%v", storeID, payload.Amount, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: p.ID})
}

// ListPayments returns every payment of a store.
//
// @Summary  List store payments
// @Tags     payments
// @Produce  json
// @Param    store_id path string true "store id"
// @Success  200 {array} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	storeID := c.Param("store_id")

	payments, err := h.usecase.ListByStoreID(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("[payment][handler] list failed store_id=%s err=%v", storeID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment returns one payment scoped to its store.
//
// @Summary  Get payment
// @Tags     payments
// @Produce  json
// @Param    store_id path string true "store id"
// @Param    payment_id path string true "payment id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	storeID := c.Param("store_id")
	paymentID := c.Param("payment_id")

	p, err := h.usecase.GetByIDAndStoreID(c.Request.Context(), paymentID, storeID)
	if err != nil {
		log.Printf("[payment][handler] get failed store_id=%s payment_id=%s err=%v", storeID, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// MarkProcessed moves a batch of received payments to processed.
//
// @Summary  Mark payments processed
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    store_id path string true "store id"
// @Param    payload body request.PaymentBatchRequest true "payment ids"
// @Success  201 {object} response.BatchTransitionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payments/processed [post]
func (h *PaymentHandler) MarkProcessed(c *gin.Context) {
	h.batchTransition(c, h.usecase.MarkProcessed, "processed", true)
}

// MarkRejected rejects a batch of received payments, writing their blocked
// funds off.
//
// @Summary  Mark payments rejected
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    store_id path string true "store id"
// @Param    payload body request.PaymentBatchRequest true "payment ids"
// @Success  201 {object} response.BatchTransitionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payments/rejected [post]
func (h *PaymentHandler) MarkRejected(c *gin.Context) {
	h.batchTransition(c, h.usecase.MarkRejected, "rejected", true)
}

// MarkCompleted completes a batch of processed payments, releasing their
// hold-backs.
//
// @Summary  Mark payments completed
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    store_id path string true "store id"
// @Param    payload body request.PaymentBatchRequest true "payment ids"
// @Success  201 {object} response.StatusResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payments/completed [post]
func (h *PaymentHandler) MarkCompleted(c *gin.Context) {
	h.batchTransition(c, h.usecase.MarkCompleted, "completed", false)
}

func (h *PaymentHandler) batchTransition(
	c *gin.Context,
	transition func(ctx context.Context, storeID string, paymentIDs []string) (float64, error),
	name string,
	reportAmount bool,
) {
	storeID := c.Param("store_id")

	var payload request.PaymentBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBatchPayload.HTTPStatus, errInvalidBatchPayload.ToHTTPError())
		return
	}

	amount, err := transition(c.Request.Context(), storeID, payload.IDs)
	if err != nil {
		log.Printf("[payment][handler] %s failed store_id=%s ids=%d err=%v", name, storeID, len(payload.IDs), err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !reportAmount {
		c.JSON(http.StatusCreated, response.StatusResponse{Status: true})
		return
	}
	c.JSON(http.StatusCreated, response.BatchTransitionResponse{Status: true, Amount: amount})
}

// RequestPayout sweeps the store's withdrawable funds.
//
// @Summary  Request payout
// @Tags     payments
// @Produce  json
// @Param    store_id path string true "store id"
// @Success  201 {object} response.PayoutResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /stores/{store_id}/payout [post]
func (h *PaymentHandler) RequestPayout(c *gin.Context) {
	storeID := c.Param("store_id")

	result, err := h.usecase.Payout(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("[payment][handler] payout failed store_id=%s err=%v", storeID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PayoutResponse{IDs: result.IDs, Amount: result.Amount})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentIDs):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayoutNotEligible):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_ELIGIBLE", "you can payout only one time per day", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
