package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeledger/internal/adapter/http/handlers/mocks"
	"storeledger/internal/domain/entities"
	"storeledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/stores/:store_id/payments", h.CreatePayment)
	r.GET("/v1/stores/:store_id/payments", h.ListPayments)
	r.GET("/v1/stores/:store_id/payments/:payment_id", h.GetPayment)
	r.POST("/v1/stores/:store_id/payments/processed", h.MarkProcessed)
	r.POST("/v1/stores/:store_id/payments/rejected", h.MarkRejected)
	r.POST("/v1/stores/:store_id/payments/completed", h.MarkCompleted)
	r.POST("/v1/stores/:store_id/payout", h.RequestPayout)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payments", bytes.NewBufferString(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Purchase(gomock.Any(), "missing", float64(100)).Return(entities.Payment{}, usecase.ErrStoreNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/missing/payments", bytes.NewBufferString(`{"amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Purchase(gomock.Any(), "store-1", float64(1000)).Return(entities.Payment{ID: "pay-1", StoreID: "store-1", Amount: 1000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payments", bytes.NewBufferString(`{"amount":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["id"] != "pay-1" {
			t.Fatalf("expected id pay-1, got %v", body["id"])
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByIDAndStoreID(gomock.Any(), "ghost", "store-1").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/payments/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByIDAndStoreID(gomock.Any(), "pay-1", "store-1").Return(entities.Payment{
			ID:      "pay-1",
			StoreID: "store-1",
			Amount:  1000,
			FeeAmounts: entities.FeeAmounts{
				Fixed: 10, System: 50, Store: 100,
			},
			AmountAfterFee: 840,
			BlockedAmount:  100,
			Status:         entities.PaymentStatusReceived,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["status"] != "received" {
			t.Fatalf("expected status received, got %v", body["status"])
		}
		if body["amountAfterFee"] != float64(840) {
			t.Fatalf("expected amountAfterFee 840, got %v", body["amountAfterFee"])
		}
		fees, ok := body["feeAmounts"].(map[string]any)
		if !ok {
			t.Fatalf("expected feeAmounts object, got %v", body["feeAmounts"])
		}
		if fees["system"] != float64(50) || fees["store"] != float64(100) || fees["fixed"] != float64(10) {
			t.Fatalf("unexpected fee breakdown: %v", fees)
		}
	})
}

func TestPaymentHandler_BatchTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("processed reports the moved amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().MarkProcessed(gomock.Any(), "store-1", []string{"p1", "p2"}).Return(float64(430), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payments/processed", bytes.NewBufferString(`{"ids":["p1","p2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["status"] != true || body["amount"] != float64(430) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("rejected reports the write-off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().MarkRejected(gomock.Any(), "store-1", []string{"p1"}).Return(float64(840), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payments/rejected", bytes.NewBufferString(`{"ids":["p1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["amount"] != float64(840) {
			t.Fatalf("expected amount 840, got %v", body["amount"])
		}
	})

	t.Run("completed does not report an amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().MarkCompleted(gomock.Any(), "store-1", []string{"p1"}).Return(float64(100), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payments/completed", bytes.NewBufferString(`{"ids":["p1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["status"] != true {
			t.Fatalf("expected status true, got %v", body["status"])
		}
		if _, ok := body["amount"]; ok {
			t.Fatalf("completed body must not carry an amount: %v", body)
		}
	})

	t.Run("empty id set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payments/processed", bytes.NewBufferString(`{"ids":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_RequestPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Payout(gomock.Any(), "store-1").Return(usecase.PayoutResult{IDs: []string{"p1", "p2"}, Amount: 430}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		ids, ok := body["ids"].([]any)
		if !ok || len(ids) != 2 {
			t.Fatalf("expected 2 ids, got %v", body["ids"])
		}
		if body["amount"] != float64(430) {
			t.Fatalf("expected amount 430, got %v", body["amount"])
		}
	})

	t.Run("refused inside the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Payout(gomock.Any(), "store-1").Return(usecase.PayoutResult{}, usecase.ErrPayoutNotEligible)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores/store-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["message"] != "you can payout only one time per day" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})
}
