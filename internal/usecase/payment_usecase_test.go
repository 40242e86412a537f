package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"storeledger/internal/adapter/persistence/repository"
	"storeledger/internal/domain/entities"
	mock_interfaces "storeledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// ledgerFixture wires a payment use case against the in-memory repositories
// with the canonical test rates: fixedFee=10, feeRate=5, blockRate=10 and a
// store fee rate of 10.
type ledgerFixture struct {
	payments *PaymentUseCase
	stores   *StoreUseCase
	store    entities.Store
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	storeRepo := repository.NewStoreMemoryRepository()
	paymentRepo := repository.NewPaymentMemoryRepository()

	configUC := NewConfigUseCase()
	configUC.Save(entities.FeeConfig{FixedFee: 10, FeeRate: 5, BlockRate: 10})

	storeUC := NewStoreUseCase(storeRepo)
	store, err := storeUC.Create(context.Background(), "test store", 10)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	return &ledgerFixture{
		payments: NewPaymentUseCase(paymentRepo, storeRepo, configUC, nil, 0),
		stores:   storeUC,
		store:    store,
	}
}

func (f *ledgerFixture) mustPurchase(t *testing.T, amount float64) entities.Payment {
	t.Helper()
	p, err := f.payments.Purchase(context.Background(), f.store.ID, amount)
	if err != nil {
		t.Fatalf("purchase %.2f: %v", amount, err)
	}
	return p
}

func (f *ledgerFixture) storeState(t *testing.T) entities.Store {
	t.Helper()
	s, err := f.stores.GetByID(context.Background(), f.store.ID)
	if err != nil {
		t.Fatalf("get store: %v", err)
	}
	return s
}

func (f *ledgerFixture) paymentState(t *testing.T, id string) entities.Payment {
	t.Helper()
	p, err := f.payments.GetByIDAndStoreID(context.Background(), id, f.store.ID)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	return p
}

func TestPaymentUseCase_Purchase(t *testing.T) {
	t.Run("computes the fee breakdown from the snapshotted config", func(t *testing.T) {
		f := newLedgerFixture(t)

		p := f.mustPurchase(t, 1000)

		if p.Status != entities.PaymentStatusReceived {
			t.Fatalf("expected received, got %s", p.Status)
		}
		if p.FeeAmounts.System != 50 {
			t.Fatalf("expected system fee 50, got %.2f", p.FeeAmounts.System)
		}
		if p.FeeAmounts.Store != 100 {
			t.Fatalf("expected store fee 100, got %.2f", p.FeeAmounts.Store)
		}
		if p.FeeAmounts.Fixed != 10 {
			t.Fatalf("expected fixed fee 10, got %.2f", p.FeeAmounts.Fixed)
		}
		if p.AmountAfterFee != 840 {
			t.Fatalf("expected amount after fee 840, got %.2f", p.AmountAfterFee)
		}
		if p.BlockedAmount != 100 {
			t.Fatalf("expected blocked amount 100, got %.2f", p.BlockedAmount)
		}
		if p.AvailableBalance != 0 {
			t.Fatalf("expected zero available balance, got %.2f", p.AvailableBalance)
		}
	})

	t.Run("blocks the net amount against the store", func(t *testing.T) {
		f := newLedgerFixture(t)

		p := f.mustPurchase(t, 1000)

		s := f.storeState(t)
		if s.BlockedBalance != p.AmountAfterFee {
			t.Fatalf("expected blocked balance %.2f, got %.2f", p.AmountAfterFee, s.BlockedBalance)
		}
		if s.AvailableBalance != 0 {
			t.Fatalf("expected zero available balance, got %.2f", s.AvailableBalance)
		}
	})

	t.Run("later config changes do not touch existing payments", func(t *testing.T) {
		storeRepo := repository.NewStoreMemoryRepository()
		paymentRepo := repository.NewPaymentMemoryRepository()
		configUC := NewConfigUseCase()
		configUC.Save(entities.FeeConfig{FixedFee: 10, FeeRate: 5, BlockRate: 10})
		storeUC := NewStoreUseCase(storeRepo)
		store, _ := storeUC.Create(context.Background(), "s", 10)
		uc := NewPaymentUseCase(paymentRepo, storeRepo, configUC, nil, 0)

		p1, _ := uc.Purchase(context.Background(), store.ID, 1000)
		configUC.Save(entities.FeeConfig{FixedFee: 0, FeeRate: 50, BlockRate: 50})

		got, _ := uc.GetByIDAndStoreID(context.Background(), p1.ID, store.ID)
		if got.FeeAmounts.System != 50 || got.AmountAfterFee != 840 {
			t.Fatalf("payment changed after config save: %+v", got.FeeAmounts)
		}
	})

	t.Run("rejects non positive amounts", func(t *testing.T) {
		f := newLedgerFixture(t)
		if _, err := f.payments.Purchase(context.Background(), f.store.ID, 0); !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("unknown store", func(t *testing.T) {
		f := newLedgerFixture(t)
		if _, err := f.payments.Purchase(context.Background(), "nope", 100); !errors.Is(err, ErrStoreNotFound) {
			t.Fatalf("expected ErrStoreNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_MarkProcessed(t *testing.T) {
	t.Run("moves the unblocked portion and reports it", func(t *testing.T) {
		f := newLedgerFixture(t)
		p1 := f.mustPurchase(t, 100)
		p2 := f.mustPurchase(t, 500)
		f.mustPurchase(t, 1000)

		// amountAfterFee - blockedAmount: (75-10) + (415-50) = 430
		amount, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p1.ID, p2.ID})
		if err != nil {
			t.Fatalf("mark processed: %v", err)
		}
		if amount != 430 {
			t.Fatalf("expected amount 430, got %.2f", amount)
		}

		s := f.storeState(t)
		if s.AvailableBalance != 430 {
			t.Fatalf("expected available balance 430, got %.2f", s.AvailableBalance)
		}

		got := f.paymentState(t, p1.ID)
		if got.Status != entities.PaymentStatusProcessed {
			t.Fatalf("expected processed, got %s", got.Status)
		}
		if got.AvailableBalance != got.AmountAfterFee-got.BlockedAmount {
			t.Fatalf("expected available %.2f, got %.2f", got.AmountAfterFee-got.BlockedAmount, got.AvailableBalance)
		}
	})

	t.Run("resubmitting an already processed id is a no-op", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)

		first, _ := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID})
		second, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID})
		if err != nil {
			t.Fatalf("resubmit: %v", err)
		}
		if second != 0 {
			t.Fatalf("expected zero amount on resubmit, got %.2f", second)
		}

		s := f.storeState(t)
		if s.AvailableBalance != first {
			t.Fatalf("resubmit double-counted: available %.2f, want %.2f", s.AvailableBalance, first)
		}
	})

	t.Run("unknown ids are skipped silently", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)

		amount, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID, "ghost"})
		if err != nil {
			t.Fatalf("mark processed: %v", err)
		}
		if amount != 740 {
			t.Fatalf("expected amount 740, got %.2f", amount)
		}
	})

	t.Run("a payment owned by another store is skipped", func(t *testing.T) {
		f := newLedgerFixture(t)
		other, err := f.stores.Create(context.Background(), "other", 10)
		if err != nil {
			t.Fatalf("create other store: %v", err)
		}
		p := f.mustPurchase(t, 1000)

		amount, err := f.payments.MarkProcessed(context.Background(), other.ID, []string{p.ID})
		if err != nil {
			t.Fatalf("mark processed: %v", err)
		}
		if amount != 0 {
			t.Fatalf("expected zero amount, got %.2f", amount)
		}

		got := f.paymentState(t, p.ID)
		if got.Status != entities.PaymentStatusReceived {
			t.Fatalf("payment advanced across stores: %s", got.Status)
		}
	})

	t.Run("empty id set", func(t *testing.T) {
		f := newLedgerFixture(t)
		if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, nil); !errors.Is(err, ErrInvalidPaymentIDs) {
			t.Fatalf("expected ErrInvalidPaymentIDs, got %v", err)
		}
	})
}

func TestPaymentUseCase_MarkCompleted(t *testing.T) {
	t.Run("releases the hold-back", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)

		if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID}); err != nil {
			t.Fatalf("mark processed: %v", err)
		}
		amount, err := f.payments.MarkCompleted(context.Background(), f.store.ID, []string{p.ID})
		if err != nil {
			t.Fatalf("mark completed: %v", err)
		}
		if amount != 100 {
			t.Fatalf("expected released amount 100, got %.2f", amount)
		}

		got := f.paymentState(t, p.ID)
		if got.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", got.Status)
		}
		if got.BlockedAmount != 0 {
			t.Fatalf("expected blocked amount 0, got %.2f", got.BlockedAmount)
		}
		if got.AvailableBalance != got.AmountAfterFee {
			t.Fatalf("expected available %.2f, got %.2f", got.AmountAfterFee, got.AvailableBalance)
		}

		s := f.storeState(t)
		if s.AvailableBalance != 840 || s.BlockedBalance != 0 {
			t.Fatalf("expected store 840/0, got %.2f/%.2f", s.AvailableBalance, s.BlockedBalance)
		}
	})

	t.Run("skips payments still in received", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)

		amount, err := f.payments.MarkCompleted(context.Background(), f.store.ID, []string{p.ID})
		if err != nil {
			t.Fatalf("mark completed: %v", err)
		}
		if amount != 0 {
			t.Fatalf("expected zero amount, got %.2f", amount)
		}
		got := f.paymentState(t, p.ID)
		if got.Status != entities.PaymentStatusReceived {
			t.Fatalf("received payment completed directly: %s", got.Status)
		}
	})
}

func TestPaymentUseCase_MarkRejected(t *testing.T) {
	t.Run("writes the full net amount off", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)

		amount, err := f.payments.MarkRejected(context.Background(), f.store.ID, []string{p.ID})
		if err != nil {
			t.Fatalf("mark rejected: %v", err)
		}
		if amount != 840 {
			t.Fatalf("expected write-off 840, got %.2f", amount)
		}

		// The store's own fee portion is forfeited together with the
		// principal: nothing lands in the available balance.
		s := f.storeState(t)
		if s.AvailableBalance != 0 {
			t.Fatalf("rejected funds leaked into available balance: %.2f", s.AvailableBalance)
		}
		if s.BlockedBalance != 0 {
			t.Fatalf("expected blocked balance 0, got %.2f", s.BlockedBalance)
		}

		got := f.paymentState(t, p.ID)
		if got.Status != entities.PaymentStatusRejected {
			t.Fatalf("expected rejected, got %s", got.Status)
		}
		if got.AvailableBalance != 0 || got.BlockedAmount != 0 {
			t.Fatalf("expected zeroed payment balances, got %.2f/%.2f", got.AvailableBalance, got.BlockedAmount)
		}
	})

	t.Run("a processed payment cannot be rejected", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)

		if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID}); err != nil {
			t.Fatalf("mark processed: %v", err)
		}
		amount, err := f.payments.MarkRejected(context.Background(), f.store.ID, []string{p.ID})
		if err != nil {
			t.Fatalf("mark rejected: %v", err)
		}
		if amount != 0 {
			t.Fatalf("expected zero amount, got %.2f", amount)
		}
		got := f.paymentState(t, p.ID)
		if got.Status != entities.PaymentStatusProcessed {
			t.Fatalf("processed payment was rejected: %s", got.Status)
		}
	})
}

func TestPaymentUseCase_Payout(t *testing.T) {
	t.Run("sweeps processed and completed payments with positive balances", func(t *testing.T) {
		f := newLedgerFixture(t)
		p1 := f.mustPurchase(t, 100)
		p2 := f.mustPurchase(t, 500)
		p3 := f.mustPurchase(t, 1000) // stays received

		if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p1.ID, p2.ID}); err != nil {
			t.Fatalf("mark processed: %v", err)
		}
		if _, err := f.payments.MarkCompleted(context.Background(), f.store.ID, []string{p1.ID}); err != nil {
			t.Fatalf("mark completed: %v", err)
		}

		before := f.storeState(t)
		result, err := f.payments.Payout(context.Background(), f.store.ID)
		if err != nil {
			t.Fatalf("payout: %v", err)
		}

		if len(result.IDs) != 2 {
			t.Fatalf("expected 2 swept payments, got %d (%v)", len(result.IDs), result.IDs)
		}
		for _, id := range result.IDs {
			if id == p3.ID {
				t.Fatalf("received payment %s swept by payout", id)
			}
		}
		if result.Amount != before.AvailableBalance {
			t.Fatalf("expected payout %.2f, got %.2f", before.AvailableBalance, result.Amount)
		}

		after := f.storeState(t)
		if after.AvailableBalance != 0 {
			t.Fatalf("expected zero available balance, got %.2f", after.AvailableBalance)
		}
		if after.LastPayoutAt == nil {
			t.Fatal("expected lastPayoutAt to be stamped")
		}
		for _, id := range result.IDs {
			if got := f.paymentState(t, id); got.AvailableBalance != 0 {
				t.Fatalf("payment %s not zeroed: %.2f", id, got.AvailableBalance)
			}
		}
	})

	t.Run("second payout in the same window is refused", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)
		if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID}); err != nil {
			t.Fatalf("mark processed: %v", err)
		}

		if _, err := f.payments.Payout(context.Background(), f.store.ID); err != nil {
			t.Fatalf("first payout: %v", err)
		}
		if _, err := f.payments.Payout(context.Background(), f.store.ID); !errors.Is(err, ErrPayoutNotEligible) {
			t.Fatalf("expected ErrPayoutNotEligible, got %v", err)
		}
	})

	t.Run("eligible again once the window has elapsed", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := f.mustPurchase(t, 1000)
		if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p.ID}); err != nil {
			t.Fatalf("mark processed: %v", err)
		}

		day1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		f.payments.now = func() time.Time { return day1 }
		if _, err := f.payments.Payout(context.Background(), f.store.ID); err != nil {
			t.Fatalf("first payout: %v", err)
		}

		f.payments.now = func() time.Time { return day1.Add(23 * time.Hour) }
		if _, err := f.payments.Payout(context.Background(), f.store.ID); !errors.Is(err, ErrPayoutNotEligible) {
			t.Fatalf("expected refusal at 23h, got %v", err)
		}

		f.payments.now = func() time.Time { return day1.Add(24 * time.Hour) }
		if _, err := f.payments.MarkCompleted(context.Background(), f.store.ID, []string{p.ID}); err != nil {
			t.Fatalf("mark completed: %v", err)
		}
		result, err := f.payments.Payout(context.Background(), f.store.ID)
		if err != nil {
			t.Fatalf("second payout at 24h: %v", err)
		}
		if result.Amount != 100 {
			t.Fatalf("expected hold-back payout 100, got %.2f", result.Amount)
		}
	})

	t.Run("a payout with nothing to sweep still stamps the window", func(t *testing.T) {
		f := newLedgerFixture(t)

		result, err := f.payments.Payout(context.Background(), f.store.ID)
		if err != nil {
			t.Fatalf("payout: %v", err)
		}
		if result.Amount != 0 || len(result.IDs) != 0 {
			t.Fatalf("expected empty payout, got %+v", result)
		}
		if f.storeState(t).LastPayoutAt == nil {
			t.Fatal("expected lastPayoutAt to be stamped")
		}
	})
}

// The running sum of every live payment's blocked and available portions plus
// everything already paid out must equal the net amount of all non-rejected
// payments.
func TestPaymentUseCase_Conservation(t *testing.T) {
	f := newLedgerFixture(t)
	p1 := f.mustPurchase(t, 100)
	p2 := f.mustPurchase(t, 500)
	p3 := f.mustPurchase(t, 1000)
	p4 := f.mustPurchase(t, 250)

	if _, err := f.payments.MarkRejected(context.Background(), f.store.ID, []string{p4.ID}); err != nil {
		t.Fatalf("mark rejected: %v", err)
	}
	if _, err := f.payments.MarkProcessed(context.Background(), f.store.ID, []string{p1.ID, p2.ID, p3.ID}); err != nil {
		t.Fatalf("mark processed: %v", err)
	}
	if _, err := f.payments.MarkCompleted(context.Background(), f.store.ID, []string{p2.ID}); err != nil {
		t.Fatalf("mark completed: %v", err)
	}

	result, err := f.payments.Payout(context.Background(), f.store.ID)
	if err != nil {
		t.Fatalf("payout: %v", err)
	}

	netTotal := p1.AmountAfterFee + p2.AmountAfterFee + p3.AmountAfterFee

	s := f.storeState(t)
	if s.AvailableBalance < 0 || s.BlockedBalance < 0 {
		t.Fatalf("negative balance: %.2f/%.2f", s.AvailableBalance, s.BlockedBalance)
	}
	if got := s.AvailableBalance + s.BlockedBalance + result.Amount; got != netTotal {
		t.Fatalf("funds not conserved: %.2f, want %.2f", got, netTotal)
	}
}

func TestPaymentUseCase_RepositoryErrors(t *testing.T) {
	t.Run("store lookup failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storeRepo := mock_interfaces.NewMockIStoreRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(paymentRepo, storeRepo, NewConfigUseCase(), nil, 0)

		wantErr := errors.New("dynamodb down")
		storeRepo.EXPECT().GetByID(gomock.Any(), "store-1").Return(entities.Store{}, wantErr)

		if _, err := uc.Purchase(context.Background(), "store-1", 100); !errors.Is(err, wantErr) {
			t.Fatalf("expected repo error, got %v", err)
		}
	})

	t.Run("payment create failure surfaces and leaves the store untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storeRepo := mock_interfaces.NewMockIStoreRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(paymentRepo, storeRepo, NewConfigUseCase(), nil, 0)

		storeRepo.EXPECT().GetByID(gomock.Any(), "store-1").Return(entities.Store{ID: "store-1"}, nil)
		wantErr := errors.New("conditional check failed")
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, wantErr)

		if _, err := uc.Purchase(context.Background(), "store-1", 100); !errors.Is(err, wantErr) {
			t.Fatalf("expected repo error, got %v", err)
		}
	})
}
