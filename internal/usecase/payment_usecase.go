package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"storeledger/internal/domain/entities"
	"storeledger/internal/infrastructure/metrics"
	"storeledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidPaymentIDs    = errors.New("invalid payment ids")
	ErrPayoutNotEligible    = errors.New("you can payout only one time per day")
)

// DefaultPayoutWindow is the minimum interval between two payouts for the
// same store.
const DefaultPayoutWindow = 24 * time.Hour

// PayoutResult reports which payments a payout swept and the total debited
// from the store's available balance.
type PayoutResult struct {
	IDs    []string
	Amount float64
}

// IPaymentUseCase is the payment ledger: it creates payments, drives the
// lifecycle state machine and keeps the owning store's balances in step with
// every transition.
//
// Batch transitions skip ids that do not match the expected prior status
// (wrong store, wrong status, unknown id) without raising an error, so a
// resubmitted batch advances only the still-eligible subset and amounts are
// never double-counted.

type IPaymentUseCase interface {
	Purchase(ctx context.Context, storeID string, amount float64) (entities.Payment, error)
	ListByStoreID(ctx context.Context, storeID string) ([]entities.Payment, error)
	GetByIDAndStoreID(ctx context.Context, paymentID, storeID string) (entities.Payment, error)
	MarkProcessed(ctx context.Context, storeID string, paymentIDs []string) (float64, error)
	MarkCompleted(ctx context.Context, storeID string, paymentIDs []string) (float64, error)
	MarkRejected(ctx context.Context, storeID string, paymentIDs []string) (float64, error)
	Payout(ctx context.Context, storeID string) (PayoutResult, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	storeRepo interfaces.IStoreRepository
	config    IConfigUseCase
	metrics   *metrics.LedgerMetrics

	locks        *storeLocks
	payoutWindow time.Duration
	now          func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, storeRepo interfaces.IStoreRepository, config IConfigUseCase, m *metrics.LedgerMetrics, payoutWindow time.Duration) *PaymentUseCase {
	if payoutWindow <= 0 {
		payoutWindow = DefaultPayoutWindow
	}
	return &PaymentUseCase{
		repo:         repo,
		storeRepo:    storeRepo,
		config:       config,
		metrics:      m,
		locks:        newStoreLocks(),
		payoutWindow: payoutWindow,
		now:          time.Now,
	}
}

// Purchase creates a payment in status received and blocks its net amount
// against the store. The fee breakdown is computed from the current fee
// configuration and the store's own rate, and is frozen on the payment.
func (u *PaymentUseCase) Purchase(ctx context.Context, storeID string, amount float64) (entities.Payment, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Payment{}, ErrInvalidStoreID
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	lock := u.locks.get(storeID)
	lock.Lock()
	defer lock.Unlock()

	store, err := u.loadStore(ctx, storeID)
	if err != nil {
		return entities.Payment{}, err
	}

	cfg := u.config.Get()
	systemFee := amount * cfg.FeeRate / 100
	storeFee := amount * store.FeeRate / 100
	blockedAmount := amount * cfg.BlockRate / 100
	amountAfterFee := amount - systemFee - storeFee - cfg.FixedFee

	p := entities.Payment{
		ID:      uuid.NewString(),
		StoreID: store.ID,
		Amount:  amount,
		FeeAmounts: entities.FeeAmounts{
			Fixed:  cfg.FixedFee,
			System: systemFee,
			Store:  storeFee,
		},
		AmountAfterFee:   amountAfterFee,
		BlockedAmount:    blockedAmount,
		AvailableBalance: 0,
		Status:           entities.PaymentStatusReceived,
		CreatedAt:        u.now().UTC(),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] purchase create failed store_id=%s err=%v", storeID, err)
		return entities.Payment{}, err
	}

	store.BlockedBalance += amountAfterFee
	if _, err := u.storeRepo.Update(ctx, store); err != nil {
		log.Printf("[payment][usecase] purchase block balance failed store_id=%s payment_id=%s err=%v", storeID, created.ID, err)
		return entities.Payment{}, err
	}

	if u.metrics != nil {
		u.metrics.PaymentsCreatedTotal.WithLabelValues(store.ID).Inc()
		u.metrics.PaymentsCreatedAmountTotal.WithLabelValues(store.ID).Add(amount)
	}
	log.Printf("[payment][usecase] purchase success store_id=%s payment_id=%s amount=%.2f amount_after_fee=%.2f blocked_amount=%.2f",
		store.ID, created.ID, amount, amountAfterFee, blockedAmount)
	return created, nil
}

func (u *PaymentUseCase) ListByStoreID(ctx context.Context, storeID string) ([]entities.Payment, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	if _, err := u.loadStore(ctx, storeID); err != nil {
		return nil, err
	}
	return u.repo.ListByStoreID(ctx, storeID)
}

func (u *PaymentUseCase) GetByIDAndStoreID(ctx context.Context, paymentID, storeID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	storeID = strings.TrimSpace(storeID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if storeID == "" {
		return entities.Payment{}, ErrInvalidStoreID
	}

	p, err := u.repo.GetByIDAndStoreID(ctx, paymentID, storeID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// MarkProcessed moves the matching received payments to processed. Each one
// gets availableBalance = amountAfterFee - blockedAmount; the summed portion
// moves from the store's blocked to its available balance.
func (u *PaymentUseCase) MarkProcessed(ctx context.Context, storeID string, paymentIDs []string) (float64, error) {
	return u.applyTransition(ctx, storeID, paymentIDs, entities.PaymentStatusReceived, func(p *entities.Payment) float64 {
		p.AvailableBalance = p.AmountAfterFee - p.BlockedAmount
		p.Status = entities.PaymentStatusProcessed
		return p.AvailableBalance
	}, u.settleUnblock, "processed")
}

// MarkCompleted releases the hold-back of the matching processed payments:
// blockedAmount folds into the payment's available balance and the summed
// release moves from the store's blocked to its available balance.
func (u *PaymentUseCase) MarkCompleted(ctx context.Context, storeID string, paymentIDs []string) (float64, error) {
	return u.applyTransition(ctx, storeID, paymentIDs, entities.PaymentStatusProcessed, func(p *entities.Payment) float64 {
		released := p.BlockedAmount
		p.AvailableBalance += released
		p.BlockedAmount = 0
		p.Status = entities.PaymentStatusCompleted
		return released
	}, u.settleUnblock, "completed")
}

// MarkRejected writes off the matching received payments entirely: the full
// amountAfterFee leaves the store's blocked balance and nothing is credited
// to the available balance. The store's portion is forfeited together with
// the principal.
func (u *PaymentUseCase) MarkRejected(ctx context.Context, storeID string, paymentIDs []string) (float64, error) {
	return u.applyTransition(ctx, storeID, paymentIDs, entities.PaymentStatusReceived, func(p *entities.Payment) float64 {
		amount := p.AmountAfterFee
		p.AvailableBalance = 0
		p.BlockedAmount = 0
		p.Status = entities.PaymentStatusRejected
		return amount
	}, u.settleReject, "rejected")
}

// applyTransition runs one batch transition under the store's lock: payments
// owned by the store, listed in paymentIDs and currently in fromStatus are
// mutated and their reported amounts summed; everything else is skipped
// silently. The settle callback then applies the aggregate to the store.
func (u *PaymentUseCase) applyTransition(
	ctx context.Context,
	storeID string,
	paymentIDs []string,
	fromStatus entities.PaymentStatus,
	mutate func(p *entities.Payment) float64,
	settle func(ctx context.Context, store entities.Store, amount float64) error,
	name string,
) (float64, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return 0, ErrInvalidStoreID
	}
	if len(paymentIDs) == 0 {
		return 0, ErrInvalidPaymentIDs
	}

	lock := u.locks.get(storeID)
	lock.Lock()
	defer lock.Unlock()

	store, err := u.loadStore(ctx, storeID)
	if err != nil {
		return 0, err
	}

	wanted := make(map[string]struct{}, len(paymentIDs))
	for _, id := range paymentIDs {
		wanted[id] = struct{}{}
	}

	payments, err := u.repo.ListByStoreID(ctx, store.ID)
	if err != nil {
		return 0, err
	}

	var amount float64
	touched := 0
	for _, p := range payments {
		if _, ok := wanted[p.ID]; !ok || p.Status != fromStatus {
			continue
		}
		amount += mutate(&p)
		if _, err := u.repo.Update(ctx, p); err != nil {
			log.Printf("[payment][usecase] %s update failed store_id=%s payment_id=%s err=%v", name, store.ID, p.ID, err)
			return 0, err
		}
		touched++
	}

	if err := settle(ctx, store, amount); err != nil {
		log.Printf("[payment][usecase] %s settle failed store_id=%s err=%v", name, store.ID, err)
		return 0, err
	}

	if u.metrics != nil {
		u.recordTransition(name, store.ID, touched, amount)
	}
	log.Printf("[payment][usecase] %s success store_id=%s requested=%d touched=%d amount=%.2f", name, store.ID, len(paymentIDs), touched, amount)
	return amount, nil
}

// settleUnblock moves amount from blocked to available on the store.
func (u *PaymentUseCase) settleUnblock(ctx context.Context, store entities.Store, amount float64) error {
	store.AvailableBalance += amount
	store.BlockedBalance -= amount
	_, err := u.storeRepo.Update(ctx, store)
	return err
}

// settleReject removes amount from the store's blocked balance with no
// counterpart credit: rejected funds leave circulation entirely.
func (u *PaymentUseCase) settleReject(ctx context.Context, store entities.Store, amount float64) error {
	store.BlockedBalance -= amount
	_, err := u.storeRepo.Update(ctx, store)
	return err
}

// Payout sweeps every processed or completed payment with a positive
// available balance, zeroes those balances and debits the total from the
// store. A store may pay out at most once per rolling window; the
// eligibility check and the sweep run in the same critical section.
func (u *PaymentUseCase) Payout(ctx context.Context, storeID string) (PayoutResult, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return PayoutResult{}, ErrInvalidStoreID
	}

	lock := u.locks.get(storeID)
	lock.Lock()
	defer lock.Unlock()

	store, err := u.loadStore(ctx, storeID)
	if err != nil {
		return PayoutResult{}, err
	}

	now := u.now().UTC()
	if store.LastPayoutAt != nil && now.Sub(*store.LastPayoutAt) < u.payoutWindow {
		if u.metrics != nil {
			u.metrics.PayoutsRejectedTotal.WithLabelValues(store.ID).Inc()
		}
		log.Printf("[payment][usecase] payout refused store_id=%s last_payout_at=%s", store.ID, store.LastPayoutAt.Format(time.RFC3339))
		return PayoutResult{}, ErrPayoutNotEligible
	}

	payments, err := u.repo.ListByStoreID(ctx, store.ID)
	if err != nil {
		return PayoutResult{}, err
	}

	result := PayoutResult{IDs: []string{}}
	for _, p := range payments {
		if p.AvailableBalance <= 0 {
			continue
		}
		if p.Status != entities.PaymentStatusProcessed && p.Status != entities.PaymentStatusCompleted {
			continue
		}
		result.Amount += p.AvailableBalance
		result.IDs = append(result.IDs, p.ID)
		p.AvailableBalance = 0
		if _, err := u.repo.Update(ctx, p); err != nil {
			log.Printf("[payment][usecase] payout update failed store_id=%s payment_id=%s err=%v", store.ID, p.ID, err)
			return PayoutResult{}, err
		}
	}

	store.AvailableBalance -= result.Amount
	store.LastPayoutAt = &now
	if _, err := u.storeRepo.Update(ctx, store); err != nil {
		log.Printf("[payment][usecase] payout debit failed store_id=%s err=%v", store.ID, err)
		return PayoutResult{}, err
	}

	if u.metrics != nil {
		u.metrics.PayoutsTotal.WithLabelValues(store.ID).Inc()
		u.metrics.PayoutsAmountTotal.WithLabelValues(store.ID).Add(result.Amount)
	}
	log.Printf("[payment][usecase] payout success store_id=%s payments=%d amount=%.2f", store.ID, len(result.IDs), result.Amount)
	return result, nil
}

func (u *PaymentUseCase) loadStore(ctx context.Context, storeID string) (entities.Store, error) {
	store, err := u.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return entities.Store{}, err
	}
	if store.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return store, nil
}

func (u *PaymentUseCase) recordTransition(name, storeID string, touched int, amount float64) {
	switch name {
	case "processed":
		u.metrics.PaymentsProcessedTotal.WithLabelValues(storeID).Add(float64(touched))
		u.metrics.BalanceUnblockedAmountTotal.WithLabelValues(storeID).Add(amount)
	case "completed":
		u.metrics.PaymentsCompletedTotal.WithLabelValues(storeID).Add(float64(touched))
		u.metrics.BalanceUnblockedAmountTotal.WithLabelValues(storeID).Add(amount)
	case "rejected":
		u.metrics.PaymentsRejectedTotal.WithLabelValues(storeID).Add(float64(touched))
		u.metrics.BalanceRejectedAmountTotal.WithLabelValues(storeID).Add(amount)
	}
}
