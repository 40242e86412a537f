package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics groups the prometheus collectors for the payment ledger.
type LedgerMetrics struct {
	// Purchases
	PaymentsCreatedTotal       *prometheus.CounterVec
	PaymentsCreatedAmountTotal *prometheus.CounterVec

	// Lifecycle transitions
	PaymentsProcessedTotal *prometheus.CounterVec
	PaymentsCompletedTotal *prometheus.CounterVec
	PaymentsRejectedTotal  *prometheus.CounterVec

	// Amounts moved between balance buckets per transition
	BalanceUnblockedAmountTotal *prometheus.CounterVec
	BalanceRejectedAmountTotal  *prometheus.CounterVec

	// Payouts
	PayoutsTotal         *prometheus.CounterVec
	PayoutsAmountTotal   *prometheus.CounterVec
	PayoutsRejectedTotal *prometheus.CounterVec
}

func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	factory := promauto.With(reg)

	return &LedgerMetrics{
		PaymentsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payments_created_total",
			Help: "Number of payments created (purchases).",
		}, []string{"store_id"}),
		PaymentsCreatedAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payments_created_amount_total",
			Help: "Gross amount of payments created.",
		}, []string{"store_id"}),
		PaymentsProcessedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payments_processed_total",
			Help: "Number of payments moved to processed.",
		}, []string{"store_id"}),
		PaymentsCompletedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payments_completed_total",
			Help: "Number of payments moved to completed.",
		}, []string{"store_id"}),
		PaymentsRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payments_rejected_total",
			Help: "Number of payments rejected.",
		}, []string{"store_id"}),
		BalanceUnblockedAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_balance_unblocked_amount_total",
			Help: "Amount moved from blocked to available balance.",
		}, []string{"store_id"}),
		BalanceRejectedAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_balance_rejected_amount_total",
			Help: "Amount written off from blocked balance on rejection.",
		}, []string{"store_id"}),
		PayoutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payouts_total",
			Help: "Number of executed payouts.",
		}, []string{"store_id"}),
		PayoutsAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payouts_amount_total",
			Help: "Amount debited from available balance by payouts.",
		}, []string{"store_id"}),
		PayoutsRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_payouts_rejected_total",
			Help: "Number of payout requests refused by the daily window.",
		}, []string{"store_id"}),
	}
}
