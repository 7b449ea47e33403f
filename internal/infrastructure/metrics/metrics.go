package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the reconciliation pipeline's counters.
type OrderMetrics struct {
	ReservationsCreatedTotal prometheus.Counter
	ReservationsExpiredTotal prometheus.Counter

	GatewayCallbacksTotal *prometheus.CounterVec

	OrdersFinalizedTotal       prometheus.Counter
	OrdersFinalizedAmountTotal prometheus.Counter
	FinalizationFailuresTotal  prometheus.Counter

	SideEffectFailuresTotal *prometheus.CounterVec
}

// Callback result labels.
const (
	CallbackFinalized        = "finalized"
	CallbackChecksumMismatch = "checksum_mismatch"
	CallbackMalformed        = "malformed_payload"
	CallbackPaymentFailed    = "payment_failed"
	CallbackNoReservation    = "no_matching_reservation"
	CallbackLookupFailed     = "lookup_failed"
	CallbackAmountMismatch   = "amount_mismatch"
	CallbackFinalizeFailed   = "finalize_failed"
)

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)
	return &OrderMetrics{
		ReservationsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Pending orders created at checkout",
		}),
		ReservationsExpiredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reservations_expired_total",
			Help: "Pending orders deleted by the expiry sweep",
		}),
		GatewayCallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_callbacks_total",
			Help: "Inbound gateway notifications by processing result",
		}, []string{"result"}),
		OrdersFinalizedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_finalized_total",
			Help: "Reservations converted into permanent orders",
		}),
		OrdersFinalizedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_finalized_amount_total",
			Help: "Total finalized amount in cents",
		}),
		FinalizationFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "finalization_failures_total",
			Help: "Finalization transactions rolled back",
		}),
		SideEffectFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "side_effect_failures_total",
			Help: "Post-commit side effect failures",
		}, []string{"effect"}),
	}
}

func (m *OrderMetrics) RecordCallback(result string) {
	m.GatewayCallbacksTotal.WithLabelValues(result).Inc()
}

func (m *OrderMetrics) RecordFinalized(amount int64) {
	m.OrdersFinalizedTotal.Inc()
	m.OrdersFinalizedAmountTotal.Add(float64(amount))
}

func (m *OrderMetrics) RecordSideEffectFailure(effect string) {
	m.SideEffectFailuresTotal.WithLabelValues(effect).Inc()
}
