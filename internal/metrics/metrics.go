package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics wraps collectors tracking the coin economy.
type EngineMetrics struct {
	ledgerOps     *prometheus.CounterVec
	claims        *prometheus.CounterVec
	compensations *prometheus.CounterVec
	reviews       *prometheus.CounterVec
	couponsLeft   *prometheus.GaugeVec
}

var (
	engineOnce     sync.Once
	engineRegistry *EngineMetrics
)

// Engine returns the lazily registered metrics for the process.
func Engine() *EngineMetrics {
	engineOnce.Do(func() {
		engineRegistry = newEngineMetrics()
		prometheus.MustRegister(
			engineRegistry.ledgerOps,
			engineRegistry.claims,
			engineRegistry.compensations,
			engineRegistry.reviews,
			engineRegistry.couponsLeft,
		)
	})
	return engineRegistry
}

func newEngineMetrics() *EngineMetrics {
	return &EngineMetrics{
		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rewardhub",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger credits and debits segmented by direction, source and outcome.",
		}, []string{"direction", "source", "outcome"}),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rewardhub",
			Subsystem: "rewards",
			Name:      "claims_total",
			Help:      "Reward claim attempts segmented by reward type and outcome.",
		}, []string{"reward_type", "outcome"}),
		compensations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rewardhub",
			Subsystem: "rewards",
			Name:      "compensations_total",
			Help:      "Compensating refunds segmented by trigger.",
		}, []string{"reason"}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rewardhub",
			Subsystem: "review",
			Name:      "decisions_total",
			Help:      "Verification queue decisions segmented by queue and decision.",
		}, []string{"queue", "decision"}),
		couponsLeft: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rewardhub",
			Subsystem: "coupons",
			Name:      "available",
			Help:      "Unused coupon pool entries per reward type.",
		}, []string{"reward_type"}),
	}
}

func (m *EngineMetrics) RecordLedger(direction, source, outcome string) {
	if m == nil {
		return
	}
	m.ledgerOps.WithLabelValues(direction, source, outcome).Inc()
}

func (m *EngineMetrics) RecordClaim(rewardType, outcome string) {
	if m == nil {
		return
	}
	m.claims.WithLabelValues(rewardType, outcome).Inc()
}

func (m *EngineMetrics) RecordCompensation(reason string) {
	if m == nil {
		return
	}
	m.compensations.WithLabelValues(reason).Inc()
}

func (m *EngineMetrics) RecordReview(queue, decision string) {
	if m == nil {
		return
	}
	m.reviews.WithLabelValues(queue, decision).Inc()
}

func (m *EngineMetrics) SetCouponsAvailable(rewardType string, n int) {
	if m == nil {
		return
	}
	m.couponsLeft.WithLabelValues(rewardType).Set(float64(n))
}
