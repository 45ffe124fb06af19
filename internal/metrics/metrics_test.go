package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEngineMetrics_Record(t *testing.T) {
	m := newEngineMetrics()

	m.RecordClaim("discount_30", "fulfilled")
	m.RecordClaim("discount_30", "fulfilled")
	m.RecordClaim("discount_30", "no_coupons")
	m.RecordCompensation("no_coupons")
	m.SetCouponsAvailable("discount_50", 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.claims.WithLabelValues("discount_30", "fulfilled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.claims.WithLabelValues("discount_30", "no_coupons")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compensations.WithLabelValues("no_coupons")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.couponsLeft.WithLabelValues("discount_50")))
}

func TestEngineMetrics_NilSafe(t *testing.T) {
	var m *EngineMetrics
	assert.NotPanics(t, func() {
		m.RecordLedger("earn", "signup", "ok")
		m.RecordClaim("generic", "fulfilled")
		m.RecordCompensation("no_coupons")
		m.RecordReview("social_follow", "approved")
		m.SetCouponsAvailable("discount_30", 1)
	})
}

func TestEngine_Singleton(t *testing.T) {
	assert.Same(t, Engine(), Engine())
}
