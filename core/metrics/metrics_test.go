package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.ObserveAvailabilityQuery("ok", 3)
	s.ObserveAvailabilityQuery("ok", 0)
	s.ObserveAvailabilityQuery("store_unavailable", 0)
	s.IncPaymentEvent("payment_intent.succeeded")

	assert.Equal(t, 2.0, testutil.ToFloat64(s.AvailabilityQueries.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.AvailabilityQueries.WithLabelValues("store_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.PaymentEvents.WithLabelValues("payment_intent.succeeded")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.AvailableSlots))
}
