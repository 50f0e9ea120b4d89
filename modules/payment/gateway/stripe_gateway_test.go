package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(15000), MinorUnits(15000, "clp"))
	assert.Equal(t, int64(15000), MinorUnits(14999.6, "CLP"))
	assert.Equal(t, int64(1999), MinorUnits(19.99, "usd"))
}

func TestParseEvent_RejectsBadSignature(t *testing.T) {
	g := &StripeGateway{webhookSecret: "whsec_test", currency: "clp"}

	_, err := g.ParseEvent([]byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`), "t=1,v1=deadbeef")
	assert.Error(t, err)
}
