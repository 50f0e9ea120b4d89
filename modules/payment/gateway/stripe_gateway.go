package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"court-reservation-api/core/config"
	"court-reservation-api/core/logger"
	"court-reservation-api/modules/payment/entity"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const metadataPaymentID = "payment_id"

// Gateway opens checkouts and verifies webhook notifications.
type Gateway interface {
	CreateIntent(ctx context.Context, paymentID int64, amount float64, idempotencyKey string) (*entity.Intent, error)
	ParseEvent(payload []byte, signature string) (*entity.GatewayEvent, error)
}

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	currency      string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	currency := strings.ToLower(cfg.Currency)
	if currency == "" {
		currency = string(stripe.CurrencyCLP)
	}
	return &StripeGateway{
		api:           client.New(cfg.SecretKey, nil),
		webhookSecret: cfg.WebhookSecret,
		currency:      currency,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, paymentID int64, amount float64, idempotencyKey string) (*entity.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(amount, g.currency)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	params.AddMetadata(metadataPaymentID, strconv.FormatInt(paymentID, 10))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		logger.Error("StripeGateway:CreateIntent:Error:", "payment_id", paymentID, "error", err)
		return nil, err
	}

	return &entity.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// ParseEvent verifies the signature and reduces the event to what the
// payment service acts on.
func (g *StripeGateway) ParseEvent(payload []byte, signature string) (*entity.GatewayEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("verify webhook: %w", err)
	}

	var kind string
	switch string(event.Type) {
	case "payment_intent.succeeded":
		kind = entity.GatewayEventSucceeded
	case "payment_intent.payment_failed":
		kind = entity.GatewayEventFailed
	default:
		return &entity.GatewayEvent{Type: entity.GatewayEventIgnored}, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}
	id, err := strconv.ParseInt(pi.Metadata[metadataPaymentID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("payment intent %s has no %s metadata", pi.ID, metadataPaymentID)
	}

	return &entity.GatewayEvent{Type: kind, IntentID: pi.ID, PaymentID: id}, nil
}

var zeroDecimal = map[string]bool{
	"clp": true, "jpy": true, "krw": true, "pyg": true, "vnd": true,
}

// MinorUnits converts an amount to the smallest currency unit.
func MinorUnits(amount float64, currency string) int64 {
	if zeroDecimal[strings.ToLower(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}
