package razorpay

//go:generate go run go.uber.org/mock/mockgen -source=./razorpay.go -destination=./mocks/razorpay_mock.go -package=mocks

import (
	"context"
	"fmt"

	razorpayGo "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog/log"

	"roam/config"
	"roam/infras/otel"
	"roam/shared/constant"
)

const (
	otelAttrOrderID = "order_id"
	otelAttrAmount  = "amount"
)

// Order is the subset of the gateway order object the service layer needs.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway creates payment orders and verifies payment signatures against the
// configured key secret.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]any) (Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type gateway struct {
	client *razorpayGo.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Gateway {
	client := razorpayGo.NewClient(
		config.External.Razorpay.KeyID,
		config.External.Razorpay.KeySecret,
	)

	log.Info().Msg("Razorpay client initialized")

	return &gateway{
		client: client,
		config: config,
		otel:   otel,
	}
}

// CreateOrder registers an order with the gateway. Amount is in the currency's
// minor unit (paise for INR).
func (g *gateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]any) (order Order, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Error().Err(err).Str("receipt", receipt).Msg("Failed to create gateway order")

		return Order{}, fmt.Errorf("failed to create gateway order: %w", err)
	}

	order = orderFromResponse(body)
	order.Receipt = receipt

	scope.SetAttributes(map[string]any{
		otelAttrOrderID: order.ID,
		otelAttrAmount:  order.Amount,
	})

	return order, nil
}

func (g *gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(g.config.External.Razorpay.KeySecret, orderID, paymentID, signature)
}

func (g *gateway) KeyID() string {
	return g.config.External.Razorpay.KeyID
}

// orderFromResponse picks the fields we keep out of the gateway's loosely
// typed response map.
func orderFromResponse(body map[string]interface{}) Order {
	order := Order{}

	if id, ok := body["id"].(string); ok {
		order.ID = id
	}

	switch amount := body["amount"].(type) {
	case float64:
		order.Amount = int64(amount)
	case int64:
		order.Amount = amount
	case int:
		order.Amount = int64(amount)
	}

	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}

	if status, ok := body["status"].(string); ok {
		order.Status = status
	}

	return order
}
