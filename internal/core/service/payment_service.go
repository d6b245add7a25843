package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/commercebook/commerce-api/internal/api/metrics"
	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

const paymentCurrency = "usd"

// PaymentService converts listing prices into processor payment intents.
type PaymentService struct {
	provider ports.PaymentProvider
	log      zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, log zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, log: log}
}

// CreateIntent requests a card-only USD payment intent for price and returns
// the client secret. The amount is price*100 truncated to minor units.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", domain.ErrInvalidPrice
	}

	amount := int64(price * 100)
	secret, err := s.provider.CreateIntent(ctx, amount, paymentCurrency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	metrics.PaymentAmountCents.Observe(float64(amount))
	s.log.Info().Int64("amount_cents", amount).Msg("payment intent created")
	return secret, nil
}
