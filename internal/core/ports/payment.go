package ports

import "context"

// PaymentProvider creates a processor-side payment intent and returns its
// client-usable secret. Amount is in minor units (cents).
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentService converts a listing price into a payment intent.
type PaymentService interface {
	// CreateIntent returns domain.ErrInvalidPrice for non-positive prices.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}
