// Package stripe adapts the Stripe PaymentIntents API to the
// ports.PaymentProvider interface.
package stripe

import (
	"context"
	"fmt"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client creates card-only payment intents against Stripe.
type Client struct {
	api *client.API
}

// New builds a Client authenticated with the given secret key.
func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// CreateIntent requests a card-only payment intent for amount minor units and
// returns the client secret the frontend confirms the payment with.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(amount),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
