package domain

import "errors"

var (
	// ErrUnauthorized is returned when a request carries no valid credential.
	ErrUnauthorized = errors.New("forbidden access")
	// ErrOwnerMismatch is returned when a caller acts on an identity that is
	// not the one proven by their token.
	ErrOwnerMismatch = errors.New("caller does not own target identity")
	// ErrNotSeller is returned when a seller-only operation is attempted by a
	// caller whose stored role is not "seller".
	ErrNotSeller = errors.New("caller is not a seller")

	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrInvalidID is returned when a path or query id is not a 24-character
	// hex document id.
	ErrInvalidID = errors.New("invalid document id")
	// ErrInvalidPrice is returned when a payment is requested for a
	// non-positive price.
	ErrInvalidPrice = errors.New("price must be greater than zero")
)
