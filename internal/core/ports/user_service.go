package ports

import "context"

// RegisterResult is the response of the registration endpoint. InsertedID is
// nil when the email was already registered, mirroring the persistence
// gateway's acknowledgement shape.
type RegisterResult struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

// UserService covers registration and role lookup.
type UserService interface {
	// Register stores the profile once per email. Registering an existing
	// email is a no-op that reports InsertedID == nil.
	Register(ctx context.Context, profile map[string]any) (*RegisterResult, error)
	// Role returns the stored role for email, or "" when the user is unknown.
	Role(ctx context.Context, email string) (string, error)
}
