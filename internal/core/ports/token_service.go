package ports

// TokenService issues and verifies signed, time-limited credential tokens.
// The payload is an arbitrary set of claims; callers conventionally include
// an "email" claim, which protected endpoints rely on.
type TokenService interface {
	Issue(claims map[string]any) (string, error)
	// Verify returns the decoded claims, or domain.ErrUnauthorized when the
	// token is malformed, expired, or carries a bad signature.
	Verify(token string) (map[string]any, error)
}
