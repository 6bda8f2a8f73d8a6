package middlewares

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider issues, revokes and reads the session marker cookie.
type SessionProvider interface {
	Issue(ctx *AppContext)
	Revoke(ctx *AppContext)
	IsAuthenticated(ctx *AppContext) bool
}

// CredentialChecker validates a submitted admin secret. It returns nil on a
// match and auth.ErrInvalidCredential on a mismatch; any other error is an
// unexpected failure.
type CredentialChecker interface {
	Check(submitted string) error
}
