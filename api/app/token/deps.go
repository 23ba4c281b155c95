package token

import (
	"context"

	"github.com/tokenmint/tokenmint/tokens"
)

// TokenLifecycle is the slice of the issuer the resource needs
type TokenLifecycle interface {
	Issue(
		ctx context.Context,
		userID string,
		scopes []string,
		expiresInMinutes int,
	) (*tokens.AccessToken, error)
	ListActive(ctx context.Context, userID string) ([]*tokens.AccessToken, error)
}
