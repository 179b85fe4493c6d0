package azure

import (
	"context"
	"errors"
	"time"
)

// Token is a bearer token together with its expiry.
type Token struct {
	Value     string
	ExpiresOn time.Time
}

// TokenProvider supplies the bearer token used to authenticate Azure
// management API calls. Implementations decide how tokens are obtained and
// what expiry to report; the execution path never inspects or refreshes the
// token itself.
type TokenProvider interface {
	// AccessToken returns the token to present on the next API call.
	AccessToken(ctx context.Context) (Token, error)
}

// staticTokenLifetime is the forward-looking expiry the static provider
// reports for a caller-supplied token. The true remaining lifetime of the
// token is unknown here; expiry and scope validation remain the caller's
// responsibility.
const staticTokenLifetime = time.Hour

// StaticTokenProvider wraps a caller-supplied bearer token for the lifetime
// of a single request. It reports a fixed forward-looking expiry and performs
// no freshness checks.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a TokenProvider over a caller-supplied token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// AccessToken implements TokenProvider.
func (p *StaticTokenProvider) AccessToken(_ context.Context) (Token, error) {
	if p.token == "" {
		return Token{}, errors.New("no access token available")
	}
	return Token{Value: p.token, ExpiresOn: time.Now().Add(staticTokenLifetime)}, nil
}
