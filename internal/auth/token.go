// Package auth supplies bearer tokens for platform API requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// EnvAPIToken is the environment variable consulted by EnvTokenProvider.
const EnvAPIToken = "TURSO_API_TOKEN"

// ErrTokenNotSet indicates the configured token source produced nothing.
var ErrTokenNotSet = errors.New("API token is not set")

// TokenProvider supplies the bearer token attached to each request.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenProvider hands out a fixed platform token.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider around a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken implements TokenProvider.
func (p *StaticTokenProvider) GetToken(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", ErrTokenNotSet
	}

	return p.token, nil
}

// EnvTokenProvider reads the token from an environment variable on every
// call, so rotated tokens are picked up without rebuilding the client.
type EnvTokenProvider struct {
	key string
}

// NewEnvTokenProvider creates a provider reading from key; an empty key
// falls back to EnvAPIToken.
func NewEnvTokenProvider(key string) *EnvTokenProvider {
	if key == "" {
		key = EnvAPIToken
	}

	return &EnvTokenProvider{key: key}
}

// GetToken implements TokenProvider.
func (p *EnvTokenProvider) GetToken(ctx context.Context) (string, error) {
	token := os.Getenv(p.key)
	if token == "" {
		return "", fmt.Errorf("%w: environment variable %s is empty", ErrTokenNotSet, p.key)
	}

	return token, nil
}
