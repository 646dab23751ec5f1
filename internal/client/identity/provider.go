// Package identity signs users in against the external identity provider
// and exposes the resulting credentials as an auto-refreshing token source.
//
// The provider is the source of truth for identity: this package never
// verifies tokens, it only extracts the user's profile claims for display.
// Verification happens in the backend.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"github.com/blogsphere/blogsphere-cli/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

var ErrNoEmailClaim = errors.New("token carries no email claim")

type Provider struct {
	cfg *oauth2.Config
}

func NewProvider(tokenURL, clientID string) *Provider {
	return &Provider{
		cfg: &oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{TokenURL: tokenURL},
		},
	}
}

// SignIn exchanges the user's credentials for a token and returns the
// identity extracted from its claims together with a token source that
// refreshes itself; credential refresh stays the provider's responsibility.
// The password buffer is wiped before returning.
func (p *Provider) SignIn(ctx context.Context, email string, password []byte) (*models.User, oauth2.TokenSource, error) {
	defer common.WipeByteArray(password)

	tok, err := p.cfg.PasswordCredentialsToken(ctx, email, string(password))
	if err != nil {
		return nil, nil, fmt.Errorf("sign in: %w", err)
	}

	user, err := userFromToken(tok)
	if err != nil {
		return nil, nil, err
	}

	return user, p.cfg.TokenSource(ctx, tok), nil
}

// userFromToken extracts profile claims from the id_token if the provider
// issued one, falling back to the access token. The parse is unverified on
// purpose: the client renders the profile, the backend enforces it.
func userFromToken(tok *oauth2.Token) (*models.User, error) {
	raw := tok.AccessToken
	if id, ok := tok.Extra("id_token").(string); ok && id != "" {
		raw = id
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrNoEmailClaim
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &models.User{Email: email, DisplayName: name, PhotoURL: picture}, nil
}
