package auth

import (
	"context"
	"fmt"

	"github.com/eshop-labs/storefront-api/pkg/config"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
	"google.golang.org/api/idtoken"
)

// FederatedIdentity is the minimal identity extracted from a verified
// provider token.
type FederatedIdentity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityVerifier validates a provider-issued ID token and extracts the
// identity it asserts.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*FederatedIdentity, error)
}

type googleVerifier struct {
	audience string
}

// NewGoogleVerifier builds a verifier for Google-issued ID tokens.
func NewGoogleVerifier(cfg config.FederatedConfig) (IdentityVerifier, error) {
	if cfg.Audience == "" {
		return nil, fmt.Errorf("federated audience is required")
	}
	return &googleVerifier{audience: cfg.Audience}, nil
}

func (g *googleVerifier) Verify(ctx context.Context, rawToken string) (*FederatedIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, g.audience)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid identity token")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "identity token missing email")
	}
	name, _ := payload.Claims["name"].(string)

	return &FederatedIdentity{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}
