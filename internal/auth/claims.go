package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradekit/tradekit/internal/models"
)

// decodeIdentity extracts identity claims from the token payload without
// verifying the signature. The client trusts the token's format only;
// this decode is a display convenience and never a trust boundary.
func decodeIdentity(token string) (*models.Identity, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("token payload undecodable: %w", err)
	}

	identity := &models.Identity{}

	if id, ok := claims["userId"].(string); ok {
		identity.ID = id
	} else if sub, ok := claims["sub"].(string); ok {
		identity.ID = sub
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("token payload carries no subject claim")
	}

	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	} else if email, ok := claims["email"].(string); ok {
		identity.DisplayName = email
	}

	return identity, nil
}
