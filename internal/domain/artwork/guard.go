package artwork

import (
	"database/sql"
	"strings"

	"github.com/artvault/artvault-api/internal/pkg/jwt"
)

// Guard authenticates raw authorization headers and enforces the mutation
// rules: mutations need admin or artist role, and artists may only touch
// their own rows. Transport-agnostic so non-HTTP callers can reuse it.
type Guard struct {
	jwt *jwt.Service
}

// NewGuard creates an authorization guard backed by the given verifier
func NewGuard(jwtService *jwt.Service) *Guard {
	return &Guard{jwt: jwtService}
}

// Authenticate extracts and verifies the bearer credential from a raw
// Authorization header value
func (g *Guard) Authenticate(header string) (*jwt.Claims, error) {
	if header == "" {
		return nil, ErrUnauthenticated
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, ErrUnauthenticated
	}

	claims, err := g.jwt.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AuthorizeMutation requires the caller to be an admin or an artist
func (g *Guard) AuthorizeMutation(claims *jwt.Claims) error {
	if claims == nil {
		return ErrUnauthenticated
	}
	if claims.IsAdmin() || claims.IsArtist() {
		return nil
	}
	return ErrNotAllowed
}

// AuthorizeOwnership lets admins through and requires artists to own the
// row: the caller subject must equal artist_id, compared as strings
func (g *Guard) AuthorizeOwnership(claims *jwt.Claims, artistID sql.NullString) error {
	if claims == nil {
		return ErrUnauthenticated
	}
	if claims.IsAdmin() {
		return nil
	}
	if claims.IsArtist() && artistID.Valid && artistID.String == claims.Subject {
		return nil
	}
	return ErrNotOwner
}
