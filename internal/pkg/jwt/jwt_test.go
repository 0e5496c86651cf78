package jwt

import (
	"testing"
	"time"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	svc := NewService("test-secret", 15*time.Minute)

	token, err := svc.GenerateAccessToken("42", RoleArtist)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
	if claims.Role != RoleArtist {
		t.Fatalf("expected artist role, got %q", claims.Role)
	}
	if !claims.IsArtist() || claims.IsAdmin() {
		t.Fatal("expected artist claims")
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Minute).GenerateAccessToken("1", RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := NewService("secret-b", time.Minute).ValidateAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)
	token, err := svc.GenerateAccessToken("1", RoleArtist)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Minute)
	if _, err := svc.ValidateAccessToken("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
