package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artvault/artvault-api/internal/pkg/jwt"
)

func TestAuth(t *testing.T) {
	jwtService := jwt.NewService("test-secret", 15*time.Minute)
	mw := Auth(jwtService)

	passthrough := func(t *testing.T) (http.Handler, *bool) {
		called := false
		return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			claims := GetClaims(r.Context())
			if claims == nil {
				t.Fatal("expected claims in context")
			}
			if claims.Subject != "42" || claims.Role != jwt.RoleArtist {
				t.Fatalf("unexpected claims: %+v", claims)
			}
			w.WriteHeader(http.StatusOK)
		})), &called
	}

	t.Run("missing header", func(t *testing.T) {
		h, called := passthrough(t)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
		if *called {
			t.Fatal("handler should not run")
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		h, called := passthrough(t)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
		if *called {
			t.Fatal("handler should not run")
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		h, called := passthrough(t)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
		if *called {
			t.Fatal("handler should not run")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewService("test-secret", -time.Minute).GenerateAccessToken("42", jwt.RoleArtist)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		h, _ := passthrough(t)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("valid token passes claims", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken("42", jwt.RoleArtist)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		h, called := passthrough(t)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if !*called {
			t.Fatal("handler should run")
		}
	})
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole(jwt.RoleAdmin)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without claims, got %d", rr.Code)
	}
}
