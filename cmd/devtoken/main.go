package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/artvault/artvault-api/internal/config"
	"github.com/artvault/artvault-api/internal/pkg/jwt"
)

// Mints a signed access token against the configured JWT secret, for poking
// the API locally:
//
//	go run ./cmd/devtoken -subject 42 -role artist
func main() {
	subject := flag.String("subject", "1", "caller id to put in the token subject")
	role := flag.String("role", "artist", "caller role: artist, collector or admin")
	flag.Parse()

	cfg := config.Load()
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	token, err := jwtService.GenerateAccessToken(*subject, *role)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
