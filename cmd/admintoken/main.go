package main

import (
	"fmt"
	"os"
	"time"

	"github.com/okandemir/profwhere/internal/config"
	"github.com/okandemir/profwhere/internal/pkg/auth"
	"github.com/okandemir/profwhere/internal/pkg/helpers"
	"github.com/okandemir/profwhere/internal/pkg/logger"
)

// Mints an admin token for the reload endpoint using the configured secret.
func main() {
	cfg, err := config.LoadConfig(config.ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		logger.Error().Msg("auth.secret is not configured, refusing to mint a token")
		os.Exit(1)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.Auth.Issuer,
	})

	token, expiry, err := jwtService.GenerateAdminToken()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate admin token")
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires: %s\n", expiry.Format(time.RFC3339))
}
