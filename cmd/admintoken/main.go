// Command admintoken prints a bearer token for the admin API, signed with
// AUTH_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"banner-rotator/internal/config"
	"banner-rotator/internal/security"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	caps := flag.String("caps", security.CapManageOptions, "comma separated capabilities")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var capabilities []string
	for _, c := range strings.Split(*caps, ",") {
		if c = strings.TrimSpace(c); c != "" {
			capabilities = append(capabilities, c)
		}
	}

	token, err := security.NewTokens([]byte(cfg.Auth.JWTSecret)).Issue(*subject, capabilities, cfg.Auth.TokenLifetime)
	if err != nil {
		slog.Error("failed to issue token", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(token)
}
