package configs

import (
	"net/url"
	"time"
)

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// SiteURL is the public origin of the site embedding the banners. Links
	// to other hosts open in a new tab.
	SiteURL url.URL `env:"SITE_URL" envDefault:"http://localhost:8080"`
	// ClickRateLimit caps click tracking requests per client IP and minute.
	ClickRateLimit int64 `env:"CLICK_RATE_LIMIT" envDefault:"60"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
