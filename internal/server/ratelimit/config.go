package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/outfit-curator/internal/config"
)

// SubmitPath is the form submission route, the only expensive endpoint.
const SubmitPath = "/ui/recommend"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Buckets unused for this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromSettings converts the application's rate limit settings into a limiter Config.
func FromSettings(s config.RateLimitConfig) *Config {
	if !s.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    s.DefaultLimit,
		DefaultWindow:   s.Window,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       ipSet(s.Whitelist),
		Blacklist:       ipSet(s.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(s.SubmitLimit, s.SubmitBurst, s.Window),
	}
}

// DefaultEndpointConfigs limits form submissions, each of which costs one
// call to the recommendation service. Everything else uses the default limit.
func DefaultEndpointConfigs(submitLimit, submitBurst int, window time.Duration) []EndpointConfig {
	return []EndpointConfig{
		{Path: SubmitPath, Method: http.MethodPost, Limit: submitLimit, Window: window, Burst: submitBurst},
	}
}

// ipSet builds a lookup set from a list of client addresses.
func ipSet(ips []string) map[string]bool {
	result := make(map[string]bool, len(ips))
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
