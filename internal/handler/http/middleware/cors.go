// Package middleware holds cross-origin handling for the browser form and API.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins. "*" allows any
	// origin but disables credentials.
	AllowedOrigins []string

	// Default: GET, POST, OPTIONS
	AllowedMethods []string

	// Default: Content-Type, Authorization, X-Request-ID
	AllowedHeaders []string

	// MaxAge is the preflight cache duration in seconds. Default: 86400
	MaxAge int

	Logger *slog.Logger
}

// NewCORSConfig validates origins and returns a config with default methods,
// headers and max age.
func NewCORSConfig(origins []string, logger *slog.Logger) (CORSConfig, error) {
	parsed, err := ParseOrigins(origins)
	if err != nil {
		return CORSConfig{}, err
	}
	return CORSConfig{
		AllowedOrigins: parsed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         86400,
		Logger:         logger,
	}, nil
}

// ParseOrigins trims and validates origin strings. Each origin must be an
// http or https URL without path, query, fragment or trailing slash.
func ParseOrigins(origins []string) ([]string, error) {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			out = append(out, o)
			continue
		}
		u, err := url.Parse(o)
		if err != nil {
			return nil, fmt.Errorf("invalid origin URL %q: %w", o, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("origin must use http or https scheme: %s", o)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("origin must include a host: %s", o)
		}
		if strings.HasSuffix(o, "/") {
			return nil, fmt.Errorf("origin must not have trailing slash: %s", o)
		}
		if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
			return nil, fmt.Errorf("origin must not include path, query or fragment: %s", o)
		}
		out = append(out, o)
	}
	return out, nil
}

func (c CORSConfig) wildcard() bool {
	return slices.Contains(c.AllowedOrigins, "*")
}

func (c CORSConfig) allowed(origin string) bool {
	return c.wildcard() || slices.Contains(c.AllowedOrigins, origin)
}

// CORS sets cross-origin headers for allowed origins and answers preflight
// requests with 204. Requests without an Origin header pass through untouched.
// Disallowed origins get no CORS headers, so the browser blocks the response.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.allowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if config.wildcard() {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
