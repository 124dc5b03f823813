package entity

import (
	"fmt"
	"net"
	"net/url"
)

// maxURLLength caps article URLs accepted as input.
const maxURLLength = 2048

// ValidateSourceURL checks that an article URL is well formed and uses http or https.
// It does not resolve the host; network-level checks happen at fetch time.
func ValidateSourceURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required", Err: ErrInvalidInput}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
			Err:     ErrInvalidInput,
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "URL is malformed", Err: ErrInvalidInput}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme", Err: ErrInvalidInput}
	}
	if parsed.Hostname() == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host", Err: ErrInvalidInput}
	}
	return nil
}

// IsPrivateIP reports whether ip is loopback, private, link-local or unspecified.
// 169.254.169.254 (cloud metadata) falls under link-local.
func IsPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
