package extract

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"

	"text-summarizer/internal/config"
	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/observability/metrics"
	"text-summarizer/internal/resilience/circuitbreaker"
	"text-summarizer/internal/resilience/retry"
)

const userAgent = "TextSummarizerBot/1.0"

// Fetcher downloads article pages and extracts their main text with the
// Readability algorithm.
//
// Safe for concurrent use.
type Fetcher struct {
	client   *http.Client
	breaker  *circuitbreaker.CircuitBreaker
	retry    retry.Config
	cfg      config.FetchConfig
	resolver *net.Resolver
}

// NewFetcher creates a Fetcher. When cfg.DenyPrivateIPs is set, the target,
// every redirect target and every dialed address are checked against
// private ranges.
func NewFetcher(cfg config.FetchConfig) *Fetcher {
	f := &Fetcher{
		breaker:  circuitbreaker.New(circuitbreaker.URLFetchConfig()),
		retry:    retry.FetchConfig(),
		cfg:      cfg,
		resolver: net.DefaultResolver,
	}

	dialer := &net.Dialer{Timeout: 5 * time.Second}
	if cfg.DenyPrivateIPs {
		dialer.Control = denyPrivateDial
	}

	f.client = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.cfg.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			return f.validate(req.Context(), req.URL.String())
		},
	}
	return f
}

// denyPrivateDial rejects connections to private addresses after DNS
// resolution, closing the gap between validation and dialing.
func denyPrivateDial(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	if ip := net.ParseIP(host); ip != nil && entity.IsPrivateIP(ip) {
		return fmt.Errorf("%w: %s", ErrPrivateIP, ip)
	}
	return nil
}

// validate checks scheme and host and, when configured, that the host does
// not resolve to a private address.
func (f *Fetcher) validate(ctx context.Context, rawURL string) error {
	if err := entity.ValidateSourceURL(rawURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !f.cfg.DenyPrivateIPs {
		return nil
	}

	u, _ := url.Parse(rawURL)
	host := u.Hostname()
	addrs, err := f.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, host, err)
	}
	for _, addr := range addrs {
		if entity.IsPrivateIP(addr.IP) {
			return fmt.Errorf("%w: %s resolves to %s", ErrPrivateIP, host, addr.IP)
		}
	}
	return nil
}

// Fetch downloads rawURL and returns its article text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (entity.InputDocument, error) {
	if err := f.validate(ctx, rawURL); err != nil {
		return entity.InputDocument{}, err
	}

	start := time.Now()
	var content string
	err := retry.WithBackoff(ctx, f.retry, func() error {
		res, err := f.breaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, rawURL)
		})
		if err != nil {
			return err
		}
		content = res.(string)
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RecordContentFetchFailed(duration)
		slog.WarnContext(ctx, "article fetch failed",
			slog.String("url", rawURL),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		if circuitbreaker.IsRejection(err) {
			return entity.InputDocument{}, fmt.Errorf("%w: circuit open", ErrFetchFailed)
		}
		return entity.InputDocument{}, err
	}

	metrics.RecordContentFetchSuccess(duration)
	slog.InfoContext(ctx, "article fetched",
		slog.String("url", rawURL),
		slog.Duration("duration", duration))
	return entity.InputDocument{Text: content, Source: entity.SourceURL, Filename: rawURL}, nil
}

func (f *Fetcher) doFetch(ctx context.Context, rawURL string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			// Redirect and dial policy errors are final.
			if errors.Is(urlErr.Err, ErrTooManyRedirects) || errors.Is(urlErr.Err, ErrPrivateIP) || errors.Is(urlErr.Err, ErrInvalidURL) {
				return "", urlErr.Err
			}
		}
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			RetryAfter: retry.ParseRetryAfter(resp.Header),
		})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if int64(len(body)) > f.cfg.MaxBodySize {
		return "", fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, f.cfg.MaxBodySize)
	}

	pageURL := resp.Request.URL
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: readability: %v", ErrNoContent, err)
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}
