// Package csp builds Content-Security-Policy headers.
package csp

import (
	"net/http"
	"strings"
)

// directiveOrder fixes the order of directives in the rendered header.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Policy is a set of CSP directives. The zero value is an empty policy.
// A Policy is not safe for concurrent mutation; build it once and share the
// rendered header.
type Policy struct {
	directives map[string][]string
	reportOnly bool
}

// New returns an empty policy.
func New() *Policy {
	return &Policy{directives: make(map[string][]string)}
}

// Directive sets name to sources, replacing any earlier value.
func (p *Policy) Directive(name string, sources ...string) *Policy {
	if p.directives == nil {
		p.directives = make(map[string][]string)
	}
	p.directives[name] = sources
	return p
}

// ReportOnly switches the policy to the report-only header.
func (p *Policy) ReportOnly(enabled bool) *Policy {
	p.reportOnly = enabled
	return p
}

// String renders the header value.
func (p *Policy) String() string {
	parts := make([]string, 0, len(p.directives))
	for _, name := range directiveOrder {
		if sources := p.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy is sent in.
func (p *Policy) HeaderName() string {
	if p.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// Apply sets the policy header on h.
func (p *Policy) Apply(h http.Header) {
	if v := p.String(); v != "" {
		h.Set(p.HeaderName(), v)
	}
}

// Middleware sets the policy header on every response of next.
func Middleware(p *Policy) func(http.Handler) http.Handler {
	name, value := p.HeaderName(), p.String()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if value != "" {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PagePolicy serves the summarizer form: same-origin fetches, its own inline
// script and style, and data: images.
func PagePolicy() *Policy {
	return New().
		Directive("default-src", "'self'").
		Directive("script-src", "'self'", "'unsafe-inline'").
		Directive("style-src", "'self'", "'unsafe-inline'").
		Directive("img-src", "'self'", "data:").
		Directive("connect-src", "'self'").
		Directive("frame-ancestors", "'none'").
		Directive("form-action", "'self'").
		Directive("base-uri", "'self'").
		Directive("object-src", "'none'")
}

// SwaggerUIPolicy allows the inline bootstrap and blob: spec loading that
// Swagger UI needs.
func SwaggerUIPolicy() *Policy {
	return New().
		Directive("default-src", "'self'").
		Directive("script-src", "'self'", "'unsafe-inline'").
		Directive("style-src", "'self'", "'unsafe-inline'").
		Directive("img-src", "'self'", "data:").
		Directive("font-src", "'self'", "data:").
		Directive("connect-src", "'self'", "blob:").
		Directive("frame-ancestors", "'none'").
		Directive("base-uri", "'self'").
		Directive("object-src", "'none'")
}

// APIPolicy is for JSON and plain-text responses that never render.
func APIPolicy() *Policy {
	return New().
		Directive("default-src", "'none'").
		Directive("frame-ancestors", "'none'")
}
