package riot

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/s0up4200/lolapi/ratelimit"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	domain     string
	baseURL    string
	keyInQuery bool
	userAgent  string
	limiter    ratelimit.Limiter
	tracer     trace.Tracer
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   30 * time.Second,
		domain:    DefaultDomain,
		userAgent: "lolapi",
	}
}

// WithHTTPClient sets the HTTP client. Its connection pool is shared by all
// calls made through the Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithDomain sets the API domain appended to region host prefixes.
func WithDomain(domain string) Option {
	return func(o *clientOptions) {
		o.domain = domain
	}
}

// WithBaseURL sends every request to baseURL instead of the region host. The
// Host header still carries the region host. Intended for proxies and tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithCredentialInQuery sends the API key as the trailing api_key query
// parameter instead of the X-Riot-Token header.
func WithCredentialInQuery() Option {
	return func(o *clientOptions) {
		o.keyInQuery = true
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLimiter gates every call through l before it is sent.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(o *clientOptions) {
		o.limiter = l
	}
}

// WithTracer records a client span per call.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *clientOptions) {
		o.tracer = tracer
	}
}
