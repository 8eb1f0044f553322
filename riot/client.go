package riot

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/s0up4200/lolapi/ratelimit"
)

const tracerName = "github.com/s0up4200/lolapi/riot"

// Client represents a Riot Games API client. It is safe for concurrent use
// and holds no per-call state.
type Client struct {
	apiKey     string
	domain     string
	baseURL    *url.URL
	keyInQuery bool
	userAgent  string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	tracer     trace.Tracer
	logger     zerolog.Logger
}

// NewClient creates a new Riot API client.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.domain == "" {
		return nil, fmt.Errorf("%w: empty API domain", ErrInvalidArgument)
	}

	var base *url.URL
	if o.baseURL != "" {
		u, err := url.Parse(strings.TrimRight(o.baseURL, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: base URL %q must include scheme and host", ErrInvalidArgument, o.baseURL)
		}
		base = u
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	tracer := o.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(tracerName)
	}

	return &Client{
		apiKey:     apiKey,
		domain:     o.domain,
		baseURL:    base,
		keyInQuery: o.keyInQuery,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		limiter:    o.limiter,
		tracer:     tracer,
		logger:     logger.With().Str("component", "riot").Logger(),
	}, nil
}

func (c *Client) host(prefix string) string {
	return prefix + "." + c.domain
}
