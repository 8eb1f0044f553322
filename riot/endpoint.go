package riot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/s0up4200/lolapi/ratelimit"
	"github.com/s0up4200/lolapi/region"
)

// HostRule selects which region prefix an endpoint is served from.
type HostRule uint8

const (
	// PlatformHost serves realm-local resources from e.g. na1.api.riotgames.com.
	PlatformHost HostRule = iota + 1
	// RoutingHost serves cross-realm resources from e.g. americas.api.riotgames.com.
	RoutingHost
	// AccountHost is RoutingHost with SEA realms served by Asia.
	AccountHost
)

// Endpoint declares one API operation returning T.
type Endpoint[T any] struct {
	// Name identifies the operation in logs, spans and rate limit keys.
	Name string
	Host HostRule
	// Path is the versioned path with {placeholders} filled positionally.
	Path string
	// Query lists the optional query keys in canonical order.
	Query []string
}

func (e Endpoint[T]) hostPrefix(p region.Platform) (string, error) {
	if !p.Valid() {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, region.ErrUnknownRegion)
	}
	switch e.Host {
	case PlatformHost:
		return p.String(), nil
	case RoutingHost:
		return p.Routing().String(), nil
	case AccountHost:
		return p.AccountRouting().String(), nil
	default:
		return "", fmt.Errorf("%w: endpoint %s has no host rule", ErrInvalidArgument, e.Name)
	}
}

// Build returns the RequestSpec the endpoint would send, without sending it.
func (e Endpoint[T]) Build(c *Client, p region.Platform, segments []string, query map[string]string) (RequestSpec, error) {
	prefix, err := e.hostPrefix(p)
	if err != nil {
		return RequestSpec{}, err
	}
	spec, err := buildRequest(c.host(prefix), e.Path, segments, e.Query, query)
	if err != nil {
		return RequestSpec{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	return spec.withCredential(c.apiKey, c.keyInQuery), nil
}

// Fetch sends one call of e through c and decodes the response. It lets
// callers reach resources the Client has no method for.
func (e Endpoint[T]) Fetch(ctx context.Context, c *Client, p region.Platform, segments []string, query map[string]string) (T, error) {
	return execute(ctx, c, e, p, segments, query)
}

// execute runs one call of ep: build, rate limit, send, decode. It performs
// no retries.
func execute[T any](ctx context.Context, c *Client, ep Endpoint[T], p region.Platform, segments []string, query map[string]string) (T, error) {
	var zero T

	spec, err := ep.Build(c, p, segments, query)
	if err != nil {
		return zero, err
	}
	prefix, _ := ep.hostPrefix(p)

	ctx, span := c.tracer.Start(ctx, ep.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("riot.endpoint", ep.Name),
			attribute.String("riot.region", prefix),
			attribute.String("url.path", spec.Path()),
		),
	)
	defer span.End()

	fail := func(err error, status int) (T, error) {
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			apiErr = &Error{Kind: KindTransport, Err: err}
		}
		apiErr.Op = ep.Name
		apiErr.Region = prefix

		if status > 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", status))
		}
		span.SetAttributes(attribute.String("riot.error.kind", apiErr.Kind.String()))
		if apiErr.Kind != KindNotFound {
			span.RecordError(apiErr)
			span.SetStatus(codes.Error, apiErr.Kind.String())
		}

		c.logger.Debug().
			Str("endpoint", ep.Name).
			Str("region", prefix).
			Str("url", spec.String()).
			Int("status", status).
			Str("kind", apiErr.Kind.String()).
			Err(apiErr).
			Msg("Riot API call failed")
		return zero, apiErr
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, ratelimit.Key{Region: prefix, Resource: ep.Name}); err != nil {
			return fail(&Error{Kind: KindTransport, Err: err}, 0)
		}
	}

	start := time.Now()
	body, status, err := c.send(ctx, spec)
	if err != nil {
		return fail(err, status)
	}

	out, err := decode[T](body)
	if err != nil {
		return fail(err, status)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	c.logger.Debug().
		Str("endpoint", ep.Name).
		Str("region", prefix).
		Str("url", spec.String()).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("Riot API call succeeded")

	return out, nil
}
