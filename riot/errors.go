package riot

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Common errors
var (
	ErrTransport       = errors.New("transport failure")
	ErrHTTPStatus      = errors.New("unexpected HTTP status")
	ErrDecode          = errors.New("response decode failure")
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoAPIKey        = errors.New("API key is required")
)

// Kind classifies a failed call.
type Kind uint8

const (
	// KindTransport covers DNS, connect, TLS and timeout failures.
	KindTransport Kind = iota + 1
	// KindHTTPStatus is a non-2xx response other than 404.
	KindHTTPStatus
	// KindDecode is a 2xx response whose payload does not match the schema.
	KindDecode
	// KindNotFound is a 404 or an empty success body.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindHTTPStatus:
		return ErrHTTPStatus
	case KindDecode:
		return ErrDecode
	case KindNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// Error is returned by every API operation that reaches the network.
type Error struct {
	Kind Kind
	// Op is the endpoint name, e.g. "summoner-v4.by-puuid".
	Op string
	// Region is the host prefix the request was sent to.
	Region string

	StatusCode int
	Message    string
	RetryAfter time.Duration
	Body       string

	// Field and Reason describe a decode failure.
	Field  string
	Reason string

	Err error
}

func (e *Error) Error() string {
	prefix := e.Op
	if e.Region != "" {
		prefix = fmt.Sprintf("%s [%s]", e.Op, e.Region)
	}

	switch e.Kind {
	case KindHTTPStatus:
		if e.Message != "" {
			return fmt.Sprintf("%s: API request failed with status %d: %s", prefix, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s: API request failed with status %d", prefix, e.StatusCode)
	case KindDecode:
		field := e.Field
		if field == "" {
			field = "(root)"
		}
		return fmt.Sprintf("%s: decode %s: %s", prefix, field, e.Reason)
	case KindNotFound:
		if e.Reason != "" {
			return fmt.Sprintf("%s: resource not found: %s", prefix, e.Reason)
		}
		return fmt.Sprintf("%s: resource not found", prefix)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: transport failure: %v", prefix, e.Err)
		}
		return fmt.Sprintf("%s: transport failure", prefix)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an *Error against the kind sentinels.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// IsNotFound reports whether the resource does not exist.
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized reports whether the credential was rejected.
func (e *Error) IsUnauthorized() bool {
	return e.Kind == KindHTTPStatus &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// IsRateLimited reports whether the platform answered 429.
func (e *Error) IsRateLimited() bool {
	return e.Kind == KindHTTPStatus && e.StatusCode == http.StatusTooManyRequests
}

// IsRetryable reports whether issuing the same call again may succeed:
// transport failures, 429 and 5xx responses.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindTransport:
		return true
	case KindHTTPStatus:
		return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
	default:
		return false
	}
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// IsNotFound reports whether err is a NotFound outcome.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsRetryable reports whether err is an *Error that may succeed on a new call.
func IsRetryable(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsRetryable()
}

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

// RetryAfter returns the server-advised wait carried by err, if any.
func RetryAfter(err error) time.Duration {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.RetryAfter
	}
	return 0
}
