package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	tokenHeader  = "X-Riot-Token"
	maxErrorBody = 4 << 10
)

// errorEnvelope is the body the platform sends with most non-2xx responses.
type errorEnvelope struct {
	Status struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	} `json:"status"`
}

// send issues a single GET for spec. A non-nil error is always an *Error.
func (c *Client) send(ctx context.Context, spec RequestSpec) ([]byte, int, error) {
	target := spec.URL()
	if c.baseURL != nil {
		target.Scheme = c.baseURL.Scheme
		target.Host = c.baseURL.Host
		target.Path = c.baseURL.Path + target.Path
		target.RawPath = c.baseURL.EscapedPath() + spec.Path()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, 0, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Host = spec.Host()
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if !c.keyInQuery {
		req.Header.Set(tokenHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &Error{Kind: KindTransport, Err: scrubURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, statusError(resp, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	return body, resp.StatusCode, nil
}

func statusError(resp *http.Response, body []byte) *Error {
	apiErr := &Error{
		Kind:       KindHTTPStatus,
		StatusCode: resp.StatusCode,
		Body:       string(body),
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}

	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Status.Message != "" {
		apiErr.Message = env.Status.Message
	}

	if resp.StatusCode == http.StatusNotFound {
		apiErr.Kind = KindNotFound
		apiErr.Reason = apiErr.Message
	}
	return apiErr
}

// parseRetryAfter accepts delay-seconds or an HTTP date.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// scrubURLError drops the request URL from err, which may carry the api_key
// query parameter.
func scrubURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
