// Package resilience wraps Riot API calls in retries and per-host circuit
// breakers.
//
// Only failures that riot.IsRetryable reports (transport errors, 429 and 5xx)
// are retried. A server-advised Retry-After always wins over the computed
// backoff. Each breaker counts transport failures and 5xx responses; a 404 or
// a rejected credential does not say anything about the health of the host and
// is recorded as a success.
package resilience
