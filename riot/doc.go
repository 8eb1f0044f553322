// Package riot provides a typed client for the Riot Games League of Legends
// REST API.
//
// # Architecture
//
// Every operation is a declarative Endpoint: a name, a host rule, a path
// template and the optional query keys in canonical order. A single generic
// executor runs each call through the same steps:
//
//  1. Resolve the host prefix from the platform region. Platform endpoints use
//     the realm ("na1"), routing endpoints use its continent ("americas").
//  2. Build an immutable RequestSpec. Path values are percent-encoded, "."
//     and ".." are rejected, and query keys are emitted only when a value
//     was supplied.
//  3. Wait on the configured ratelimit.Limiter, keyed by region and endpoint.
//  4. Send one GET. No retries are performed.
//  5. Decode the body into the endpoint's result type.
//
// Resources without a Client method can be reached by declaring an Endpoint
// and calling its Fetch method.
//
// The client holds no per-call state and is safe for concurrent use. The API
// key is sent in the X-Riot-Token header unless WithCredentialInQuery is set,
// and is never written to logs.
//
// # Usage
//
//	client, err := riot.NewClient(apiKey, logger,
//		riot.WithLimiter(limiter),
//		riot.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		return err
//	}
//
//	account, err := client.AccountByRiotID(ctx, region.EUW1, "Caps", "G2")
//	ids, err := client.MatchIDsByPUUID(ctx, region.EUW1, account.PUUID, riot.MatchIDsOptions{
//		Queue: riot.Ptr(420),
//		Count: riot.Ptr(20),
//	})
//
// # Error Handling
//
// Failed calls return an *Error whose Kind is one of:
//
//   - KindTransport: the request could not be completed (DNS, TLS, timeout).
//   - KindHTTPStatus: a non-2xx status other than 404. StatusCode is set.
//   - KindDecode: the payload did not match the schema. Field names the path.
//   - KindNotFound: a 404 or an empty success body.
//
// The kinds match the ErrTransport, ErrHTTPStatus, ErrDecode and ErrNotFound
// sentinels with errors.Is. IsRetryable reports transport failures, 429 and 5xx.
// Invalid arguments are rejected with ErrInvalidArgument before any I/O.
package riot
