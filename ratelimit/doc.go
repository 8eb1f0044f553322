// Package ratelimit gates outgoing API calls through token buckets keyed by
// region and resource.
//
// Two scopes are tracked. The application scope is shared by every resource
// of a region and defaults to the development key quota (20 requests per
// second, 100 per two minutes). The method scope applies to a single resource
// in a region and is empty unless configured with WithMethodRules.
//
// Local keeps buckets in memory using golang.org/x/time/rate. Redis shares
// them between processes with a GCRA limiter stored in Redis.
package ratelimit
