package riot

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// DefaultDomain is the API domain appended to every region host prefix.
const DefaultDomain = "api.riotgames.com"

const apiKeyParam = "api_key"

// QueryParam is a single query key with a supplied value.
type QueryParam struct {
	Key   string
	Value string
}

// RequestSpec is a fully built GET request. It is immutable once built and
// never renders the credential through String.
type RequestSpec struct {
	host       string
	rawPath    string
	segments   []string
	query      []QueryParam
	credential string
	keyInQuery bool
}

// Host returns the target host, e.g. "na1.api.riotgames.com".
func (s RequestSpec) Host() string { return s.host }

// Path returns the percent-encoded request path.
func (s RequestSpec) Path() string { return s.rawPath }

// Segments returns the unescaped path segments substituted into the template.
func (s RequestSpec) Segments() []string { return slices.Clone(s.segments) }

// Query returns the emitted query parameters in canonical order, excluding the credential.
func (s RequestSpec) Query() []QueryParam { return slices.Clone(s.query) }

// URL returns the request URL. The credential is included only when the
// client was configured to send it as a query parameter.
func (s RequestSpec) URL() *url.URL {
	return s.url(s.keyInQuery)
}

// String returns the request URL without the credential.
func (s RequestSpec) String() string {
	return s.url(false).String()
}

func (s RequestSpec) url(withKey bool) *url.URL {
	u := &url.URL{
		Scheme:   "https",
		Host:     s.host,
		RawPath:  s.rawPath,
		RawQuery: s.encodeQuery(withKey),
	}
	if p, err := url.PathUnescape(s.rawPath); err == nil {
		u.Path = p
	}
	return u
}

func (s RequestSpec) encodeQuery(withKey bool) string {
	var b strings.Builder
	for _, q := range s.query {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Value))
	}
	if withKey && s.credential != "" {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(apiKeyParam)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(s.credential))
	}
	return b.String()
}

// buildRequest fills the {placeholders} of pathTemplate positionally with the
// escaped segments and appends the supplied query values in the order given by
// queryKeys. Keys missing from query or mapped to "" are not emitted.
func buildRequest(host, pathTemplate string, segments []string, queryKeys []string, query map[string]string) (RequestSpec, error) {
	if host == "" {
		return RequestSpec{}, fmt.Errorf("%w: empty host", ErrInvalidArgument)
	}

	var path strings.Builder
	rest := pathTemplate
	n := 0
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			path.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return RequestSpec{}, fmt.Errorf("%w: unterminated placeholder in %q", ErrInvalidArgument, pathTemplate)
		}
		name := rest[open+1 : open+end]
		if n >= len(segments) {
			return RequestSpec{}, fmt.Errorf("%w: missing value for {%s}", ErrInvalidArgument, name)
		}
		switch segments[n] {
		case "":
			return RequestSpec{}, fmt.Errorf("%w: empty value for {%s}", ErrInvalidArgument, name)
		case ".", "..":
			return RequestSpec{}, fmt.Errorf("%w: dot segment %q for {%s}", ErrInvalidArgument, segments[n], name)
		}
		path.WriteString(rest[:open])
		path.WriteString(url.PathEscape(segments[n]))
		rest = rest[open+end+1:]
		n++
	}
	if n != len(segments) {
		return RequestSpec{}, fmt.Errorf("%w: %d path values for %d placeholders in %q", ErrInvalidArgument, len(segments), n, pathTemplate)
	}

	for k := range query {
		if !slices.Contains(queryKeys, k) {
			return RequestSpec{}, fmt.Errorf("%w: unsupported query parameter %q", ErrInvalidArgument, k)
		}
	}

	var params []QueryParam
	for _, k := range queryKeys {
		if v, ok := query[k]; ok && v != "" {
			params = append(params, QueryParam{Key: k, Value: v})
		}
	}

	return RequestSpec{
		host:     host,
		rawPath:  path.String(),
		segments: slices.Clone(segments),
		query:    params,
	}, nil
}

// withCredential returns a copy of s carrying key.
func (s RequestSpec) withCredential(key string, inQuery bool) RequestSpec {
	s.credential = key
	s.keyInQuery = inQuery
	return s
}
