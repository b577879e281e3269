package connector

import "context"

// Response is the raw transport result of a connector call: the remote HTTP
// status and the serialized body. The body is untrusted input; it may be
// empty, unparseable, or lack the fields callers expect.
type Response struct {
	StatusCode int
	Body       string
}

// Connector issues the raw authenticated calls against the remote
// change-management service. Implementations own transport concerns such as
// authentication, timeouts and retries; callers see exactly one response or
// one error per call.
type Connector interface {
	Get(ctx context.Context) (*Response, error)
	Post(ctx context.Context, body []byte) (*Response, error)
}
