// Copyright 2025 G-Core Innovations SARL

package fehttp

import "context"

type requestContextKey struct{}

// RequestFromContext returns the fehttp.Request associated with the context,
// if any. Handlers adapted from net/http via Adapt can use it to reach the
// original request.
func RequestFromContext(ctx context.Context) *Request {
	req, _ := ctx.Value(requestContextKey{}).(*Request)
	return req
}

func contextWithRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, requestContextKey{}, req)
}
