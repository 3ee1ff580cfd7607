// Copyright 2025 G-Core Innovations SARL

// Command guest is the application the end-to-end harness drives. Each route
// exercises one capability through the public SDK, so a single module build
// covers the whole hostcall surface.
package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gcore/fastedge-sdk-go/edgedict"
	"github.com/gcore/fastedge-sdk-go/fehttp"
	"github.com/gcore/fastedge-sdk-go/kvstore"
	"github.com/gcore/fastedge-sdk-go/secretstore"
	"github.com/gcore/fastedge-sdk-go/stats"
)

func main() {
	fehttp.ServeFunc(route)
}

func route(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
	q := r.URL.Query()
	switch r.URL.Path {
	case "/hello":
		return fehttp.TextResponse(fehttp.StatusOK, "Hello from the edge"), nil
	case "/kv/open":
		return kvOpen(q.Get("store"))
	case "/kv/get":
		return kvGet(q.Get("key"))
	case "/kv/scan":
		return kvScan(q.Get("pattern"))
	case "/kv/zrange":
		return kvZRange(q.Get("key"), q.Get("min"), q.Get("max"))
	case "/kv/zscan":
		return kvZScan(q.Get("key"), q.Get("pattern"))
	case "/kv/bf":
		return kvBFExists(q.Get("key"), q.Get("item"))
	case "/secret":
		return secret(q.Get("name"))
	case "/dict":
		return dictionary(q.Get("name"))
	case "/proxy":
		return proxy(ctx, q.Get("url"))
	case "/echo":
		resp := &fehttp.Response{
			StatusCode: fehttp.StatusOK,
			Header:     r.Header.Clone(),
			Body:       r.Body,
		}
		resp.Header.Set("Echo-Method", r.Method)
		return resp, nil
	case "/diag":
		stats.SetUserDiag(q.Get("msg"))
		return fehttp.NewResponse(), nil
	case "/panic":
		panic("probe failure")
	}
	return fehttp.TextResponse(fehttp.StatusNotFound, "no such route"), nil
}

func kvOpen(name string) (*fehttp.Response, error) {
	_, err := kvstore.Open(name)
	switch {
	case errors.Is(err, kvstore.ErrNoSuchStore):
		return fehttp.TextResponse(fehttp.StatusNotFound, "store not found"), nil
	case err != nil:
		return nil, err
	}
	return fehttp.TextResponse(fehttp.StatusOK, "opened"), nil
}

func kvGet(key string) (*fehttp.Response, error) {
	store, err := kvstore.Open("test-store")
	if err != nil {
		return nil, err
	}
	value, ok, err := store.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return fehttp.TextResponse(fehttp.StatusNotFound, "key not found"), nil
	}
	return &fehttp.Response{
		StatusCode: fehttp.StatusOK,
		Header:     fehttp.NewHeader(),
		Body:       fehttp.BytesBody(value),
	}, nil
}

func kvScan(pattern string) (*fehttp.Response, error) {
	store, err := kvstore.Open("test-store")
	if err != nil {
		return nil, err
	}
	keys, err := store.Scan(pattern)
	if err != nil {
		return nil, err
	}
	return fehttp.TextResponse(fehttp.StatusOK, strings.Join(keys, "\n")), nil
}

func kvZRange(key, minArg, maxArg string) (*fehttp.Response, error) {
	min, err := strconv.ParseFloat(minArg, 64)
	if err != nil {
		return fehttp.TextResponse(fehttp.StatusBadRequest, "bad min"), nil
	}
	max, err := strconv.ParseFloat(maxArg, 64)
	if err != nil {
		return fehttp.TextResponse(fehttp.StatusBadRequest, "bad max"), nil
	}
	store, err := kvstore.Open("test-store")
	if err != nil {
		return nil, err
	}
	members, err := store.ZRangeByScore(key, min, max)
	if err != nil {
		return nil, err
	}
	return fehttp.TextResponse(fehttp.StatusOK, scoredLines(members)), nil
}

func kvZScan(key, pattern string) (*fehttp.Response, error) {
	store, err := kvstore.Open("test-store")
	if err != nil {
		return nil, err
	}
	members, err := store.ZScan(key, pattern)
	if err != nil {
		return nil, err
	}
	return fehttp.TextResponse(fehttp.StatusOK, scoredLines(members)), nil
}

func kvBFExists(key, item string) (*fehttp.Response, error) {
	store, err := kvstore.Open("test-store")
	if err != nil {
		return nil, err
	}
	exists, err := store.BFExists(key, item)
	if err != nil {
		return nil, err
	}
	return fehttp.TextResponse(fehttp.StatusOK, strconv.FormatBool(exists)), nil
}

func scoredLines(members []kvstore.ScoredValue) string {
	lines := make([]string, len(members))
	for i, m := range members {
		lines[i] = fmt.Sprintf("%s %g", m.Value, m.Score)
	}
	return strings.Join(lines, "\n")
}

func secret(name string) (*fehttp.Response, error) {
	value, ok, err := secretstore.Get(name)
	switch {
	case errors.Is(err, secretstore.ErrAccessDenied):
		return fehttp.TextResponse(fehttp.StatusForbidden, "forbidden"), nil
	case err != nil:
		return nil, err
	case !ok:
		return fehttp.TextResponse(fehttp.StatusNotFound, "secret not found"), nil
	}
	return &fehttp.Response{
		StatusCode: fehttp.StatusOK,
		Header:     fehttp.NewHeader(),
		Body:       fehttp.BytesBody(value),
	}, nil
}

func dictionary(name string) (*fehttp.Response, error) {
	value, ok, err := edgedict.Get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return fehttp.TextResponse(fehttp.StatusNotFound, "item not found"), nil
	}
	return fehttp.TextResponse(fehttp.StatusOK, value), nil
}

func proxy(ctx context.Context, target string) (*fehttp.Response, error) {
	req, err := fehttp.NewRequest("GET", target, fehttp.NoBody)
	if err != nil {
		return fehttp.TextResponse(fehttp.StatusBadRequest, "bad url"), nil
	}
	req.Header.Set("UpstreamHeader", "UpstreamValue")
	resp, err := req.Send(ctx)
	if err != nil {
		return fehttp.TextResponse(fehttp.StatusBadGateway, "upstream: "+err.Error()), nil
	}
	return &fehttp.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       resp.Body,
	}, nil
}
