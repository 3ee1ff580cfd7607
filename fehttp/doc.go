// Copyright 2025 G-Core Innovations SARL

// Package fehttp provides HTTP functionality for G-Core's FastEdge
// environment.
//
// A FastEdge program is an HTTP request handler. Each execution is triggered
// by an incoming request from a client, and produces exactly one response
// before terminating. The Serve function registers a Handler for those
// requests; Request.Send performs outbound requests to origins the
// application is allowed to reach.
//
// Unlike net/http, requests and responses are fully materialized values:
// bodies are byte payloads with a media type, not streams, and header
// sequences preserve insertion order and duplicates exactly as the host
// delivers them.
package fehttp
