package fehttp

import (
	"bytes"
	"context"
	"net/http"
	"sort"
)

// responseRecorder is a materialized http.ResponseWriter. It is necessary
// because handlers in this package return complete responses rather than
// streaming them.
type responseRecorder struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *responseRecorder) Header() http.Header {
	return w.header
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(StatusOK)
	}
	return w.body.Write(p)
}

func (w *responseRecorder) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
}

// Adapt allows an http.Handler to be used as an fehttp.Handler.
//
// Because the Request and Response types are not the same as the ones in
// net/http, RequestFromContext exists to extract the fehttp request from the
// adapted handler's context. net/http headers are unordered; the adapted
// response's fields are emitted in sorted key order.
func Adapt(h http.Handler) Handler {
	return HandlerFunc(func(ctx context.Context, r *Request) (*Response, error) {
		ctx = contextWithRequest(ctx, r)

		hr, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), bytes.NewReader(r.Body.Bytes()))
		if err != nil {
			return nil, err
		}
		for _, f := range r.Header {
			hr.Header.Add(f.Key, f.Value)
		}
		hr.Host = r.URL.Host
		hr.ContentLength = int64(len(r.Body.Bytes()))

		w := &responseRecorder{header: http.Header{}, status: StatusOK}
		h.ServeHTTP(w, hr)

		resp := &Response{
			StatusCode: w.status,
			Header:     sortedHeader(w.header),
		}
		if w.body.Len() > 0 {
			resp.Body = makeBody(w.body.Bytes(), resp.Header.Get("Content-Type"))
		}
		return resp, nil
	})
}

// sortedHeader converts an unordered net/http header into an ordered one.
func sortedHeader(hh http.Header) Header {
	keys := make([]string, 0, len(hh))
	for key := range hh {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	h := NewHeader()
	for _, key := range keys {
		for _, value := range hh[key] {
			h.Add(key, value)
		}
	}
	return h
}
