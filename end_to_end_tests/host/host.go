// Copyright 2025 G-Core Innovations SARL

// Package host runs FastEdge guest modules in process. It implements the env
// module of the raw interface with wazero over in-memory fixtures, so wasm
// builds of the SDK can be driven from ordinary Go tests without a FastEdge
// deployment.
package host

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

// Header is one name and value pair on a request or response.
type Header struct {
	Name  string
	Value string
}

// Request is an inbound request delivered to the guest.
type Request struct {
	Method  string
	URI     string
	Headers []Header
	Body    []byte
}

// Response is what the guest produced for one request.
type Response struct {
	Status  uint16
	Headers []Header
	Body    []byte
}

// Status codes of the env module hostcalls. Every family shares 0 for
// success and numbers its failures independently.
const (
	statusOK uint32 = 0

	statusKVNoSuchStore  uint32 = 1
	statusKVAccessDenied uint32 = 2

	statusSecretNotFound     uint32 = 1
	statusSecretAccessDenied uint32 = 2
	statusSecretDecryptError uint32 = 3

	statusDictionaryNotFound uint32 = 1

	statusHTTPDestinationNotAllowed uint32 = 1
	statusHTTPInvalidURL            uint32 = 2
	statusHTTPRequestError          uint32 = 3
	statusHTTPRuntimeError          uint32 = 4
	statusHTTPTooManyRequests       uint32 = 5

	// statusHostFault sits outside every family's code space. Guests report
	// it as an internal error with the raw code attached.
	statusHostFault uint32 = 255
)

// Host runs one guest module against a fixture set. Everything is single
// threaded: one request at a time, like the platform.
type Host struct {
	runtime wazero.Runtime
	module  api.Module
	fx      *Fixtures

	stores []*StoreFixture // open handles, indexed by handle value
	diag   []string
}

// New prepares a wazero runtime with WASI and the FastEdge env module bound
// to fx. Load a guest module next.
func New(ctx context.Context, fx *Fixtures) (*Host, error) {
	h := &Host{fx: fx}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	h.runtime = rt

	if err := h.instantiateEnv(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("host: instantiating env module: %w", err)
	}
	return h, nil
}

// Close releases the runtime and every module instantiated in it.
func (h *Host) Close(ctx context.Context) error {
	return h.runtime.Close(ctx)
}

// Load instantiates a guest module. The module must export the raw
// interface's allocator and request entry point. Command modules have their
// _start run by instantiation; reactor builds get their _initialize called
// here instead.
func (h *Host) Load(ctx context.Context, wasmBytes []byte) error {
	mod, err := h.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("host: instantiating guest: %w", err)
	}
	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return fmt.Errorf("host: guest _initialize: %w", err)
		}
	}
	for _, name := range []string{"proxy_on_memory_allocate", "proxy_on_request"} {
		if mod.ExportedFunction(name) == nil {
			return fmt.Errorf("host: guest does not export %s", name)
		}
	}
	h.module = mod
	return nil
}

// Serve delivers req to the guest and returns its decoded response.
func (h *Host) Serve(ctx context.Context, req *Request) (*Response, error) {
	if h.module == nil {
		return nil, fmt.Errorf("host: no guest module loaded")
	}
	method, ok := methodCodes[req.Method]
	if !ok {
		return nil, fmt.Errorf("host: method %q has no wire code", req.Method)
	}

	Logger().Debug("serving request",
		zap.String("method", req.Method),
		zap.String("uri", req.URI),
		zap.Int("body", len(req.Body)))

	blob := encodeRequestBlob(method, req.URI, req.Body, req.Headers)
	ptr, err := placeBuffer(ctx, h.module, blob)
	if err != nil {
		return nil, err
	}

	results, err := h.module.ExportedFunction("proxy_on_request").Call(ctx, uint64(ptr), uint64(len(blob)))
	if err != nil {
		return nil, fmt.Errorf("host: proxy_on_request: %w", err)
	}
	respPtr := uint32(results[0] >> 32)
	respLen := uint32(results[0])

	view, ok := h.module.Memory().Read(respPtr, respLen)
	if !ok {
		return nil, fmt.Errorf("host: response %d bytes at %d outside guest memory", respLen, respPtr)
	}
	// The view aliases guest memory, which the next request reuses.
	data := make([]byte, len(view))
	copy(data, view)

	resp, err := decodeResponseBlob(data)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	Logger().Debug("request served", zap.Uint16("status", resp.Status), zap.Int("body", len(resp.Body)))
	return resp, nil
}

// UserDiag returns every diagnostic message the guest set, oldest first. The
// platform keeps only the last one; the harness records them all so tests
// can see intermediate writes.
func (h *Host) UserDiag() []string {
	return h.diag
}

func (h *Host) instantiateEnv(ctx context.Context) error {
	builder := h.runtime.NewHostModuleBuilder("env")
	builder.NewFunctionBuilder().WithFunc(h.kvStoreOpen).Export("proxy_kv_store_open")
	builder.NewFunctionBuilder().WithFunc(h.kvStoreGet).Export("proxy_kv_store_get")
	builder.NewFunctionBuilder().WithFunc(h.kvStoreScan).Export("proxy_kv_store_scan")
	builder.NewFunctionBuilder().WithFunc(h.kvStoreZRangeByScore).Export("proxy_kv_store_zrange_by_score")
	builder.NewFunctionBuilder().WithFunc(h.kvStoreZScan).Export("proxy_kv_store_zscan")
	builder.NewFunctionBuilder().WithFunc(h.kvStoreBFExists).Export("proxy_kv_store_bf_exists")
	builder.NewFunctionBuilder().WithFunc(h.secretGet).Export("proxy_secret_get")
	builder.NewFunctionBuilder().WithFunc(h.secretGetEffectiveAt).Export("proxy_secret_get_effective_at")
	builder.NewFunctionBuilder().WithFunc(h.dictionaryGet).Export("proxy_dictionary_get")
	builder.NewFunctionBuilder().WithFunc(h.setUserDiag).Export("stats_set_user_diag")
	builder.NewFunctionBuilder().WithFunc(h.httpSendRequest).Export("proxy_http_send_request")
	_, err := builder.Instantiate(ctx)
	return err
}

func (h *Host) kvStoreOpen(ctx context.Context, m api.Module, namePtr, nameLen, handleOut uint32) uint32 {
	name, ok := readString(m, namePtr, nameLen)
	if !ok {
		return statusHostFault
	}
	st, found := h.fx.Stores[name]
	if !found {
		Logger().Debug("kv open", zap.String("store", name), zap.Bool("granted", false))
		return statusKVNoSuchStore
	}
	handle := uint32(len(h.stores))
	h.stores = append(h.stores, st)
	if !m.Memory().WriteUint32Le(handleOut, handle) {
		return statusHostFault
	}
	Logger().Debug("kv open", zap.String("store", name), zap.Uint32("handle", handle))
	return statusOK
}

func (h *Host) kvStoreGet(ctx context.Context, m api.Module, store, keyPtr, keyLen, valueOut, lenOut uint32) uint32 {
	st, ok := h.storeByHandle(store)
	if !ok {
		return statusHostFault
	}
	key, ok := readString(m, keyPtr, keyLen)
	if !ok {
		return statusHostFault
	}
	value, found := st.Values[key]
	Logger().Debug("kv get", zap.String("key", key), zap.Bool("found", found))
	if !found {
		return h.yieldAbsent(m, valueOut, lenOut)
	}
	return h.yieldBuffer(ctx, m, value, valueOut, lenOut)
}

func (h *Host) kvStoreScan(ctx context.Context, m api.Module, store, patternPtr, patternLen, keysOut, lenOut uint32) uint32 {
	st, ok := h.storeByHandle(store)
	if !ok {
		return statusHostFault
	}
	pattern, ok := readString(m, patternPtr, patternLen)
	if !ok {
		return statusHostFault
	}

	var keys []string
	for k := range st.Values {
		match, err := path.Match(pattern, k)
		if err != nil {
			Logger().Debug("kv scan", zap.String("pattern", pattern), zap.Error(err))
			return statusHostFault
		}
		if match {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	Logger().Debug("kv scan", zap.String("pattern", pattern), zap.Int("keys", len(keys)))

	items := make([][]byte, len(keys))
	for i, k := range keys {
		items[i] = []byte(k)
	}
	return h.yieldBuffer(ctx, m, encodeList(items), keysOut, lenOut)
}

func (h *Host) kvStoreZRangeByScore(ctx context.Context, m api.Module, store, keyPtr, keyLen uint32, min, max float64, valuesOut, lenOut uint32) uint32 {
	st, ok := h.storeByHandle(store)
	if !ok {
		return statusHostFault
	}
	key, ok := readString(m, keyPtr, keyLen)
	if !ok {
		return statusHostFault
	}

	var members []ScoredEntry
	for _, e := range st.Sets[key] {
		if e.Score >= min && e.Score <= max {
			members = append(members, e)
		}
	}
	Logger().Debug("kv zrange",
		zap.String("key", key),
		zap.Float64("min", min),
		zap.Float64("max", max),
		zap.Int("members", len(members)))
	return h.yieldScored(ctx, m, members, valuesOut, lenOut)
}

func (h *Host) kvStoreZScan(ctx context.Context, m api.Module, store, keyPtr, keyLen, patternPtr, patternLen, valuesOut, lenOut uint32) uint32 {
	st, ok := h.storeByHandle(store)
	if !ok {
		return statusHostFault
	}
	key, ok := readString(m, keyPtr, keyLen)
	if !ok {
		return statusHostFault
	}
	pattern, ok := readString(m, patternPtr, patternLen)
	if !ok {
		return statusHostFault
	}

	var members []ScoredEntry
	for _, e := range st.Sets[key] {
		match, err := path.Match(pattern, e.Value)
		if err != nil {
			Logger().Debug("kv zscan", zap.String("pattern", pattern), zap.Error(err))
			return statusHostFault
		}
		if match {
			members = append(members, e)
		}
	}
	Logger().Debug("kv zscan",
		zap.String("key", key),
		zap.String("pattern", pattern),
		zap.Int("members", len(members)))
	return h.yieldScored(ctx, m, members, valuesOut, lenOut)
}

func (h *Host) kvStoreBFExists(ctx context.Context, m api.Module, store, keyPtr, keyLen, itemPtr, itemLen, existsOut uint32) uint32 {
	st, ok := h.storeByHandle(store)
	if !ok {
		return statusHostFault
	}
	key, ok := readString(m, keyPtr, keyLen)
	if !ok {
		return statusHostFault
	}
	item, ok := readString(m, itemPtr, itemLen)
	if !ok {
		return statusHostFault
	}

	var exists uint32
	if st.Filters[key][item] {
		exists = 1
	}
	Logger().Debug("kv bf exists", zap.String("key", key), zap.String("item", item), zap.Uint32("exists", exists))
	if !m.Memory().WriteUint32Le(existsOut, exists) {
		return statusHostFault
	}
	return statusOK
}

func (h *Host) secretGet(ctx context.Context, m api.Module, keyPtr, keyLen, valueOut, lenOut uint32) uint32 {
	key, ok := readString(m, keyPtr, keyLen)
	if !ok {
		return statusHostFault
	}
	return h.yieldSecret(ctx, m, key, valueOut, lenOut)
}

func (h *Host) secretGetEffectiveAt(ctx context.Context, m api.Module, keyPtr, keyLen, at, valueOut, lenOut uint32) uint32 {
	key, ok := readString(m, keyPtr, keyLen)
	if !ok {
		return statusHostFault
	}
	Logger().Debug("secret effective at", zap.Uint32("at", at))
	return h.yieldSecret(ctx, m, key, valueOut, lenOut)
}

// yieldSecret resolves one secret slot. Fixtures hold a single version per
// secret, so both lookup variants return the same value.
func (h *Host) yieldSecret(ctx context.Context, m api.Module, key string, valueOut, lenOut uint32) uint32 {
	s, found := h.fx.Secrets[key]
	Logger().Debug("secret get", zap.String("key", key), zap.Bool("found", found))
	switch {
	case !found:
		return statusSecretNotFound
	case s.Denied:
		return statusSecretAccessDenied
	case s.Corrupt:
		return statusSecretDecryptError
	}
	return h.yieldBuffer(ctx, m, s.Value, valueOut, lenOut)
}

func (h *Host) dictionaryGet(ctx context.Context, m api.Module, namePtr, nameLen, valueOut, lenOut uint32) uint32 {
	name, ok := readString(m, namePtr, nameLen)
	if !ok {
		return statusHostFault
	}
	value, found := h.fx.Dictionary[name]
	Logger().Debug("dictionary get", zap.String("name", name), zap.Bool("found", found))
	if !found {
		return statusDictionaryNotFound
	}
	return h.yieldBuffer(ctx, m, []byte(value), valueOut, lenOut)
}

func (h *Host) setUserDiag(ctx context.Context, m api.Module, msgPtr, msgLen uint32) uint32 {
	msg, ok := readString(m, msgPtr, msgLen)
	if !ok {
		return statusHostFault
	}
	h.diag = append(h.diag, msg)
	Logger().Debug("user diag", zap.String("message", msg))
	return statusOK
}

func (h *Host) httpSendRequest(ctx context.Context, m api.Module, method uint32, uriPtr, uriLen, headersPtr, headersLen, bodyPtr, bodyLen, responseOut, lenOut uint32) uint32 {
	uri, ok := readString(m, uriPtr, uriLen)
	if !ok {
		return statusHostFault
	}
	headerBlob, ok := readBytes(m, headersPtr, headersLen)
	if !ok {
		return statusHostFault
	}
	headers, err := decodeHeaderList(headerBlob)
	if err != nil {
		Logger().Debug("send request", zap.String("uri", uri), zap.Error(err))
		return statusHostFault
	}
	var body []byte
	if bodyLen > 0 {
		if body, ok = readBytes(m, bodyPtr, bodyLen); !ok {
			return statusHostFault
		}
	}

	up, found := h.fx.Upstreams[uri]
	Logger().Debug("send request",
		zap.Uint32("method", method),
		zap.String("uri", uri),
		zap.Int("headers", len(headers)),
		zap.Int("body", len(body)),
		zap.Bool("allowed", found))
	if !found {
		return statusHTTPDestinationNotAllowed
	}
	return h.yieldBuffer(ctx, m, encodeUpstreamResponse(up), responseOut, lenOut)
}

func (h *Host) storeByHandle(handle uint32) (*StoreFixture, bool) {
	if handle >= uint32(len(h.stores)) {
		return nil, false
	}
	return h.stores[handle], true
}

// yieldScored encodes sorted-set members, score ascending, and hands them to
// the guest.
func (h *Host) yieldScored(ctx context.Context, m api.Module, members []ScoredEntry, valuesOut, lenOut uint32) uint32 {
	sort.SliceStable(members, func(i, j int) bool { return members[i].Score < members[j].Score })
	items := make([][]byte, len(members))
	for i, e := range members {
		items[i] = appendScored(e.Value, e.Score)
	}
	return h.yieldBuffer(ctx, m, encodeList(items), valuesOut, lenOut)
}

// yieldBuffer hands data to the guest through a double-pointer out parameter:
// a fresh guest allocation is filled with data, its address written at
// valueOut and its length at lenOut.
func (h *Host) yieldBuffer(ctx context.Context, m api.Module, data []byte, valueOut, lenOut uint32) uint32 {
	ptr, err := placeBuffer(ctx, m, data)
	if err != nil {
		Logger().Error("yielding buffer", zap.Error(err))
		return statusHostFault
	}
	mem := m.Memory()
	if !mem.WriteUint32Le(valueOut, ptr) || !mem.WriteUint32Le(lenOut, uint32(len(data))) {
		return statusHostFault
	}
	return statusOK
}

// yieldAbsent writes the null buffer that signals an absent value.
func (h *Host) yieldAbsent(m api.Module, valueOut, lenOut uint32) uint32 {
	mem := m.Memory()
	if !mem.WriteUint32Le(valueOut, 0) || !mem.WriteUint32Le(lenOut, 0) {
		return statusHostFault
	}
	return statusOK
}

// placeBuffer copies data into a fresh guest allocation obtained from the
// exported allocator and returns its address.
func placeBuffer(ctx context.Context, mod api.Module, data []byte) (uint32, error) {
	results, err := mod.ExportedFunction("proxy_on_memory_allocate").Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("host: guest allocator: %w", err)
	}
	ptr := uint32(results[0])
	if ptr == 0 {
		return 0, fmt.Errorf("host: guest allocator returned null")
	}
	if !mod.Memory().Write(ptr, data) {
		return 0, fmt.Errorf("host: %d bytes at %d outside guest memory", len(data), ptr)
	}
	return ptr, nil
}

func readBytes(m api.Module, ptr, n uint32) ([]byte, bool) {
	view, ok := m.Memory().Read(ptr, n)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(view))
	copy(out, view)
	return out, true
}

func readString(m api.Module, ptr, n uint32) (string, bool) {
	view, ok := m.Memory().Read(ptr, n)
	if !ok {
		return "", false
	}
	return string(view), true
}
