// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"encoding/binary"
	"fmt"
	"math"
)

// The raw interface moves compound values as item lists with a fixed layout:
// a u32 LE item count, then one u32 LE size per item, then the items packed
// back to back, each followed by a single NUL byte that is not included in
// its size.

// encodeList serializes items into the raw interface's list layout.
func encodeList(items [][]byte) []byte {
	size := 4 + 4*len(items)
	for _, item := range items {
		size += len(item) + 1
	}

	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(items)))
	for _, item := range items {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(item)))
	}
	for _, item := range items {
		buf = append(buf, item...)
		buf = append(buf, 0)
	}
	return buf
}

// decodeList parses the raw interface's list layout. The returned items are
// subslices of data; callers own data and may retain the items.
func decodeList(data []byte) ([][]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("item list truncated: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint32(data)

	headerLen := 4 + 4*uint64(count)
	if uint64(len(data)) < headerLen {
		return nil, fmt.Errorf("item list truncated: %d sizes in %d bytes", count, len(data))
	}

	items := make([][]byte, 0, count)
	offset := headerLen
	for i := uint32(0); i < count; i++ {
		size := uint64(binary.LittleEndian.Uint32(data[4+4*i:]))
		end := offset + size
		if end+1 > uint64(len(data)) { // +1 for the item terminator
			return nil, fmt.Errorf("item %d truncated: %d bytes at offset %d", i, size, offset)
		}
		items = append(items, data[offset:end])
		offset = end + 1
	}
	return items, nil
}

// splitScoredMember separates a sorted-set item into its value and the
// trailing 8-byte LE score. Items no longer than a bare score decode as an
// empty value with score zero.
func splitScoredMember(item []byte) ScoredMember {
	if len(item) <= 8 {
		return ScoredMember{Value: []byte{}, Score: 0}
	}
	split := len(item) - 8
	return ScoredMember{
		Value: item[:split],
		Score: math.Float64frombits(binary.LittleEndian.Uint64(item[split:])),
	}
}

// The HTTP surface of the raw interface reuses the list layout. A request is
// [method u32 LE, uri, body, name, value, ...]; a response is
// [status u32 LE, body, name, value, ...]. An absent body is an empty item.

func encodeHTTPRequest(req *HTTPRequest) []byte {
	items := make([][]byte, 0, 3+2*len(req.Headers))
	items = append(items, binary.LittleEndian.AppendUint32(nil, uint32(req.Method)))
	items = append(items, []byte(req.URI))
	items = append(items, req.Body)
	for _, p := range req.Headers {
		items = append(items, []byte(p.Name), []byte(p.Value))
	}
	return encodeList(items)
}

func decodeHTTPRequest(data []byte) (*HTTPRequest, error) {
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	if len(items) < 3 {
		return nil, fmt.Errorf("request needs method, uri and body: %d items", len(items))
	}
	if len(items[0]) != 4 {
		return nil, fmt.Errorf("method item is %d bytes", len(items[0]))
	}
	if len(items)%2 != 1 {
		return nil, fmt.Errorf("dangling header name: %d items", len(items))
	}

	req := &HTTPRequest{
		Method: HTTPMethod(binary.LittleEndian.Uint32(items[0])),
		URI:    string(items[1]),
	}
	if len(items[2]) > 0 {
		req.Body = items[2]
	}
	for i := 3; i < len(items); i += 2 {
		req.Headers = append(req.Headers, HeaderPair{
			Name:  string(items[i]),
			Value: string(items[i+1]),
		})
	}
	return req, nil
}

func encodeHTTPResponse(resp *HTTPResponse) []byte {
	items := make([][]byte, 0, 2+2*len(resp.Headers))
	items = append(items, binary.LittleEndian.AppendUint32(nil, uint32(resp.Status)))
	items = append(items, resp.Body)
	for _, p := range resp.Headers {
		items = append(items, []byte(p.Name), []byte(p.Value))
	}
	return encodeList(items)
}

func decodeHTTPResponse(data []byte) (*HTTPResponse, error) {
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return nil, fmt.Errorf("response needs status and body: %d items", len(items))
	}
	if len(items[0]) != 4 {
		return nil, fmt.Errorf("status item is %d bytes", len(items[0]))
	}
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("dangling header name: %d items", len(items))
	}

	status := binary.LittleEndian.Uint32(items[0])
	if status > math.MaxUint16 {
		return nil, fmt.Errorf("status %d out of range", status)
	}

	resp := &HTTPResponse{
		Status: uint16(status),
		Body:   items[1],
	}
	for i := 2; i < len(items); i += 2 {
		resp.Headers = append(resp.Headers, HeaderPair{
			Name:  string(items[i]),
			Value: string(items[i+1]),
		})
	}
	return resp, nil
}
