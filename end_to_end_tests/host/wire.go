// Copyright 2025 G-Core Innovations SARL

package host

import (
	"encoding/binary"
	"fmt"
	"math"
)

// The raw interface frames every compound value as an item list: a u32 LE
// item count, one u32 LE size per item, then the items packed back to back,
// each followed by a NUL byte that its size does not count. This file frames
// bytes the way the platform does; it shares nothing with the SDK's codec so
// the two implementations check each other when a module runs.

// Request method codes on the wire.
var methodCodes = map[string]uint32{
	"GET":     0,
	"POST":    1,
	"PUT":     2,
	"DELETE":  3,
	"HEAD":    4,
	"PATCH":   5,
	"OPTIONS": 6,
}

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
		if end+1 > uint64(len(data)) {
			return nil, fmt.Errorf("item %d truncated: %d bytes at offset %d", i, size, offset)
		}
		items = append(items, data[offset:end])
		offset = end + 1
	}
	return items, nil
}

// appendScored renders one sorted-set item: the member value with its score
// appended as 8 bytes of f64 LE.
func appendScored(value string, score float64) []byte {
	item := make([]byte, 0, len(value)+8)
	item = append(item, value...)
	return binary.LittleEndian.AppendUint64(item, math.Float64bits(score))
}

// encodeRequestBlob renders an inbound request for the guest's request entry
// point: [method u32 LE, uri, body, name, value, ...].
func encodeRequestBlob(method uint32, uri string, body []byte, headers []Header) []byte {
	items := make([][]byte, 0, 3+2*len(headers))
	items = append(items, binary.LittleEndian.AppendUint32(nil, method))
	items = append(items, []byte(uri))
	items = append(items, body)
	for _, p := range headers {
		items = append(items, []byte(p.Name), []byte(p.Value))
	}
	return encodeList(items)
}

// decodeResponseBlob parses the guest's encoded response:
// [status u32 LE, body, name, value, ...].
func decodeResponseBlob(data []byte) (*Response, error) {
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

	resp := &Response{
		Status: uint16(status),
		Body:   items[1],
	}
	for i := 2; i < len(items); i += 2 {
		resp.Headers = append(resp.Headers, Header{
			Name:  string(items[i]),
			Value: string(items[i+1]),
		})
	}
	return resp, nil
}

// decodeHeaderList parses the alternating name and value list that carries
// outbound request headers.
func decodeHeaderList(data []byte) ([]Header, error) {
	items, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("dangling header name: %d items", len(items))
	}
	headers := make([]Header, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		headers = append(headers, Header{
			Name:  string(items[i]),
			Value: string(items[i+1]),
		})
	}
	return headers, nil
}

// encodeUpstreamResponse renders a scripted exchange as the response blob the
// send hostcall hands back: [status u32 LE, body, name, value, ...].
func encodeUpstreamResponse(up UpstreamFixture) []byte {
	items := make([][]byte, 0, 2+2*len(up.Headers))
	items = append(items, binary.LittleEndian.AppendUint32(nil, uint32(up.Status)))
	items = append(items, up.Body)
	for _, p := range up.Headers {
		items = append(items, []byte(p.Name), []byte(p.Value))
	}
	return encodeList(items)
}
