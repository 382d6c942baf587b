package sms

import (
	"bytes"
	"encoding/json"
)

// SendResult is the outcome of a single send.
//
// On success MessageID and Raw are set (MessageID may be empty when the
// gateway did not return one). On failure Error is set and StatusCode
// holds the HTTP status, or 0 when no response was received.
type SendResult struct {
	Success    bool   `json:"success"`
	MessageID  string `json:"message_id,omitempty"`
	Raw        any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// Result is the outcome of a status or balance lookup.
type Result struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// BulkResult maps each recipient, as supplied by the caller, to its SendResult.
// Keys keep the order in which they were first set.
type BulkResult struct {
	keys    []string
	results map[string]SendResult
}

// NewBulkResult returns an empty BulkResult sized for n recipients.
func NewBulkResult(n int) *BulkResult {
	return &BulkResult{
		keys:    make([]string, 0, n),
		results: make(map[string]SendResult, n),
	}
}

// Set stores r under recipient. Setting an existing recipient replaces its
// result but keeps its original position.
func (b *BulkResult) Set(recipient string, r SendResult) {
	if _, ok := b.results[recipient]; !ok {
		b.keys = append(b.keys, recipient)
	}
	b.results[recipient] = r
}

// Get returns the result stored for recipient.
func (b *BulkResult) Get(recipient string) (SendResult, bool) {
	r, ok := b.results[recipient]
	return r, ok
}

// Keys returns the recipients in insertion order.
func (b *BulkResult) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of distinct recipients.
func (b *BulkResult) Len() int { return len(b.keys) }

// Each calls fn for every recipient in insertion order.
func (b *BulkResult) Each(fn func(recipient string, r SendResult)) {
	for _, k := range b.keys {
		fn(k, b.results[k])
	}
}

// Failed reports how many recipients have a failed result.
func (b *BulkResult) Failed() int {
	n := 0
	for _, r := range b.results {
		if !r.Success {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the result as a JSON object whose members follow
// insertion order.
func (b *BulkResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(b.results[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
