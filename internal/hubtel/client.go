// Package hubtel is a client for the Hubtel SMS gateway.
//
// Every operation issues a single basic-auth request and maps the outcome
// to an sms result value. Transport and HTTP failures are logged and
// reported through the result; they are never returned as errors.
package hubtel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/oggyb/hubtel-sms/internal/sms"
)

const (
	// DefaultSendURL is the message send endpoint. Status lookups hang off it.
	DefaultSendURL = "https://sms.hubtel.com/v1/messages/send"
	// DefaultBalanceURL is the account balance endpoint.
	DefaultBalanceURL = "https://api.hubtel.com/v1/account/balance"
)

// Doer is the transport the client sends requests through.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Hubtel SMS API with a fixed set of credentials.
// It holds no per-request state and is safe for concurrent use as long
// as its transport is.
type Client struct {
	clientID     string
	clientSecret string
	senderID     string

	sendURL    string
	balanceURL string

	httpClient Doer
	log        zerolog.Logger
}

// sendRequest is the JSON body of a send call.
type sendRequest struct {
	From               string `json:"From"`
	To                 string `json:"To"`
	Content            string `json:"Content"`
	RegisteredDelivery bool   `json:"RegisteredDelivery"`
}

// New creates a client for the given credentials and default sender id.
// It performs no network I/O.
func New(clientID, clientSecret, senderID string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		senderID:     senderID,
		sendURL:      DefaultSendURL,
		balanceURL:   DefaultBalanceURL,
		httpClient:   http.DefaultClient,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SenderID returns the default sender id.
func (c *Client) SenderID() string { return c.senderID }

// Send sends message to a single recipient. An empty senderID selects
// the default sender.
func (c *Client) Send(ctx context.Context, to, message, senderID string) sms.SendResult {
	sender := senderID
	if sender == "" {
		sender = c.senderID
	}

	payload := sendRequest{
		From:               sender,
		To:                 FormatPhoneNumber(to),
		Content:            message,
		RegisteredDelivery: true,
	}

	data, err := c.do(ctx, http.MethodPost, c.sendURL, payload)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("to", to).
			Str("sender", sender).
			Msg("hubtel sms send failed")

		return sms.SendResult{
			Success:    false,
			Error:      err.Error(),
			StatusCode: statusCodeOf(err),
		}
	}

	return sms.SendResult{
		Success:   true,
		MessageID: messageIDOf(data),
		Raw:       data,
	}
}

// SendBulk sends message to every recipient in order, one request at a
// time. A failure for one recipient does not affect the others.
func (c *Client) SendBulk(ctx context.Context, recipients []string, message, senderID string) *sms.BulkResult {
	results := sms.NewBulkResult(len(recipients))
	for _, recipient := range recipients {
		results.Set(recipient, c.Send(ctx, recipient, message, senderID))
	}
	return results
}

// CheckStatus fetches the delivery status of a sent message. The id is
// escaped into a single path segment below the send endpoint.
func (c *Client) CheckStatus(ctx context.Context, messageID string) sms.Result {
	endpoint := c.sendURL + "/" + url.PathEscape(messageID)

	data, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("message_id", messageID).
			Msg("hubtel sms status check failed")

		return failure(err)
	}

	return sms.Result{Success: true, Data: data}
}

// GetBalance fetches the account balance.
func (c *Client) GetBalance(ctx context.Context) sms.Result {
	data, err := c.do(ctx, http.MethodGet, c.balanceURL, nil)
	if err != nil {
		c.log.Error().
			Err(err).
			Msg("hubtel balance check failed")

		return failure(err)
	}

	return sms.Result{Success: true, Data: data}
}

// do issues one authenticated request and decodes the JSON response.
// A nil body sends no payload. Any non-2xx status is returned as *StatusError.
func (c *Client) do(ctx context.Context, method, endpoint string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("hubtel: marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("hubtel: create request: %w", err)
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	rawBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(rawBytes),
		}
	}

	return c.decode(rawBytes, method, endpoint), nil
}

// decode parses a 2xx response body. An empty or malformed body yields nil.
// Numbers are kept as json.Number so large ids survive intact.
func (c *Client) decode(raw []byte, method, endpoint string) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var data any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	err := dec.Decode(&data)
	if err == nil && dec.Decode(new(json.RawMessage)) != io.EOF {
		err = errors.New("trailing data after JSON value")
	}
	if err != nil {
		c.log.Warn().
			Err(err).
			Str("method", method).
			Str("url", endpoint).
			Msg("hubtel returned a non-JSON success body")
		return nil
	}
	return data
}

// messageIDOf reads the MessageId field of a decoded send response.
func messageIDOf(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}

	switch v := obj["MessageId"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func failure(err error) sms.Result {
	return sms.Result{
		Success:    false,
		Error:      err.Error(),
		StatusCode: statusCodeOf(err),
	}
}

// compile-time check: Client satisfies the sms.Gateway interface.
var _ sms.Gateway = (*Client)(nil)
