package hubtel

import "github.com/rs/zerolog"

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport used for every request.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l.With().Str("component", "hubtel").Logger()
	}
}

// WithSendURL overrides the send endpoint. Status lookups use it as their base.
func WithSendURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.sendURL = u
		}
	}
}

// WithBalanceURL overrides the balance endpoint.
func WithBalanceURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.balanceURL = u
		}
	}
}
