// Package sms exposes the gateway contract used by the service layer
// and the result values every gateway operation returns.
package sms

import "context"

// Gateway is the contract for an SMS gateway implementation.
//
// Implementations never return transport or HTTP failures as errors;
// they are reported through the Success/Error fields of the result.
type Gateway interface {
	// Send sends one message. An empty senderID selects the default sender.
	Send(ctx context.Context, to, message, senderID string) SendResult

	// SendBulk sends the same message to every recipient, one after the other.
	SendBulk(ctx context.Context, recipients []string, message, senderID string) *BulkResult

	// CheckStatus fetches the delivery status of a previously sent message.
	CheckStatus(ctx context.Context, messageID string) Result

	// GetBalance fetches the account balance.
	GetBalance(ctx context.Context) Result
}
