package response

import (
	"github.com/oggyb/hubtel-sms/internal/service"
	"github.com/oggyb/hubtel-sms/internal/sms"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// SendResponse documents the envelope returned by POST /sms/send.
type SendResponse struct {
	Success   bool           `json:"success"`
	Data      sms.SendResult `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// BulkResponse documents the envelope returned by POST /sms/bulk.
// Data is an object keyed by recipient.
type BulkResponse struct {
	Success   bool                      `json:"success"`
	Data      map[string]sms.SendResult `json:"data"`
	Timestamp string                    `json:"timestamp"`
}

// StatusResponse documents the envelope returned by GET /sms/status/{messageId}.
type StatusResponse struct {
	Success   bool                 `json:"success"`
	Data      service.StatusReport `json:"data"`
	Timestamp string               `json:"timestamp"`
}

// BalanceResponse documents the envelope returned by GET /balance.
type BalanceResponse struct {
	Success   bool       `json:"success"`
	Data      sms.Result `json:"data"`
	Timestamp string     `json:"timestamp"`
}
