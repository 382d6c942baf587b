package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/oggyb/hubtel-sms/internal/request"
	"github.com/oggyb/hubtel-sms/internal/response"
	"github.com/oggyb/hubtel-sms/internal/service"
)

const (
	// maxBodyBytes caps the size of a JSON request body.
	maxBodyBytes = 1 << 20
	// MaxBulkRecipients caps a single bulk request. Each recipient is one
	// outbound gateway call.
	MaxBulkRecipients = 1000
)

// SMSHandler exposes the SMS service over HTTP.
//
// Gateway failures are not HTTP errors here: the handler answers 200 with
// the failed result in data and success=false in the envelope. Only
// malformed requests get a 4xx.
type SMSHandler struct {
	smsSvc service.SMSService
}

// NewSMSHandler constructs a new SMSHandler.
func NewSMSHandler(smsSvc service.SMSService) *SMSHandler {
	return &SMSHandler{smsSvc: smsSvc}
}

// Send godoc
// @Summary     Send an SMS
// @Description Sends one message through Hubtel. Numbers are normalized before sending.
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       request body request.SendRequest true "Recipient, message and optional sender id"
// @Success     200 {object} response.SendResponse
// @Failure     400 {object} map[string]string
// @Failure     413 {object} map[string]string
// @Router      /sms/send [post]
func (h *SMSHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.To = strings.TrimSpace(req.To)
	if req.To == "" {
		response.RespondError(w, http.StatusBadRequest, "to is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	res := h.smsSvc.Send(r.Context(), req.To, req.Message, strings.TrimSpace(req.SenderID))
	response.RespondResult(w, http.StatusOK, res.Success, res)
}

// SendBulk godoc
// @Summary     Send an SMS to many recipients
// @Description Sends the same message to each recipient in order. Results are keyed by recipient as given.
// @Tags        sms
// @Accept      json
// @Produce     json
// @Param       request body request.BulkRequest true "Recipients, message and optional sender id"
// @Success     200 {object} response.BulkResponse
// @Failure     400 {object} map[string]string
// @Failure     413 {object} map[string]string
// @Router      /sms/bulk [post]
func (h *SMSHandler) SendBulk(w http.ResponseWriter, r *http.Request) {
	var req request.BulkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Recipients) == 0 {
		response.RespondError(w, http.StatusBadRequest, "recipients must not be empty")
		return
	}
	if len(req.Recipients) > MaxBulkRecipients {
		response.RespondError(w, http.StatusBadRequest, fmt.Sprintf("at most %d recipients per request", MaxBulkRecipients))
		return
	}
	for _, to := range req.Recipients {
		if strings.TrimSpace(to) == "" {
			response.RespondError(w, http.StatusBadRequest, "recipients must not contain empty numbers")
			return
		}
	}
	if strings.TrimSpace(req.Message) == "" {
		response.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	res := h.smsSvc.SendBulk(r.Context(), req.Recipients, req.Message, strings.TrimSpace(req.SenderID))
	response.RespondResult(w, http.StatusOK, res.Failed() == 0, res)
}

// Status godoc
// @Summary     Check delivery status
// @Description Fetches the Hubtel delivery status of a message.
// @Tags        sms
// @Produce     json
// @Param       messageId path string true "Message id returned by send"
// @Success     200 {object} response.StatusResponse
// @Failure     400 {object} map[string]string
// @Router      /sms/status/{messageId} [get]
func (h *SMSHandler) Status(w http.ResponseWriter, r *http.Request) {
	messageID := strings.TrimSpace(r.PathValue("messageId"))
	if messageID == "" {
		response.RespondError(w, http.StatusBadRequest, "messageId is required")
		return
	}

	report := h.smsSvc.Status(r.Context(), messageID)
	response.RespondResult(w, http.StatusOK, report.Success, report)
}

// Balance godoc
// @Summary     Account balance
// @Description Fetches the Hubtel account balance.
// @Tags        account
// @Produce     json
// @Success     200 {object} response.BalanceResponse
// @Router      /balance [get]
func (h *SMSHandler) Balance(w http.ResponseWriter, r *http.Request) {
	res := h.smsSvc.Balance(r.Context())
	response.RespondResult(w, http.StatusOK, res.Success, res)
}

// decodeBody reads a size-limited JSON body into dst. On failure it has
// already written the error response.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
