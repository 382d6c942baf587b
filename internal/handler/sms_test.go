package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oggyb/hubtel-sms/internal/request"
	"github.com/oggyb/hubtel-sms/internal/service"
	"github.com/oggyb/hubtel-sms/internal/sms"
)

// fakeSMSService records the last call and returns canned results.
type fakeSMSService struct {
	sendRes   sms.SendResult
	statusRes service.StatusReport
	balance   sms.Result

	lastTo     string
	lastSender string
	lastIDs    []string
	lastStatus string
}

func (f *fakeSMSService) Send(_ context.Context, to, _, senderID string) sms.SendResult {
	f.lastTo = to
	f.lastSender = senderID
	return f.sendRes
}

func (f *fakeSMSService) SendBulk(_ context.Context, recipients []string, _, _ string) *sms.BulkResult {
	f.lastIDs = recipients
	out := sms.NewBulkResult(len(recipients))
	for _, r := range recipients {
		out.Set(r, sms.SendResult{Success: r != "bad", MessageID: "id-" + r})
	}
	return out
}

func (f *fakeSMSService) Status(_ context.Context, messageID string) service.StatusReport {
	f.lastStatus = messageID
	return f.statusRes
}

func (f *fakeSMSService) Balance(context.Context) sms.Result { return f.balance }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestSMSHandler_Send(t *testing.T) {
	svc := &fakeSMSService{sendRes: sms.SendResult{Success: true, MessageID: "m-1"}}
	h := NewSMSHandler(svc)

	body := `{"to":" 0201234567 ","message":"hello","sender_id":"Promo"}`
	rec := httptest.NewRecorder()
	h.Send(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decode(t, rec)
	if !env.Success || !strings.Contains(string(env.Data), `"message_id":"m-1"`) {
		t.Fatalf("unexpected envelope: %+v data=%s", env, env.Data)
	}
	if svc.lastTo != "0201234567" || svc.lastSender != "Promo" {
		t.Fatalf("service got to=%q sender=%q", svc.lastTo, svc.lastSender)
	}
}

func TestSMSHandler_SendGatewayFailure(t *testing.T) {
	svc := &fakeSMSService{sendRes: sms.SendResult{Success: false, Error: "Client error", StatusCode: 401}}
	h := NewSMSHandler(svc)

	rec := httptest.NewRecorder()
	h.Send(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(`{"to":"233201234567","message":"hi"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decode(t, rec)
	if env.Success {
		t.Fatalf("envelope success should mirror the failed result")
	}
	if !strings.Contains(string(env.Data), `"status_code":401`) {
		t.Fatalf("data = %s, want status_code 401", env.Data)
	}
}

func TestSMSHandler_SendValidation(t *testing.T) {
	cases := map[string]string{
		"invalid json":  `{`,
		"missing to":    `{"message":"hi"}`,
		"blank message": `{"to":"233201234567","message":"  "}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewSMSHandler(&fakeSMSService{}).Send(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(body)))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env := decode(t, rec); env.Error == nil || env.Error.Code != http.StatusBadRequest {
				t.Fatalf("expected error body, got %+v", env)
			}
		})
	}
}

func TestSMSHandler_SendBulk(t *testing.T) {
	svc := &fakeSMSService{}
	h := NewSMSHandler(svc)

	body := `{"recipients":["b","a","bad"],"message":"hi"}`
	rec := httptest.NewRecorder()
	h.SendBulk(rec, httptest.NewRequest(http.MethodPost, "/sms/bulk", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decode(t, rec)
	if env.Success {
		t.Fatalf("envelope should report failure when any recipient failed")
	}

	data := string(env.Data)
	if strings.Index(data, `"b"`) > strings.Index(data, `"a"`) {
		t.Fatalf("data keys not in input order: %s", data)
	}
	if len(svc.lastIDs) != 3 {
		t.Fatalf("service got %v", svc.lastIDs)
	}
}

func TestSMSHandler_SendBulkValidation(t *testing.T) {
	cases := map[string]string{
		"no recipients":   `{"recipients":[],"message":"hi"}`,
		"blank recipient": `{"recipients":["a"," "],"message":"hi"}`,
		"no message":      `{"recipients":["a"]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewSMSHandler(&fakeSMSService{}).SendBulk(rec, httptest.NewRequest(http.MethodPost, "/sms/bulk", strings.NewReader(body)))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSMSHandler_SendBulkTooManyRecipients(t *testing.T) {
	recipients := make([]string, MaxBulkRecipients+1)
	for i := range recipients {
		recipients[i] = fmt.Sprintf("23320%07d", i)
	}
	raw, _ := json.Marshal(request.BulkRequest{Recipients: recipients, Message: "hi"})

	svc := &fakeSMSService{}
	rec := httptest.NewRecorder()
	NewSMSHandler(svc).SendBulk(rec, httptest.NewRequest(http.MethodPost, "/sms/bulk", bytes.NewReader(raw)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if svc.lastIDs != nil {
		t.Fatalf("service should not be called, got %d recipients", len(svc.lastIDs))
	}
}

func TestSMSHandler_BodyTooLarge(t *testing.T) {
	body := `{"to":"233201234567","message":"` + strings.Repeat("x", maxBodyBytes) + `"}`

	svc := &fakeSMSService{}
	rec := httptest.NewRecorder()
	NewSMSHandler(svc).Send(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(body)))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if svc.lastTo != "" {
		t.Fatalf("service should not be called")
	}
}

func TestSMSHandler_Status(t *testing.T) {
	svc := &fakeSMSService{statusRes: service.StatusReport{
		Result: sms.Result{Success: true, Data: map[string]any{"Status": "Delivered"}},
		SentAt: "2026-10-16T10:00:00Z",
	}}
	h := NewSMSHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/sms/status/m-9", nil)
	req.SetPathValue("messageId", "m-9")
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	env := decode(t, rec)
	if !env.Success || svc.lastStatus != "m-9" {
		t.Fatalf("unexpected envelope %+v for id %q", env, svc.lastStatus)
	}
	if !strings.Contains(string(env.Data), `"sent_at":"2026-10-16T10:00:00Z"`) {
		t.Fatalf("data = %s, want sent_at", env.Data)
	}
}

func TestSMSHandler_Balance(t *testing.T) {
	svc := &fakeSMSService{balance: sms.Result{Success: false, Error: "down"}}

	rec := httptest.NewRecorder()
	NewSMSHandler(svc).Balance(rec, httptest.NewRequest(http.MethodGet, "/balance", nil))

	env := decode(t, rec)
	if env.Success || !strings.Contains(string(env.Data), `"error":"down"`) {
		t.Fatalf("unexpected envelope %+v data=%s", env, env.Data)
	}
}

func TestHomeHandler(t *testing.T) {
	h := NewHomeHandler("hubtel-sms")

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if env := decode(t, rec); !strings.Contains(string(env.Data), "hubtel-sms") {
		t.Fatalf("unexpected welcome: %s", env.Data)
	}

	rec = httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if env := decode(t, rec); string(env.Data) != `{"status":"ok"}` {
		t.Fatalf("unexpected health: %s", env.Data)
	}
}
