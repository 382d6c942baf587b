package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/oggyb/hubtel-sms/internal/cache"
	"github.com/oggyb/hubtel-sms/internal/sms"
)

// DefaultSentTTL is how long a "sent at" hint is kept when no TTL is configured.
const DefaultSentTTL = 24 * time.Hour

type SMSService interface {
	Send(ctx context.Context, to, message, senderID string) sms.SendResult
	SendBulk(ctx context.Context, recipients []string, message, senderID string) *sms.BulkResult
	Status(ctx context.Context, messageID string) StatusReport
	Balance(ctx context.Context) sms.Result
}

// StatusReport is the gateway status of a message plus, when this process
// sent it recently, the time the gateway accepted it.
type StatusReport struct {
	sms.Result
	SentAt string `json:"sent_at,omitempty"`
}

type smsService struct {
	gateway sms.Gateway
	cache   cache.Cache
	sentTTL time.Duration
	log     zerolog.Logger
}

// NewSMSService wraps a gateway. c may be nil, in which case no
// "sent at" hints are recorded or returned.
func NewSMSService(gateway sms.Gateway, c cache.Cache, sentTTL time.Duration, log zerolog.Logger) SMSService {
	if sentTTL <= 0 {
		sentTTL = DefaultSentTTL
	}

	return &smsService{
		gateway: gateway,
		cache:   c,
		sentTTL: sentTTL,
		log:     log.With().Str("component", "service").Logger(),
	}
}

func (s *smsService) Send(ctx context.Context, to, message, senderID string) sms.SendResult {
	res := s.gateway.Send(ctx, to, message, senderID)
	if res.Success {
		s.rememberSent(ctx, res.MessageID)
	}
	return res
}

func (s *smsService) SendBulk(ctx context.Context, recipients []string, message, senderID string) *sms.BulkResult {
	results := s.gateway.SendBulk(ctx, recipients, message, senderID)

	results.Each(func(_ string, r sms.SendResult) {
		if r.Success {
			s.rememberSent(ctx, r.MessageID)
		}
	})

	s.log.Info().
		Int("recipients", results.Len()).
		Int("failed", results.Failed()).
		Msg("bulk send completed")

	return results
}

func (s *smsService) Status(ctx context.Context, messageID string) StatusReport {
	report := StatusReport{Result: s.gateway.CheckStatus(ctx, messageID)}

	if s.cache == nil {
		return report
	}

	sentAt, err := s.cache.Get(ctx, cache.SentMessages.Key(messageID))
	switch {
	case err == nil:
		report.SentAt = sentAt
	case !errors.Is(err, cache.ErrNotFound):
		s.log.Warn().Err(err).Str("message_id", messageID).Msg("failed to read sent time from cache")
	}

	return report
}

func (s *smsService) Balance(ctx context.Context) sms.Result {
	return s.gateway.GetBalance(ctx)
}

// rememberSent records when messageID was accepted. Cache errors are
// logged and otherwise ignored.
func (s *smsService) rememberSent(ctx context.Context, messageID string) {
	if s.cache == nil || messageID == "" {
		return
	}

	key := cache.SentMessages.Key(messageID)
	if err := s.cache.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), s.sentTTL); err != nil {
		s.log.Warn().Err(err).Str("message_id", messageID).Msg("failed to cache sent time")
	}
}
