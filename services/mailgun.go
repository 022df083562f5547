package services

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"

	"streammax/config"
	"streammax/models"
)

// MailgunSubmitter is the Mailgun alternative to SendGridSubmitter.
type MailgunSubmitter struct {
	cfg    config.LeadConfig
	log    *zap.Logger
	client *mailgun.MailgunImpl
}

func NewMailgunSubmitter(cfg config.LeadConfig, log *zap.Logger) (*MailgunSubmitter, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	s := &MailgunSubmitter{cfg: cfg, log: log.Named("lead.mailgun")}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.client = mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	return s, nil
}

func (s *MailgunSubmitter) validate() error {
	if s.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.Inbox == "" {
		return fmt.Errorf("LEAD_INBOX is required")
	}
	return nil
}

func (s *MailgunSubmitter) Submit(ctx context.Context, lead models.Lead) error {
	if err := ValidateLead(lead); err != nil {
		return err
	}

	subject, body := leadEmail(lead)
	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.Sender())

	message := s.client.NewMessage(from, subject, body, s.cfg.Inbox)
	message.SetReplyTo(fmt.Sprintf("%s <%s>", lead.Name, lead.Email))

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	_, id, err := s.client.Send(ctx, message)
	if err != nil {
		s.log.Error("sending lead email", zap.String("email", lead.Email), zap.Error(err))
		return fmt.Errorf("%w: mailgun: %v", ErrDelivery, err)
	}

	s.log.Info("lead email sent", zap.String("email", lead.Email), zap.String("message_id", id))
	return nil
}
