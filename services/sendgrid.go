package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"streammax/config"
	"streammax/models"
)

const sendGridHost = "https://api.sendgrid.com"

// SendGridSubmitter e-mails every lead to the sales inbox.
type SendGridSubmitter struct {
	cfg  config.LeadConfig
	host string
	log  *zap.Logger
}

func NewSendGridSubmitter(cfg config.LeadConfig, log *zap.Logger) (*SendGridSubmitter, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	s := &SendGridSubmitter{cfg: cfg, host: sendGridHost, log: log.Named("lead.sendgrid")}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SendGridSubmitter) validate() error {
	if s.cfg.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is required")
	}
	if s.cfg.Inbox == "" {
		return fmt.Errorf("LEAD_INBOX is required")
	}
	return nil
}

func (s *SendGridSubmitter) Submit(ctx context.Context, lead models.Lead) error {
	if err := ValidateLead(lead); err != nil {
		return err
	}

	subject, body := leadEmail(lead)
	from := mail.NewEmail(s.cfg.FromName, s.cfg.Sender())
	to := mail.NewEmail("Sales", s.cfg.Inbox)
	message := mail.NewSingleEmail(from, subject, to, body, "")
	message.SetReplyTo(mail.NewEmail(lead.Name, lead.Email))

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	request := sendgrid.GetRequest(s.cfg.SendGridAPIKey, "/v3/mail/send", s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		s.log.Error("sending lead email", zap.String("email", lead.Email), zap.Error(err))
		return fmt.Errorf("%w: sendgrid: %v", ErrDelivery, err)
	}
	if response.StatusCode >= 300 {
		s.log.Error("sendgrid rejected lead email",
			zap.Int("status", response.StatusCode),
			zap.String("body", response.Body))
		return fmt.Errorf("%w: sendgrid status %d", ErrDelivery, response.StatusCode)
	}

	s.log.Info("lead email sent", zap.String("email", lead.Email), zap.Int("status", response.StatusCode))
	return nil
}
