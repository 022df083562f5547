package services

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"streammax/config"
)

// NewLeadSubmitter wires the delivery channels the feature flags enable.
// With e-mail disabled, leads are only logged.
func NewLeadSubmitter(cfg config.LeadConfig, features config.Features, log *zap.Logger) (*Dispatcher, error) {
	var primary LeadSubmitter = NewLogSubmitter(log)

	if features.LeadEmailEnabled {
		var err error
		switch cfg.EmailProvider {
		case "mailgun":
			primary, err = NewMailgunSubmitter(cfg, log)
		default:
			primary, err = NewSendGridSubmitter(cfg, log)
		}
		if err != nil {
			return nil, fmt.Errorf("lead email: %w", err)
		}
	}

	var notifiers []LeadSubmitter
	if features.LeadSlackEnabled {
		client := resty.New().SetTimeout(cfg.Timeout)
		slack, err := NewSlackNotifier(cfg.SlackWebhookURL, client, log)
		if err != nil {
			return nil, fmt.Errorf("lead slack: %w", err)
		}
		notifiers = append(notifiers, slack)
	}

	return NewDispatcher(primary, notifiers, cfg.Timeout, log), nil
}
