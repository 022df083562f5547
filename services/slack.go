package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"streammax/models"
)

// SlackNotifier posts each lead to an incoming-webhook channel.
type SlackNotifier struct {
	webhookURL string
	client     *resty.Client
	log        *zap.Logger
}

func NewSlackNotifier(webhookURL string, client *resty.Client, log *zap.Logger) (*SlackNotifier, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("SLACK_WEBHOOK_URL is required")
	}
	if client == nil {
		client = resty.New()
	}
	return &SlackNotifier{webhookURL: webhookURL, client: client, log: log.Named("lead.slack")}, nil
}

func (n *SlackNotifier) Submit(ctx context.Context, lead models.Lead) error {
	plan := lead.Plan
	if plan == "" {
		plan = "none selected"
	}
	payload := map[string]string{
		"text": fmt.Sprintf("📺 New free-test request\n\nName: %s\nEmail: %s\nPhone: %s\nPlan: %s\n\n%s",
			lead.Name,
			lead.Email,
			lead.Phone,
			plan,
			lead.Message,
		),
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.webhookURL)
	if err != nil {
		n.log.Error("sending slack request", zap.Error(err))
		return fmt.Errorf("%w: slack: %v", ErrDelivery, err)
	}
	if resp.IsError() {
		n.log.Error("slack api error", zap.Int("status", resp.StatusCode()))
		return fmt.Errorf("%w: slack status %d", ErrDelivery, resp.StatusCode())
	}

	n.log.Info("slack lead notification sent", zap.String("email", lead.Email))
	return nil
}
