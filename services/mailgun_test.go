package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"streammax/config"
	"streammax/models"
)

func TestMailgunSubmitterValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LeadConfig
		wantError string
	}{
		{
			name:      "all fields valid",
			cfg:       config.LeadConfig{MailgunDomain: "mg.example.com", MailgunAPIKey: "key-abc123", Inbox: "sales@example.com"},
			wantError: "",
		},
		{
			name:      "missing domain",
			cfg:       config.LeadConfig{MailgunAPIKey: "key-abc123", Inbox: "sales@example.com"},
			wantError: "MAILGUN_DOMAIN is required",
		},
		{
			name:      "missing key",
			cfg:       config.LeadConfig{MailgunDomain: "mg.example.com", Inbox: "sales@example.com"},
			wantError: "MAILGUN_API_KEY is required",
		},
		{
			name:      "missing inbox",
			cfg:       config.LeadConfig{MailgunDomain: "mg.example.com", MailgunAPIKey: "key-abc123"},
			wantError: "LEAD_INBOX is required",
		},
		{
			name:      "all fields empty",
			cfg:       config.LeadConfig{},
			wantError: "MAILGUN_DOMAIN is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &MailgunSubmitter{cfg: tt.cfg}
			err := s.validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantError)
			}
		})
	}
}

func TestMailgunSubmitter_InvalidLead(t *testing.T) {
	s, err := NewMailgunSubmitter(config.LeadConfig{
		MailgunDomain: "mg.example.com",
		MailgunAPIKey: "key-abc123",
		Inbox:         "sales@example.com",
	}, zap.NewNop())
	require.NoError(t, err)

	err = s.Submit(context.Background(), models.Lead{Email: "not-an-email"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
}
