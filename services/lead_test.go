package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streammax/models"
)

func TestValidateLead(t *testing.T) {
	tests := []struct {
		name   string
		lead   models.Lead
		fields map[string]string
	}{
		{
			name: "valid",
			lead: models.Lead{Name: "Jane", Email: "jane@x.com"},
		},
		{
			name:   "missing name",
			lead:   models.Lead{Name: "  ", Email: "jane@x.com"},
			fields: map[string]string{"name": "This field is required"},
		},
		{
			name:   "bad email",
			lead:   models.Lead{Name: "Jane", Email: "jane-at-x"},
			fields: map[string]string{"email": "Enter a valid email address"},
		},
		{
			name: "both missing",
			lead: models.Lead{},
			fields: map[string]string{
				"name":  "This field is required",
				"email": "This field is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLead(tt.lead)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "required", "email": "bad"}}
	assert.Equal(t, "invalid lead: email: bad, name: required", err.Error())
}

func TestLeadEmail(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	subject, body := leadEmail(models.Lead{Name: "Jane", Email: "jane@x.com", Plan: "Premium", SubmittedAt: at})
	assert.Equal(t, "[Free Test] Jane requested a 24-hour trial (Premium)", subject)
	assert.Contains(t, body, "Email: jane@x.com")
	assert.Contains(t, body, "Phone: not provided")
	assert.Contains(t, body, "(no additional information)")
	assert.Contains(t, body, "2024-05-01T12:00:00Z")

	subject, body = leadEmail(models.Lead{Name: "Bo", Email: "bo@x.com", Phone: "555", Message: "Fire TV"})
	assert.Equal(t, "[Free Test] Bo requested a 24-hour trial", subject)
	assert.Contains(t, body, "none selected")
	assert.Contains(t, body, "Fire TV")
}
