package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"streammax/models"
)

// LeadSubmitter hands a captured lead to whoever follows up on it.
type LeadSubmitter interface {
	Submit(ctx context.Context, lead models.Lead) error
}

const defaultTimeout = 10 * time.Second

// ErrDelivery wraps every transport-level failure (network, timeout, provider
// rejecting the request). The visitor's form is kept when it is returned.
var ErrDelivery = errors.New("lead delivery failed")

// ValidationError carries a message per offending form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid lead: " + strings.Join(parts, ", ")
}

type leadInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

var validate = validator.New()

// ValidateLead checks the fields a follow-up cannot do without.
func ValidateLead(lead models.Lead) error {
	err := validate.Struct(leadInput{
		Name:  strings.TrimSpace(lead.Name),
		Email: strings.TrimSpace(lead.Email),
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	return &ValidationError{Fields: FieldMessages(verrs)}
}

// FieldMessages turns validator failures into visitor-facing messages keyed
// by lower-cased field name.
func FieldMessages(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[key] = "This field is required"
		case "email":
			fields[key] = "Enter a valid email address"
		default:
			fields[key] = "Invalid value"
		}
	}
	return fields
}

// leadEmail renders the notification sent to the sales inbox.
func leadEmail(lead models.Lead) (subject, body string) {
	subject = fmt.Sprintf("[Free Test] %s requested a 24-hour trial", lead.Name)
	if lead.Plan != "" {
		subject += fmt.Sprintf(" (%s)", lead.Plan)
	}

	phone := lead.Phone
	if phone == "" {
		phone = "not provided"
	}
	plan := lead.Plan
	if plan == "" {
		plan = "none selected"
	}
	message := lead.Message
	if message == "" {
		message = "(no additional information)"
	}

	body = fmt.Sprintf(`A visitor asked for a free 24-hour test account.

CONTACT:
Name: %s
Email: %s
Phone: %s

PLAN OF INTEREST:
%s

ADDITIONAL INFORMATION:
%s

---
Submitted: %s
Please reach out within 24 hours.`,
		lead.Name,
		lead.Email,
		phone,
		plan,
		message,
		lead.SubmittedAt.Format(time.RFC3339),
	)
	return subject, body
}
