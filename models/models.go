package models

import (
	"time"
)

// Variant is the visual emphasis of a plan's call-to-action button.
type Variant string

const (
	VariantGlass   Variant = "glass"
	VariantPremium Variant = "premium"
	VariantHero    Variant = "hero"
)

func (v Variant) Valid() bool {
	switch v {
	case VariantGlass, VariantPremium, VariantHero:
		return true
	}
	return false
}

type Plan struct {
	Name        string   `json:"name" mapstructure:"name"`
	Price       string   `json:"price" mapstructure:"price"`
	Period      string   `json:"period" mapstructure:"period"`
	Description string   `json:"description" mapstructure:"description"`
	Features    []string `json:"features" mapstructure:"features"`
	Popular     bool     `json:"popular" mapstructure:"popular"`
	Variant     Variant  `json:"variant" mapstructure:"variant"`
}

type Feature struct {
	Icon        string `json:"icon" mapstructure:"icon"` // lucide glyph name
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
}

type NavItem struct {
	Name string `json:"name" mapstructure:"name"`
	ID   string `json:"id" mapstructure:"id"`
}

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ViewState is everything one visitor's page remembers between interactions.
type ViewState struct {
	SelectedPlan   string            `json:"selected_plan,omitempty"`
	MobileMenuOpen bool              `json:"mobile_menu_open"`
	Form           ContactForm       `json:"form"`
	Notice         string            `json:"notice,omitempty"`       // one-shot acknowledgement
	FormError      string            `json:"form_error,omitempty"`   // submission failure, form kept
	FieldErrors    map[string]string `json:"field_errors,omitempty"` // per-field validation messages
}

// Lead is what gets handed to a lead submitter when the contact form is sent.
type Lead struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Plan        string    `json:"plan,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
