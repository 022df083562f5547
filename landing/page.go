// Package landing is the interaction model behind the landing page: which
// plan the visitor picked, whether the mobile menu is open, and the contact
// form. Every operation runs to completion against one visitor's ViewState.
package landing

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"streammax/models"
	"streammax/services"
)

const (
	LabelSelected = "Selected!"
	LabelChoose   = "Choose Plan"

	Acknowledgement = "Thank you for your request! We'll contact you within 24 hours to set up your free test."

	msgFixFields      = "Please correct the highlighted fields."
	msgDeliveryFailed = "We couldn't send your request right now. Please try again in a moment."
)

// Contact form field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

var ErrUnknownField = errors.New("unknown contact form field")

// PlanLabel is the text of a plan's call-to-action for the given selection.
func PlanLabel(plan models.Plan, selected string) string {
	if selected != "" && plan.Name == selected {
		return LabelSelected
	}
	return LabelChoose
}

// Viewport is the document the page is rendered into.
type Viewport interface {
	HasSection(id string) bool
	ScrollIntoView(id string)
}

type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (m MenuState) String() string {
	if m == MenuOpen {
		return "open"
	}
	return "closed"
}

type Page struct {
	state    *models.ViewState
	viewport Viewport
	log      *zap.Logger
	now      func() time.Time
}

// New binds the operations to state. A nil viewport makes navigation only
// close the menu.
func New(state *models.ViewState, viewport Viewport, log *zap.Logger) *Page {
	if log == nil {
		log = zap.NewNop()
	}
	return &Page{state: state, viewport: viewport, log: log, now: time.Now}
}

func (p *Page) State() models.ViewState {
	return *p.state
}

// SelectPlan records name as the chosen plan. The name is not checked
// against the catalog.
func (p *Page) SelectPlan(name string) {
	p.state.SelectedPlan = name
	p.log.Info("plan selected", zap.String("plan", name))
}

// NavigateTo scrolls to the section when the document has it and always
// closes the mobile menu.
func (p *Page) NavigateTo(sectionID string) {
	if p.viewport != nil && p.viewport.HasSection(sectionID) {
		p.viewport.ScrollIntoView(sectionID)
	}
	p.state.MobileMenuOpen = false
}

func (p *Page) ToggleMobileMenu() {
	p.state.MobileMenuOpen = !p.state.MobileMenuOpen
}

func (p *Page) Menu() MenuState {
	if p.state.MobileMenuOpen {
		return MenuOpen
	}
	return MenuClosed
}

// UpdateField overwrites one contact form field. The value is taken as is.
func (p *Page) UpdateField(field, value string) error {
	f := &p.state.Form
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldMessage:
		f.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Submit hands the form to submitter. On success the visitor gets the
// acknowledgement and the form is cleared; on failure the form is kept and
// the error is surfaced, per field when the submitter says which ones.
func (p *Page) Submit(ctx context.Context, submitter services.LeadSubmitter) error {
	form := p.state.Form
	p.log.Info("contact form submitted",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("phone", form.Phone),
		zap.String("message", form.Message))

	p.state.Notice = ""
	p.state.FormError = ""
	p.state.FieldErrors = nil

	err := submitter.Submit(ctx, models.Lead{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		Message:     form.Message,
		Plan:        p.state.SelectedPlan,
		SubmittedAt: p.now().UTC(),
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			p.state.FormError = msgFixFields
			p.state.FieldErrors = verr.Fields
		} else {
			p.state.FormError = msgDeliveryFailed
		}
		p.log.Warn("contact form not delivered", zap.String("email", form.Email), zap.Error(err))
		return err
	}

	p.state.Notice = Acknowledgement
	p.state.Form = models.ContactForm{}
	return nil
}

// RejectInput keeps the form as typed and reports fields the input layer
// refused before anything reached a submitter.
func (p *Page) RejectInput(fields map[string]string) {
	p.state.Notice = ""
	p.state.FormError = msgFixFields
	p.state.FieldErrors = fields
}

// DismissNotice clears the acknowledgement once it has been shown.
func (p *Page) DismissNotice() {
	p.state.Notice = ""
}
