package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"streammax/components"
	"streammax/content"
	"streammax/db"
	"streammax/landing"
	"streammax/middleware"
	"streammax/models"
	"streammax/services"
)

// Landing serves the page and the form posts that drive it. Every post
// changes the visitor's stored state and redirects back to the page.
type Landing struct {
	catalog   *content.Catalog
	store     *db.StateStore
	submitter services.LeadSubmitter
	log       *zap.Logger
}

func NewLanding(catalog *content.Catalog, store *db.StateStore, submitter services.LeadSubmitter, log *zap.Logger) *Landing {
	if log == nil {
		log = zap.NewNop()
	}
	return &Landing{catalog: catalog, store: store, submitter: submitter, log: log}
}

type contactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

func (r contactRequest) apply(p *landing.Page) error {
	for _, f := range [...]struct{ name, value string }{
		{landing.FieldName, r.Name},
		{landing.FieldEmail, r.Email},
		{landing.FieldPhone, r.Phone},
		{landing.FieldMessage, r.Message},
	} {
		if err := p.UpdateField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// resumeURL points the browser back at the page without resetting it,
// scrolled to anchor when one is given.
func resumeURL(anchor string) string {
	if anchor == "" {
		return "/?resume=1"
	}
	return "/?resume=1#" + anchor
}

func (h *Landing) page(st *models.ViewState, vp landing.Viewport) *landing.Page {
	return landing.New(st, vp, h.log)
}

func (h *Landing) storeFailed(c *gin.Context, err error) {
	h.log.Error("view state unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "Something went wrong, please reload the page.")
}

// ShowPage renders the landing page. A plain load starts from the initial
// state; redirects after an interaction carry ?resume=1 to keep it.
func (h *Landing) ShowPage(c *gin.Context) {
	sid := middleware.SessionID(c)
	if c.Query("resume") == "" {
		if err := h.store.Reset(sid); err != nil {
			h.storeFailed(c, err)
			return
		}
	}

	st, err := h.store.Load(sid)
	if err != nil {
		h.storeFailed(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := components.LandingPage(h.catalog, st).Render(c.Writer); err != nil {
		h.log.Error("rendering page", zap.Error(err))
		return
	}

	// the acknowledgement is shown once
	if st.Notice != "" {
		_, err := h.store.Update(sid, func(st *models.ViewState) error {
			h.page(st, nil).DismissNotice()
			return nil
		})
		if err != nil {
			h.log.Warn("dismissing notice", zap.Error(err))
		}
	}
}

func (h *Landing) SelectPlan(c *gin.Context) {
	plan := c.PostForm("plan")
	_, err := h.store.Update(middleware.SessionID(c), func(st *models.ViewState) error {
		h.page(st, nil).SelectPlan(plan)
		return nil
	})
	if err != nil {
		h.storeFailed(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, resumeURL(content.SectionPricing))
}

func (h *Landing) Navigate(c *gin.Context) {
	doc := components.NewDocument(h.catalog)
	_, err := h.store.Update(middleware.SessionID(c), func(st *models.ViewState) error {
		h.page(st, doc).NavigateTo(c.Param("section"))
		return nil
	})
	if err != nil {
		h.storeFailed(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, resumeURL(doc.Target()))
}

func (h *Landing) ToggleMenu(c *gin.Context) {
	_, err := h.store.Update(middleware.SessionID(c), func(st *models.ViewState) error {
		h.page(st, nil).ToggleMobileMenu()
		return nil
	})
	if err != nil {
		h.storeFailed(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, resumeURL(""))
}

// SubmitContact takes the whole form in one post. Values the input layer
// refuses are kept on the form with their messages; accepted ones go to the
// lead submitter.
func (h *Landing) SubmitContact(c *gin.Context) {
	sid := middleware.SessionID(c)

	var req contactRequest
	var rejected map[string]string
	if err := c.ShouldBind(&req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.String(http.StatusBadRequest, "Invalid form submission")
			return
		}
		rejected = services.FieldMessages(verrs)
	}

	st, err := h.store.Update(sid, func(st *models.ViewState) error {
		p := h.page(st, nil)
		if err := req.apply(p); err != nil {
			return err
		}
		if rejected != nil {
			p.RejectInput(rejected)
		}
		return nil
	})
	if err != nil {
		h.storeFailed(c, err)
		return
	}

	if rejected == nil {
		// Delivery runs outside the store transaction so a slow provider
		// doesn't hold up other visitors. The page already logged any failure.
		submitted := st.Form
		_ = h.page(&st, nil).Submit(c.Request.Context(), h.submitter)
		_, err = h.store.Update(sid, func(cur *models.ViewState) error {
			mergeSubmission(cur, submitted, st)
			return nil
		})
		if err != nil {
			h.storeFailed(c, err)
			return
		}
	}

	c.Redirect(http.StatusSeeOther, resumeURL(content.SectionContact))
}

// mergeSubmission writes a finished submission back onto the visitor's
// current state. Only the form outcome is copied; the form is cleared only
// if nobody edited it while the lead was in flight.
func mergeSubmission(cur *models.ViewState, submitted models.ContactForm, outcome models.ViewState) {
	if cur.Form == submitted {
		cur.Form = outcome.Form
	}
	cur.Notice = outcome.Notice
	cur.FormError = outcome.FormError
	cur.FieldErrors = outcome.FieldErrors
}
