package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"streammax/landing"
	"streammax/middleware"
	"streammax/models"
)

type planView struct {
	models.Plan
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

func (h *Landing) ListPlans(c *gin.Context) {
	st, err := h.store.Load(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "State unavailable"})
		return
	}

	plans := h.catalog.Plans()
	views := make([]planView, 0, len(plans))
	for _, p := range plans {
		label := landing.PlanLabel(p, st.SelectedPlan)
		views = append(views, planView{Plan: p, Label: label, Selected: label == landing.LabelSelected})
	}
	c.JSON(http.StatusOK, gin.H{"plans": views})
}

func (h *Landing) ListFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"features": h.catalog.Features()})
}

func (h *Landing) GetState(c *gin.Context) {
	st, err := h.store.Load(middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "State unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state": st,
		"menu":  h.page(&st, nil).Menu().String(),
	})
}

// UpdateContactField sets one contact form field without submitting.
func (h *Landing) UpdateContactField(c *gin.Context) {
	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	st, err := h.store.Update(middleware.SessionID(c), func(st *models.ViewState) error {
		return h.page(st, nil).UpdateField(req.Field, req.Value)
	})
	if errors.Is(err, landing.ErrUnknownField) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown field: " + req.Field})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "State unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": st.Form})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
