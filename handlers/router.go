package handlers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streammax/config"
	"streammax/middleware"
)

type RouterConfig struct {
	Landing       *Landing
	Features      config.Features
	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookie  bool
	Static        fs.FS // served under /static when set
	Log           *zap.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	r.GET("/health", Health)
	if cfg.Static != nil {
		r.StaticFS("/static", http.FS(cfg.Static))
	}

	h := cfg.Landing
	site := r.Group("/", middleware.VisitorSession(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookie))
	{
		site.GET("/", h.ShowPage)
		site.POST("/plans/select", h.SelectPlan)
		site.POST("/nav/:section", h.Navigate)
		site.POST("/menu/toggle", h.ToggleMenu)
		site.POST("/contact", h.SubmitContact)
	}

	if cfg.Features.JSONAPIEnabled {
		api := site.Group("/api")
		{
			api.GET("/plans", h.ListPlans)
			api.GET("/features", h.ListFeatures)
			api.GET("/state", h.GetState)
			api.POST("/contact/field", h.UpdateContactField)
		}
	}

	return r
}
