package handler

import (
	"html/template"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/jellydator/ttlcache/v3"
	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/internal/jsonlog"
	"github.com/litvinov-da/library/service"
)

// Handler defines Handler layer.
type Handler struct {
	config      config.Config
	logger      *jsonlog.Logger
	permissions *ttlcache.Cache[int64, data.Permissions]
	sessions    *sessions.CookieStore
	templates   map[string]*template.Template
	service     service.Service
}

// New creates a new instance of Handler. The permissions cache holds the
// permission codes of recently seen users.
func New(cfg config.Config, logger *jsonlog.Logger, permissions *ttlcache.Cache[int64, data.Permissions], service service.Service) (*Handler, error) {
	templates, err := newTemplateCache()
	if err != nil {
		return nil, err
	}
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Handler{
		config:      cfg,
		logger:      logger,
		permissions: permissions,
		sessions:    store,
		templates:   templates,
		service:     service,
	}, nil
}
