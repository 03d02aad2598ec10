package service

import (
	"net/http"
	"sync"

	"github.com/litvinov-da/library/clients"
	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/internal/jsonlog"
	"github.com/litvinov-da/library/internal/mailer"
	"github.com/litvinov-da/library/repository"
)

// Service groups the business operations of the catalog.
type Service interface {
	catalog
	genres
	authors
	books
	bookInstances
	users
	tokens
}

// sender delivers templated email.
type sender interface {
	Send(recipient, templateFile string, data interface{}) error
}

// service defines the service layer.
type service struct {
	config     config.Config
	wg         *sync.WaitGroup
	logger     *jsonlog.Logger
	repo       repository.Repository
	mailer     sender
	storage    objectStorage
	httpClient *http.Client
}

// New creates a new instance of Service. Background work is tracked on wg.
// Cover uploads are disabled when no S3 bucket is configured.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	s := &service{
		config:     cfg,
		wg:         wg,
		logger:     logger,
		repo:       repo,
		mailer:     mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		httpClient: clients.NewHTTPClient(),
	}
	if cfg.S3.Bucket != "" {
		storage, err := clients.NewS3Storage(cfg)
		if err != nil {
			logger.PrintError(err, map[string]string{"component": "s3"})
		} else {
			s.storage = storage
		}
	}
	return s
}
