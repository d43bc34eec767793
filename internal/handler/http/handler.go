package http

import (
	"time"

	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/service"
	"github.com/MKhiriev/go-topologic/internal/spa"
)

type Handler struct {
	services *service.Services
	browser  *spa.Handler

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, browser *spa.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		browser:        browser,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
