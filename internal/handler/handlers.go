package handler

import (
	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/handler/http"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/service"
	"github.com/MKhiriev/go-topologic/internal/spa"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. dirs locates the browser
// build of every model.
func NewHandlers(services *service.Services, dirs spa.DirResolver, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	browser := spa.NewHandler(dirs, spa.NewRouter(), logger)

	return &Handlers{
		HTTP: http.NewHandler(services, browser, cfg, logger),
	}, nil
}
