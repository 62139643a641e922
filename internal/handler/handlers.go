package handler

import (
	"github.com/MKhiriev/go-social-hub/internal/config"
	"github.com/MKhiriev/go-social-hub/internal/handler/http"
	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewRequestValidator(), logger),
	}, nil
}
