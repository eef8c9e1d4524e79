package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	auth     config.ServerApp
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler creates the REST handler. Requests must carry a bearer token
// only when auth.TokenSignKey is set.
func NewHandler(services *service.Services, auth config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("auth_enabled", auth.TokenSignKey != "").
		Msg("http handler created")

	return &Handler{
		services: services,
		auth:     auth,
		metrics:  newMetrics(prometheus.NewRegistry()),
		logger:   logger,
	}
}

func (h *Handler) authEnabled() bool {
	return h.auth.TokenSignKey != ""
}
