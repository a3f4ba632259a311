package http

import (
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/metrics"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher signs response bodies; nil disables signing
	hasher  *utils.Hasher
	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewHandler creates the ledger HTTP handler. An empty hashKey disables the
// HashSHA256 response header; m may be nil.
func NewHandler(services *service.Services, hashKey string, m *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}

	logger.Info().Bool("signed_responses", h.hasher != nil).Msg("http handler created")
	return h
}
