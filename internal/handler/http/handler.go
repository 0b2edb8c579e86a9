package http

import (
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
)

type Handler struct {
	services       *service.Services
	maxUploadBytes int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().
		Int64("max_upload_bytes", cfg.MaxUploadBytes).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: cfg.MaxUploadBytes,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
