package service

import (
	"fmt"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
)

type Services struct {
	CapturePipeline CapturePipeline
	MemoService     MemoService
	QueueProcessor  QueueProcessor
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, providers *adapter.Providers, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	router := NewModelRouter(cfg.Providers.LLM)
	memos := NewMemoService(storages.TranscriptionRepository, storages.MemoRepository, logger)

	runner := NewEnrichmentRunner(storages.EnrichmentRepository, logger,
		NewMediaHandler(providers.Movies, providers.Games, providers.Encyclopedia, logger),
		NewReminderHandler(logger),
		NewTodoHandler(logger),
		NewShoppingHandler(logger),
		NewJournalHandler(logger),
		NewTarotHandler(logger),
		NewIdeaHandler(logger),
	)

	dispatcher, err := NewQueueDispatcher(cfg, runner, storages.QueueJobRepository, logger)
	if err != nil {
		return nil, err
	}

	pipeline := NewCapturePipeline(
		NewCaptureService(logger),
		NewTranscriptionService(providers.Model, router, logger),
		NewUnderstandingService(providers.Model, router, logger),
		memos,
		NewEnrichmentPlanner(logger),
		dispatcher,
		logger,
	)

	return &Services{
		CapturePipeline: pipeline,
		MemoService:     memos,
		QueueProcessor:  NewQueueProcessor(storages.QueueJobRepository, runner, cfg.Workers.QueueBatchSize, cfg.Workers.EnrichmentConcurrency, logger),
		AppInfoService:  appInfo,
	}, nil
}
