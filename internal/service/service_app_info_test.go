package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/mock"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// AppInfoService
// ─────────────────────────────────────────────

func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "release", version: "1.4.0"},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42"},
		{name: "missing version", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func testStorages(ctrl *gomock.Controller) *store.Storages {
	return &store.Storages{
		TranscriptionRepository: mock.NewMockTranscriptionRepository(ctrl),
		MemoRepository:          mock.NewMockMemoRepository(ctrl),
		EnrichmentRepository:    mock.NewMockEnrichmentRepository(ctrl),
		QueueJobRepository:      mock.NewMockQueueJobRepository(ctrl),
	}
}

func testProviders(ctrl *gomock.Controller) *adapter.Providers {
	return &adapter.Providers{
		Model:        mock.NewMockModelProvider(ctrl),
		Movies:       mock.NewMockMediaResolver(ctrl),
		Games:        mock.NewMockMediaResolver(ctrl),
		Encyclopedia: mock.NewMockMediaResolver(ctrl),
	}
}

func TestNewServices(t *testing.T) {
	tests := []struct {
		name    string
		app     config.App
		wantErr error
	}{
		{name: "immediate dispatch", app: config.App{Version: "1.0.0", DispatchMode: config.DispatchImmediate}},
		{name: "log dispatch", app: config.App{Version: "1.0.0", DispatchMode: config.DispatchLog}},
		{name: "unknown dispatch mode", app: config.App{Version: "1.0.0", DispatchMode: "kafka"}, wantErr: ErrUnknownDispatchMode},
		{name: "missing version", app: config.App{DispatchMode: config.DispatchLog}, wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cfg := config.StructuredConfig{App: tt.app}

			services, err := NewServices(testStorages(ctrl), testProviders(ctrl), cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, services)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, services.CapturePipeline)
			assert.NotNil(t, services.MemoService)
			assert.NotNil(t, services.QueueProcessor)
			assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
		})
	}
}
