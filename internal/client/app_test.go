package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/mock"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockCaptureAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	captureAdapter := mock.NewMockCaptureAdapter(ctrl)
	var out bytes.Buffer
	return NewApp(captureAdapter, &out, logger.Nop()), captureAdapter, &out
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ─── capture ───

func TestCapture_Text(t *testing.T) {
	app, captureAdapter, out := newTestApp(t)
	captureAdapter.EXPECT().Submit(gomock.Any(), models.CaptureRequest{
		CaptureMetadata: models.CaptureMetadata{Username: "ann", Source: defaultSource, InputType: models.InputText},
		Transcript:      "buy milk and eggs",
	}).Return(models.CaptureResult{TranscriptionID: "tr-1"}, nil)

	err := app.Run(context.Background(), []string{"memo-client", "capture", "--user", "ann", "--text", "buy milk and eggs"})

	require.NoError(t, err)
	var got models.CaptureResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "tr-1", got.TranscriptionID)
}

func TestCapture_Files(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		file        string
		extraArgs   []string
		wantType    models.InputType
		wantContent string
	}{
		{name: "image content type from extension", flag: "--image", file: "receipt.png", wantType: models.InputImage, wantContent: "image/png"},
		{name: "audio with explicit content type", flag: "--audio", file: "note.m4a", extraArgs: []string{"--content-type", "audio/mp4"}, wantType: models.InputAudio, wantContent: "audio/mp4"},
		{name: "unknown extension", flag: "--audio", file: "note.memoraw", wantType: models.InputAudio, wantContent: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, captureAdapter, _ := newTestApp(t)
			payload := []byte{0xCA, 0xFE}
			path := writeTempFile(t, tt.file, payload)

			var submitted models.CaptureRequest
			captureAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req models.CaptureRequest) (models.CaptureResult, error) {
					submitted = req
					return models.CaptureResult{}, nil
				})

			args := append([]string{"memo-client", "capture", "-u", "ann", "--source", "shortcut", "--expected", "2", tt.flag, path}, tt.extraArgs...)
			require.NoError(t, app.Run(context.Background(), args))

			assert.Equal(t, tt.wantType, submitted.InputType)
			assert.Equal(t, payload, submitted.Payload())
			assert.Equal(t, tt.file, submitted.OriginalFilename)
			assert.Equal(t, tt.wantContent, submitted.ContentType)
			assert.Equal(t, "shortcut", submitted.Source)
			assert.Equal(t, 2, submitted.ExpectedMemoCount)
		})
	}
}

func TestCapture_RejectedLocally(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no input", args: []string{"--user", "ann"}, wantErr: ErrNoInput},
		{name: "two inputs", args: []string{"--user", "ann", "--text", "hi", "--audio", "a.m4a"}, wantErr: ErrTooManyInputs},
		{name: "missing user", args: []string{"--text", "hi"}},
		{name: "unreadable file", args: []string{"--user", "ann", "--audio", "/nonexistent/note.m4a"}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, captureAdapter, _ := newTestApp(t)
			captureAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

			err := app.Run(context.Background(), append([]string{"memo-client", "capture"}, tt.args...))

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCapture_SubmitError(t *testing.T) {
	app, captureAdapter, out := newTestApp(t)
	submitErr := errors.New("server unavailable")
	captureAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.CaptureResult{}, submitErr)

	err := app.Run(context.Background(), []string{"memo-client", "capture", "--user", "ann", "--text", "hi"})

	require.ErrorIs(t, err, submitErr)
	assert.Empty(t, out.String())
}

// ─── version ───

func TestVersion(t *testing.T) {
	app, captureAdapter, out := newTestApp(t)
	captureAdapter.EXPECT().Version(gomock.Any()).Return("1.4.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"memo-client", "version"}))
	assert.Equal(t, "1.4.0\n", out.String())
}
