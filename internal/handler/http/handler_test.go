package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/mock"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	pipeline *mock.MockCapturePipeline
	memos    *mock.MockMemoService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, maxUploadBytes int64) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testServices{
		pipeline: mock.NewMockCapturePipeline(ctrl),
		memos:    mock.NewMockMemoService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		CapturePipeline: m.pipeline,
		MemoService:     m.memos,
		AppInfoService:  m.appInfo,
	}
	return NewHandler(services, config.Server{MaxUploadBytes: maxUploadBytes}, logger.Nop()), m
}

// ─────────────────────────────────────────────
// routes
// ─────────────────────────────────────────────

func TestInit_RegistersRoutes(t *testing.T) {
	h, m := newTestHandler(t, 0)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	m.memos.EXPECT().ListByTranscription(gomock.Any(), "tr-1").Return([]models.Memo{}, nil).AnyTimes()
	router := h.Init()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodGet, "/api/transcriptions/tr-1/memos", http.StatusOK},
		{http.MethodGet, "/debug/vars", http.StatusOK},
		{http.MethodGet, "/api/nonexistent", http.StatusNotFound},
		{http.MethodPost, "/api/version", http.StatusNotFound},
		{http.MethodGet, "/api/captures", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_DebugVarsExposesCounters(t *testing.T) {
	h, _ := newTestHandler(t, 0)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"planner_skipped"`)
}

// ─────────────────────────────────────────────
// POST /api/captures
// ─────────────────────────────────────────────

func TestCreateCapture_JSON(t *testing.T) {
	h, m := newTestHandler(t, 1<<20)
	want := models.CaptureRequest{
		CaptureMetadata: models.CaptureMetadata{Username: "ann", Source: "ios", InputType: models.InputAudio},
		AudioPayload:    []byte("RIFF"),
		ContentType:     "audio/wav",
	}
	result := models.CaptureResult{
		Receipt:         models.CaptureReceipt{Username: "ann", RequestID: "req-1"},
		TranscriptionID: "tr-1",
		Memos:           []models.Memo{},
		Tasks:           []models.EnrichmentTask{},
		Jobs:            []models.QueueJob{},
	}
	m.pipeline.EXPECT().Process(gomock.Any(), want).Return(result, nil)

	body, err := json.Marshal(want)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/captures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got models.CaptureResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "tr-1", got.TranscriptionID)
	assert.Equal(t, "req-1", got.Receipt.RequestID)
}

func multipartBody(t *testing.T, fields map[string]string, payload []byte, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if payload != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="payload"; filename="note.m4a"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateCapture_Multipart(t *testing.T) {
	h, m := newTestHandler(t, 1<<20)
	body, contentType := multipartBody(t, map[string]string{
		"username":          "ann",
		"source":            "shortcut",
		"inputType":         "Audio",
		"expectedMemoCount": "2",
	}, []byte{0x00, 0x01, 0x02}, "audio/mp4")

	m.pipeline.EXPECT().Process(gomock.Any(), models.CaptureRequest{
		CaptureMetadata:   models.CaptureMetadata{Username: "ann", Source: "shortcut", InputType: models.InputAudio},
		AudioPayload:      []byte{0x00, 0x01, 0x02},
		OriginalFilename:  "note.m4a",
		ContentType:       "audio/mp4",
		ExpectedMemoCount: 2,
	}).Return(models.CaptureResult{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/captures", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCapture_RejectedBeforePipeline(t *testing.T) {
	tests := []struct {
		name        string
		body        func(t *testing.T) (*bytes.Buffer, string)
		maxBytes    int64
		wantStatus  int
		wantInError string
	}{
		{
			name: "malformed json",
			body: func(*testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(`{"username": `), "application/json"
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "multipart audio without payload part",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, map[string]string{"username": "ann", "inputType": "audio"}, nil, "")
			},
			wantStatus:  http.StatusBadRequest,
			wantInError: ErrMissingPayloadPart.Error(),
		},
		{
			name: "multipart bad expected count",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, map[string]string{"username": "ann", "inputType": "text", "expectedMemoCount": "two"}, nil, "")
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "plain text body",
			body: func(*testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString("buy milk"), "text/plain"
			},
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name: "body over the upload limit",
			body: func(*testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(fmt.Sprintf(`{"transcript": %q}`, strings.Repeat("a", 256))), "application/json"
			},
			maxBytes:   64,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, tt.maxBytes)
			m.pipeline.EXPECT().Process(gomock.Any(), gomock.Any()).Times(0)

			body, contentType := tt.body(t)
			req := httptest.NewRequest(http.MethodPost, "/api/captures", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tt.wantInError != "" {
				assert.Contains(t, resp.Error, tt.wantInError)
			}
		})
	}
}

func TestCreateCapture_PipelineErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: fmt.Errorf("%w: username is required", service.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "provider", err: fmt.Errorf("%w: whisper-1: timeout", service.ErrProvider), wantStatus: http.StatusBadGateway},
		{name: "storage", err: fmt.Errorf("%w: database is locked", service.ErrStorage), wantStatus: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, 0)
			events := []models.PipelineEvent{{Stage: models.StageFailed, Message: tt.err.Error()}}
			m.pipeline.EXPECT().Process(gomock.Any(), gomock.Any()).Return(models.CaptureResult{Events: events}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/captures", strings.NewReader(`{"username":"ann","inputType":"text","transcript":"hi"}`))
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.err.Error(), resp.Error)
			require.Len(t, resp.Events, 1)
			assert.Equal(t, models.StageFailed, resp.Events[0].Stage)
		})
	}
}

func TestCreateCapture_RequestIDHeaderAndTraceID(t *testing.T) {
	h, m := newTestHandler(t, 0)
	m.pipeline.EXPECT().
		Process(gomock.Cond(func(ctx context.Context) bool {
			id, ok := utils.GetRequestIDFromContext(ctx)
			return ok && id == "client-req-7"
		}), gomock.Any()).
		Return(models.CaptureResult{}, service.ErrValidation)

	req := httptest.NewRequest(http.MethodPost, "/api/captures", strings.NewReader(`{"username":"ann"}`))
	req.Header.Set(requestIDHeader, "client-req-7")
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "trace-42", resp.TraceID)
}

// ─────────────────────────────────────────────
// GET /api/transcriptions/{id}/memos
// ─────────────────────────────────────────────

func TestListMemos(t *testing.T) {
	h, m := newTestHandler(t, 0)
	memos := []models.Memo{{ID: "m-1", TranscriptionID: "tr-9", Category: models.CategoryIdea, Tags: []string{}}}
	m.memos.EXPECT().ListByTranscription(gomock.Any(), "tr-9").Return(memos, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions/tr-9/memos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Memo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "m-1", got[0].ID)
}

func TestListMemos_StorageError(t *testing.T) {
	h, m := newTestHandler(t, 0)
	m.memos.EXPECT().ListByTranscription(gomock.Any(), "tr-9").Return(nil, service.ErrStorage)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions/tr-9/memos", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t, 0)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}
