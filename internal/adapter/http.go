package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpCaptureAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCaptureAdapter constructs the HTTP implementation of
// [CaptureAdapter]. Requests are retried up to adapterCfg.MaxAttempts in
// total with a fixed adapterCfg.RetryDelay between attempts. Only network
// errors and 5xx responses are retried.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCaptureAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CaptureAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: adapter http address: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)

	attempts := max(adapterCfg.MaxAttempts, 1)
	delay := adapterCfg.RetryDelay
	client.
		SetRetryCount(attempts-1).
		SetRetryWaitTime(delay).
		SetRetryMaxWaitTime(delay).
		SetRetryAfter(func(*resty.Client, *resty.Response) (time.Duration, error) {
			return delay, nil
		}).
		AddRetryCondition(shouldRetry).
		AddRetryHook(func(resp *resty.Response, err error) {
			ev := logger.Warn().Str("func", "httpCaptureAdapter.retry")
			if resp != nil {
				ev = ev.Int("status", resp.StatusCode()).Int("attempt", resp.Request.Attempt)
			}
			ev.AnErr("cause", err).Msg("retrying capture upload")
		})

	return &httpCaptureAdapter{client: client, logger: logger}, nil
}

// shouldRetry retries network failures and server errors; client errors
// are final.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Submit implements [CaptureAdapter]. It POSTs req as JSON to
// POST /api/captures; binary payloads travel base64-encoded in the body so
// every retry resends them intact.
func (h *httpCaptureAdapter) Submit(ctx context.Context, req models.CaptureRequest) (models.CaptureResult, error) {
	var result models.CaptureResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/captures")
	if err != nil {
		return models.CaptureResult{}, fmt.Errorf("submit capture request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpCaptureAdapter.Submit").Int("attempts", resp.Request.Attempt).Msg("capture rejected")
		return models.CaptureResult{}, err
	}

	return result, nil
}

// Version implements [CaptureAdapter]. It GETs /api/version and returns the
// trimmed plain-text body.
func (h *httpCaptureAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
