package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	requestIDHeader    = "X-Request-ID"
	payloadPart        = "payload"
	multipartMaxMemory = 8 << 20
)

func (h *Handler) createCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	if id := r.Header.Get(requestIDHeader); id != "" {
		ctx = utils.WithRequestID(ctx, id)
	}

	req, err := decodeCaptureRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCapture").Msg("invalid capture request body")
		writeError(w, r, err, nil)
		return
	}

	result, err := h.services.CapturePipeline.Process(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.createCapture").
			Str("input_type", string(req.InputType)).
			Msg("capture failed")
		writeError(w, r, err, result.Events)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createCapture").Msg("error writing response")
	}
}

// decodeCaptureRequest reads a JSON body, or a multipart form whose fields
// mirror the JSON keys and whose binary input sits in the "payload" part.
func decodeCaptureRequest(r *http.Request) (models.CaptureRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil && r.Header.Get("Content-Type") != "" {
		return models.CaptureRequest{}, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
	}

	switch mediaType {
	case "", "application/json":
		var req models.CaptureRequest
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.CaptureRequest{}, fmt.Errorf("%w: json body: %w", ErrInvalidFormField, err)
		}
		return req, nil
	case "multipart/form-data":
		return decodeMultipartCapture(r)
	}
	return models.CaptureRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
}

func decodeMultipartCapture(r *http.Request) (models.CaptureRequest, error) {
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		return models.CaptureRequest{}, fmt.Errorf("%w: %w", ErrInvalidFormField, err)
	}

	req := models.CaptureRequest{
		CaptureMetadata: models.CaptureMetadata{
			Username:  r.FormValue("username"),
			Source:    r.FormValue("source"),
			DeviceID:  r.FormValue("deviceId"),
			InputType: models.InputType(strings.ToLower(strings.TrimSpace(r.FormValue("inputType")))),
			RequestID: r.FormValue("requestId"),
		},
		Transcript:       r.FormValue("transcript"),
		OriginalFilename: r.FormValue("originalFilename"),
		ContentType:      r.FormValue("contentType"),
	}

	if raw := strings.TrimSpace(r.FormValue("expectedMemoCount")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.CaptureRequest{}, fmt.Errorf("%w: expectedMemoCount: %w", ErrInvalidFormField, err)
		}
		req.ExpectedMemoCount = n
	}

	if req.InputType != models.InputAudio && req.InputType != models.InputImage {
		return req, nil
	}

	file, header, err := r.FormFile(payloadPart)
	if err != nil {
		return models.CaptureRequest{}, fmt.Errorf("%w: %w", ErrMissingPayloadPart, err)
	}
	defer file.Close()

	data, err := readPart(file)
	if err != nil {
		return models.CaptureRequest{}, err
	}
	if req.InputType == models.InputAudio {
		req.AudioPayload = data
	} else {
		req.ImagePayload = data
	}

	if req.OriginalFilename == "" {
		req.OriginalFilename = header.Filename
	}
	if req.ContentType == "" {
		req.ContentType = header.Header.Get("Content-Type")
	}
	return req, nil
}

func readPart(file multipart.File) ([]byte, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrInvalidFormField, err)
	}
	return data, nil
}
