package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrProvider:   http.StatusBadGateway,
	service.ErrStorage:    http.StatusInternalServerError,

	ErrMissingPayloadPart:     http.StatusBadRequest,
	ErrInvalidFormField:       http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error   string                 `json:"error"`
	TraceID string                 `json:"traceId,omitempty"`
	Events  []models.PipelineEvent `json:"events,omitempty"`
}

// writeError answers with the status mapped from err and the request trace id.
func writeError(w http.ResponseWriter, r *http.Request, err error, events []models.PipelineEvent) {
	resp := errorResponse{Error: err.Error(), Events: events}
	resp.TraceID, _ = utils.GetTraceIDFromContext(r.Context())

	if _, werr := utils.WriteJSON(w, resp, statusFromError(err)); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "writeError").Msg("error writing error response")
	}
}
