package http

import (
	"net/http"

	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listMemos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	transcriptionID := chi.URLParam(r, "id")

	memos, err := h.services.MemoService.ListByTranscription(r.Context(), transcriptionID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMemos").Str("transcription_id", transcriptionID).Msg("error listing memos")
		writeError(w, r, err, nil)
		return
	}

	if _, err = utils.WriteJSON(w, memos, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listMemos").Msg("error writing response")
	}
}
