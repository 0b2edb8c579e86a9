package http

import "net/http"

// withBodyLimit caps the request body at maxUploadBytes. Reads past the limit
// fail with *http.MaxBytesError, which maps to 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxUploadBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		}
		next.ServeHTTP(w, r)
	})
}
