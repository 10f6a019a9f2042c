package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-exam-drafts/internal/app"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
	"github.com/MKhiriev/go-exam-drafts/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the raw request body.
const HashHeader = "HashSHA256"

// checkHash verifies HashHeader against the body when the server has a hash
// key and the client sent the header. Requests without the header pass.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hashFromRequest := r.Header.Get(HashHeader)
		if h.hashKey == "" || hashFromRequest == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.ValidHash(body, hashFromRequest) {
			log.Err(ErrIntegrityCheckFailed).Str("func", "*Handler.checkHash").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
