package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-exam-drafts/internal/app"
	"github.com/MKhiriev/go-exam-drafts/internal/service"
	"github.com/MKhiriev/go-exam-drafts/internal/store"
	"github.com/MKhiriev/go-exam-drafts/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationNoUserID:      http.StatusUnauthorized,

	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrFieldTooLong:    http.StatusRequestEntityTooLarge,

	store.ErrDraftNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

// statusFromError picks the most specific status: a too long field is also
// invalid data, but must be reported as 413.
func statusFromError(err error) int {
	if errors.Is(err, validators.ErrFieldTooLong) {
		return http.StatusRequestEntityTooLarge
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status of err. Details of server-side
// failures stay in the log.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, app.MsgInternalServerError, status)
		return
	}
	http.Error(w, err.Error(), status)
}
