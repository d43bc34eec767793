package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/service"
	"github.com/MKhiriev/go-topologic/internal/store"
	"github.com/MKhiriev/go-topologic/internal/validators"
)

// errorStatusMap is checked in order; the first sentinel matched by
// errors.Is decides the status.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrMissingTableParam, http.StatusBadRequest},
	{ErrMissingPathParam, http.StatusBadRequest},

	{store.ErrInvalidTableName, http.StatusBadRequest},
	{store.ErrModelNotFound, http.StatusNotFound},
	{service.ErrConfigValueNotFound, http.StatusNotFound},

	{validators.ErrModelConfigInvalid, http.StatusUnprocessableEntity},
	{service.ErrMissingConfigSection, http.StatusUnprocessableEntity},
	{service.ErrMissingConfigKey, http.StatusUnprocessableEntity},
	{service.ErrInvalidConfigValue, http.StatusUnprocessableEntity},

	{store.ErrReadingModelFile, http.StatusInternalServerError},
	{store.ErrDecodingAppConfig, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Client errors
// carry the error text, server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
