package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-topologic/internal/spa"
)

func (h *Handler) redirectToBrowser(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, spa.Base(chi.URLParam(r, "table")), http.StatusMovedPermanently)
}

// serveBrowser hands the still-escaped path below /topologic/{table} to the
// browser handler so that escaped slashes inside route parameters survive.
func (h *Handler) serveBrowser(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	rest := strings.TrimPrefix(r.URL.EscapedPath(), spa.BasePrefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[i:]
	} else {
		rest = "/"
	}

	h.browser.ServeModel(w, r, table, rest)
}
