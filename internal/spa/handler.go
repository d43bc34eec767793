package spa

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/store"
)

const indexFile = "index.html"

// DirResolver maps a model table to its directory.
type DirResolver interface {
	ModelDir(table string) (string, error)
}

// Handler serves <model dir>/dist of every model.
type Handler struct {
	dirs   DirResolver
	router *Router
	logger *logger.Logger
}

func NewHandler(dirs DirResolver, router *Router, logger *logger.Logger) *Handler {
	if router == nil {
		router = NewRouter()
	}

	return &Handler{
		dirs:   dirs,
		router: router,
		logger: logger,
	}
}

// ServeModel serves escapedPath, the escaped request path below the base of
// table. Existing files are served as immutable assets, known browser routes
// get index.html, everything else is 404.
func (h *Handler) ServeModel(w http.ResponseWriter, r *http.Request, table, escapedPath string) {
	log := logger.FromRequest(r)

	dir, err := h.dirs.ModelDir(table)
	if errors.Is(err, store.ErrInvalidTableName) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*spa.Handler.ServeModel").Msg("error resolving model directory")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	dist := filepath.Join(dir, store.DistDir)

	decoded, err := url.PathUnescape(escapedPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	name := path.Clean("/" + decoded)
	if name != "/" && name != "/"+indexFile {
		if h.serveFile(w, r, dist, name, false) {
			return
		}
	}

	if _, ok := h.router.Match(escapedPath); !ok && name != "/"+indexFile {
		http.NotFound(w, r)
		return
	}

	if !h.serveFile(w, r, dist, "/"+indexFile, true) {
		log.Warn().Str("table", table).Msg("model browser is not built")
		http.NotFound(w, r)
	}
}

// serveFile serves dist+name if it is a regular file and reports whether
// it did.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, dist, name string, isIndex bool) bool {
	f, err := os.Open(filepath.Join(dist, filepath.FromSlash(name)))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	if isIndex {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}

	http.ServeContent(w, r, strings.TrimPrefix(name, "/"), info.ModTime(), f)
	return true
}
