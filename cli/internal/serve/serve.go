// Package serve serves the rendered test harness and the files next to it
// over HTTP.
package serve

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
	".map":  "application/json",
}

// Handler serves files below Root. A request for "/" serves Index.
type Handler struct {
	Fs    afero.Fs
	Root  string
	Index string
	// Log receives one line per request; nil disables request logging
	Log io.Writer
}

// NewHandler creates a handler for the directory root.
func NewHandler(fsys afero.Fs, root, index string, log io.Writer) *Handler {
	return &Handler{Fs: fsys, Root: root, Index: index, Log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)
	if urlPath == "/" {
		urlPath = "/" + h.Index
	}

	content, err := afero.ReadFile(h.Fs, filepath.Join(h.Root, filepath.FromSlash(urlPath)))
	switch {
	case err == nil:
		contentType, ok := mimeTypes[path.Ext(urlPath)]
		if !ok {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
		h.logf("%d %s %s", http.StatusOK, r.Method, r.URL.Path)
	case errors.Is(err, fs.ErrNotExist):
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Not Found")
		h.logf("%d %s %s", http.StatusNotFound, r.Method, r.URL.Path)
	default:
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "Server Error")
		h.logf("%d %s %s %v", http.StatusInternalServerError, r.Method, r.URL.Path, err)
	}
}

func (h *Handler) logf(format string, args ...any) {
	if h.Log == nil {
		return
	}
	fmt.Fprintf(h.Log, format+"\n", args...)
}

// NewServer returns an http.Server for handler on addr.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
