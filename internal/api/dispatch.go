package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sanverite/tactical-console/internal/assets"
	"github.com/sanverite/tactical-console/internal/core"
)

// dispatch answers one request: an exact route match wins, anything else
// is looked up in the asset tree, and a miss is a 404. Methods are not
// restricted.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	if h, ok := s.routes[r.URL.Path]; ok {
		h(w, r)
		return
	}
	s.serveAsset(w, r)
}

// handleStatus returns the current device status.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, r, FromStatus(s.p.Status.Status()))
}

// handleTelemetry serves the canonical telemetry variant.
func (s *Server) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	if s.p.Canonical == core.VariantPosition {
		s.handlePosition(w, r)
		return
	}
	s.handleOrientation(w, r)
}

// handleOrientation returns an IMU snapshot.
func (s *Server) handleOrientation(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, r, FromOrientation(s.p.Orientation.Orientation()))
}

// handlePosition returns a GPS snapshot.
func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, r, FromPosition(s.p.Position.Position()))
}

// handleHealthz is a simple liveness endpoint.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, r, HealthResponse{
		Status:    "ok",
		Timestamp: s.ctx.Now().UnixMilli(),
	})
}

// serveAsset streams a file from the asset tree. Lookup failures of any
// kind are a 404; a copy error after the header is sent is only logged.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	a, err := s.assets.Open(r.URL.Path)
	if err != nil {
		if !errors.Is(err, assets.ErrNotFound) {
			s.logger.Warn("asset lookup failed", "path", r.URL.Path, "error", err)
		} else {
			s.logger.Debug("asset not found", "path", r.URL.Path, "error", err)
		}
		notFound(w)
		return
	}
	defer a.Close()

	h := w.Header()
	h.Set("Content-Type", a.ContentType)
	h.Set("Content-Length", strconv.FormatInt(a.Size, 10))
	if !a.ModTime.IsZero() {
		h.Set("Last-Modified", a.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, a); err != nil {
		s.logger.Warn("asset copy failed", "path", r.URL.Path, "error", err)
	}
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
