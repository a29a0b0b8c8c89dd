package server

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/healthwrapped/models"
	"github.com/healthwrapped/templates"
	"go.uber.org/zap"
)

// HTTP handlers
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(templates.Index(slidesPath)).ServeHTTP(w, r)
}

// slidesHandler fetches the snapshot once and answers the slide fragment.
// Any loader failure is logged and answered with 204, which leaves the page
// on its loading indicator.
func (s *Server) slidesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := s.loader.Download(r.Context())
	if err != nil {
		s.logger.Error("Failed to load wrapped data", zap.Error(err))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	slides, err := BuildSlides(data)
	if err != nil {
		s.logger.Error("Failed to build slides", zap.Error(err))
		http.Error(w, "Failed to render slides", http.StatusInternalServerError)
		return
	}
	s.logger.Debug("Slides built", zap.Int("count", len(slides)), zap.Int("year", data.WrappedYear))

	templ.Handler(templates.Slides(slides)).ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// snapshotHandler serves a fixed snapshot in the aggregation service's shape.
func snapshotHandler(snapshot *models.WrappedData, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.Error("Failed to encode snapshot", zap.Error(err))
		}
	}
}
