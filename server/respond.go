package server

import (
	"encoding/json"
	"net/http"
	"time"

	"divgame/experiments/metrics"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// maxBody bounds request payloads; a game state is a few dozen bytes.
const maxBody = 1 << 16

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func toMetricsDTO(m metrics.SearchMetric) metricsDTO {
	return metricsDTO{
		Algorithm:    m.Algorithm,
		Depth:        m.Depth,
		NodesVisited: m.NodesVisited,
		DurationMs:   float64(m.Duration) / float64(time.Millisecond),
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
