package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"divgame/engine"
	"divgame/game"
	"divgame/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxDepth bounds the search depth a client may request.
const MaxDepth = 12

type Config struct {
	Addr      string
	Depth     int
	Algorithm searcher.Algorithm
	StartMin  int
	StartMax  int
	Seed      uint64
}

// Server answers game requests without keeping sessions: every request
// carries the full state and the client owns the history.
type Server struct {
	cfg       Config
	searchers map[searcher.Algorithm]searcher.Searcher

	mu  sync.Mutex
	rng *rand.Rand
}

func New(cfg Config) *Server {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = searcher.AlgorithmAlphaBeta
	}
	searchers := make(map[searcher.Algorithm]searcher.Searcher, len(searcher.Algorithms))
	for _, a := range searcher.Algorithms {
		s, _ := searcher.New(a)
		searchers[a] = s
	}
	return &Server{
		cfg:       cfg,
		searchers: searchers,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/api/start", s.handleStart)
	r.Post("/api/apply", s.handleApply)
	r.Post("/api/move", s.handleMove)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.Addr).Msg("starting game server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("shutting down game server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type startRequest struct {
	First *game.Player `json:"first"`
}

type applyRequest struct {
	State   game.GameState `json:"state"`
	Divisor game.Move      `json:"divisor"`
}

type applyResponse struct {
	State   game.GameState `json:"state"`
	Message string         `json:"message"`
	Over    bool           `json:"over"`
	Outcome string         `json:"outcome,omitempty"`
}

type moveRequest struct {
	State     game.GameState `json:"state"`
	Algorithm string         `json:"algorithm"`
	Depth     *int           `json:"depth"`
}

type metricsDTO struct {
	Algorithm    string  `json:"algorithm"`
	Depth        int     `json:"depth"`
	NodesVisited int64   `json:"nodesVisited"`
	DurationMs   float64 `json:"durationMs"`
}

type moveResponse struct {
	Result  *searcher.Result `json:"result"`
	Metrics metricsDTO       `json:"metrics"`
	Skip    bool             `json:"skip"`
	Over    bool             `json:"over"`
	Outcome string           `json:"outcome,omitempty"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var payload startRequest
	if err := decode(w, r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	first := game.Human
	if payload.First != nil {
		first = *payload.First
	}

	s.mu.Lock()
	state, err := game.RandomStart(s.rng, s.cfg.StartMin, s.cfg.StartMax, first)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info().Int("number", state.Number).Msgf("%s is starting", state.Turn)
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var payload applyRequest
	if err := decode(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if game.IsTerminal(payload.State) {
		writeError(w, http.StatusBadRequest, "game is over")
		return
	}

	next, err := game.Apply(payload.State, payload.Divisor)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := applyResponse{
		State:   next,
		Message: engine.Entry{Actor: payload.State.Turn, Move: payload.Divisor, State: next}.String(),
		Over:    game.IsTerminal(next),
	}
	if resp.Over {
		resp.Outcome = game.OutcomeOf(next).String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload moveRequest
	if err := decode(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	algorithm := s.cfg.Algorithm
	if payload.Algorithm != "" {
		a, err := searcher.ParseAlgorithm(payload.Algorithm)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		algorithm = a
	}
	depth := s.cfg.Depth
	if payload.Depth != nil {
		depth = *payload.Depth
	}
	switch {
	case depth < 0 || depth > MaxDepth:
		writeError(w, http.StatusBadRequest, "depth out of range")
		return
	case payload.State.Turn != game.Computer:
		writeError(w, http.StatusBadRequest, "not the computer's turn")
		return
	case payload.State.Number <= game.TerminalThreshold:
		writeError(w, http.StatusBadRequest, "game is over")
		return
	}

	result, metric := s.searchers[algorithm].SelectMove(payload.State, depth)
	log.Info().Msgf("AI (%s) visited %d nodes in %s", metric.Algorithm, metric.NodesVisited, metric.Duration)

	resp := moveResponse{Result: result, Metrics: toMetricsDTO(metric)}
	final := payload.State
	if result == nil {
		resp.Skip = game.HasLegalMove(payload.State.Number)
		resp.Over = !resp.Skip
	} else {
		final = result.State
		resp.Over = game.IsTerminal(result.State)
	}
	if resp.Over {
		resp.Outcome = game.OutcomeOf(final).String()
	}
	writeJSON(w, http.StatusOK, resp)
}
