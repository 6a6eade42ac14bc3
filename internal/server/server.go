// Package server exposes the read surface over HTTP: the latest bundle,
// cheap projections of it, and a rate-limited refresh that re-runs the
// pipeline.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/sundial/wellness/internal/aggregate"
	"github.com/sundial/wellness/internal/types"
)

// SnapshotProvider supplies the input for a pipeline run. The demo CLI
// wires a generator here; a real deployment wires its data integration.
type SnapshotProvider func(ctx context.Context) (*types.Snapshot, error)

// BundleSaver is the optional persistence hook; satisfied by the sqlite
// store.
type BundleSaver interface {
	SaveBundle(ctx context.Context, bundle *types.WellnessBundle) error
}

// Server serves the latest wellness bundle and refreshes it on demand.
type Server struct {
	engine   *aggregate.Engine
	provider SnapshotProvider
	store    BundleSaver // may be nil
	limiter  *rate.Limiter
	logger   *slog.Logger

	mu     sync.RWMutex
	bundle *types.WellnessBundle
}

// Options tune the server surface.
type Options struct {
	// RefreshPerMinute bounds POST /refresh; defaults to 2.
	RefreshPerMinute float64

	// Store, when set, persists each refreshed bundle.
	Store BundleSaver

	Logger *slog.Logger
}

// New creates a server and runs the pipeline once so every endpoint has
// a bundle to serve from the start.
func New(ctx context.Context, engine *aggregate.Engine, provider SnapshotProvider, opts Options) (*Server, error) {
	perMin := opts.RefreshPerMinute
	if perMin <= 0 {
		perMin = 2
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:   engine,
		provider: provider,
		store:    opts.Store,
		limiter:  rate.NewLimiter(rate.Limit(perMin/60), 2),
		logger:   logger,
	}

	if _, err := s.refresh(ctx); err != nil {
		return nil, fmt.Errorf("initial pipeline run: %w", err)
	}
	return s, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /insights", s.handleInsights)
	mux.HandleFunc("GET /wellness-score", s.handleWellnessScore)
	mux.HandleFunc("GET /recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /refresh", s.handleRefresh)
	return mux
}

// refresh re-runs the pipeline and swaps in the new bundle.
func (s *Server) refresh(ctx context.Context) (*types.WellnessBundle, error) {
	snap, err := s.provider(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	bundle, err := s.engine.Run(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("running pipeline: %w", err)
	}

	if s.store != nil {
		if err := s.store.SaveBundle(ctx, bundle); err != nil {
			// Persistence is best-effort on the serving path.
			s.logger.Warn("saving bundle failed", "run_id", bundle.RunID, "error", err)
		}
	}

	s.mu.Lock()
	s.bundle = bundle
	s.mu.Unlock()
	return bundle, nil
}

func (s *Server) latest() *types.WellnessBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.latest())
}

func (s *Server) handleWellnessScore(w http.ResponseWriter, r *http.Request) {
	b := s.latest()
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":         b.RunID,
		"generated_at":   b.GeneratedAt.Format(time.RFC3339),
		"wellness_score": b.WellnessScore,
		"trends":         b.Trends,
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	b := s.latest()
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":                   b.RunID,
		"priority_recommendations": b.PriorityRecommendations,
		"action_plan":              b.ActionPlan,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error": "refresh rate limit exceeded, try again later",
		})
		return
	}

	bundle, err := s.refresh(r.Context())
	if err != nil {
		s.logger.Error("refresh failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":         bundle.RunID,
		"wellness_score": bundle.WellnessScore,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
