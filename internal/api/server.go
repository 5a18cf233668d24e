// Package api serves a read-only HTTP view of a running episode plus the
// stored episode history. The simulation loop publishes snapshots; the
// handlers never touch the live environment directly.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/persistence"
)

// NPCSummary is the trimmed NPC record exposed over the API.
type NPCSummary struct {
	ID          entity.PersonID `json:"id"`
	Name        string          `json:"name"`
	Personality string          `json:"personality"`
	AgeYears    float64         `json:"age_years"`
	Alive       bool            `json:"alive"`
	Employed    bool            `json:"employed"`
	Married     bool            `json:"married"`
	Happiness   float64         `json:"happiness"`
	NetWorth    float64         `json:"net_worth"`
}

// Snapshot is one published view of a running episode. Person records are
// copied by value so handlers never race the simulation loop.
type Snapshot struct {
	Seed        int64          `json:"seed"`
	Day         int            `json:"day"`
	Season      string         `json:"season"`
	Done        bool           `json:"done"`
	TotalReward float64        `json:"total_reward"`
	Player      entity.Person  `json:"player"`
	NPCs        []NPCSummary   `json:"npcs"`
	Events      []entity.Event `json:"events"`
}

// Server serves episode state over HTTP.
type Server struct {
	Port int
	DB   *persistence.DB // Optional; history endpoints 503 without it.

	mu   sync.RWMutex
	snap *Snapshot
}

// Publish replaces the served snapshot. The simulation loop calls this
// after each step; handlers read the previous snapshot until it lands.
func (s *Server) Publish(snap *Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *Server) snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// History endpoints hit the database; keep casual pollers off it.
	historyLimiter := NewRateLimiter(120, time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/person", s.handlePerson)
	mux.HandleFunc("/api/v1/npcs", s.handleNPCs)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/episodes", RateLimitMiddleware(historyLimiter, s.handleEpisodes))
	mux.HandleFunc("/api/v1/episode/", RateLimitMiddleware(historyLimiter, s.handleEpisodeEvents))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "history", s.DB != nil)

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins. Set
// CORS_ORIGINS to a comma-separated list of extra origins; localhost dev
// servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		http.Error(w, "no episode running", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]any{
		"seed":         snap.Seed,
		"day":          snap.Day,
		"season":       snap.Season,
		"done":         snap.Done,
		"total_reward": snap.TotalReward,
		"alive":        snap.Player.Alive,
		"age_years":    snap.Player.AgeYears(),
		"net_worth":    snap.Player.NetWorth(),
		"goals_done":   len(snap.Player.GoalsDone),
		"npcs":         len(snap.NPCs),
	})
}

func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		http.Error(w, "no episode running", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snap.Player)
}

func (s *Server) handleNPCs(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		http.Error(w, "no episode running", http.StatusServiceUnavailable)
		return
	}

	npcs := snap.NPCs
	if r.URL.Query().Get("alive") == "true" {
		var filtered []NPCSummary
		for _, n := range npcs {
			if n.Alive {
				filtered = append(filtered, n)
			}
		}
		npcs = filtered
	}
	writeJSON(w, npcs)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		http.Error(w, "no episode running", http.StatusServiceUnavailable)
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	events := snap.Events
	if category := r.URL.Query().Get("category"); category != "" {
		var filtered []entity.Event
		for _, e := range events {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	start := 0
	if len(events) > limit {
		start = len(events) - limit
	}
	writeJSON(w, events[start:])
}

func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	rows, err := s.DB.RecentEpisodes(limit)
	if err != nil {
		slog.Error("episode history query failed", "error", err)
		writeJSON(w, []persistence.EpisodeRow{})
		return
	}
	if rows == nil {
		rows = []persistence.EpisodeRow{}
	}
	writeJSON(w, rows)
}

// handleEpisodeEvents serves GET /api/v1/episode/:id/events.
func (s *Server) handleEpisodeEvents(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	parts := strings.Split(r.URL.Path, "/")
	// /api/v1/episode/:id/events → [0]="" [1]="api" [2]="v1" [3]="episode" [4]=id [5]="events"
	if len(parts) < 6 || parts[5] != "events" {
		http.Error(w, "usage: /api/v1/episode/:id/events", http.StatusBadRequest)
		return
	}
	episodeID := parts[4]

	events, err := s.DB.EpisodeEvents(episodeID)
	if err != nil {
		slog.Error("episode events query failed", "error", err, "episode_id", episodeID)
		http.Error(w, "episode not found", http.StatusNotFound)
		return
	}
	writeJSON(w, events)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
