// Package api serves the lemonade stand over HTTP: player and save CRUD,
// a leaderboard, and one endpoint per in-game action. Every action loads
// the save, applies the change, and writes the document back in full.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/game"
	"github.com/lemonworks/lemonstand/internal/persistence"
	"github.com/lemonworks/lemonstand/internal/recipe"
	"github.com/lemonworks/lemonstand/internal/sale"
	"github.com/lemonworks/lemonstand/internal/traffic"
)

// Server exposes the game over HTTP.
type Server struct {
	DB   *persistence.DB
	Addr string

	// NewSource supplies randomness per action. Defaults to crypto-backed
	// entropy; tests inject seeded sources.
	NewSource func() entropy.Source
}

func (s *Server) source() entropy.Source {
	if s.NewSource != nil {
		return s.NewSource()
	}
	return entropy.System{}
}

// Router assembles the chi routing tree.
func (s *Server) Router() http.Handler {
	limiter := NewRateLimiter(60, time.Minute)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/players", s.handleCreatePlayer)
		r.Get("/players/{playerID}", s.handleGetPlayer)
		r.Get("/players/{playerID}/games", s.handleListGames)

		r.Post("/games", s.handleCreateGame)
		r.Route("/games/{gameID}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Put("/", s.handleSaveGame)
			r.Delete("/", s.handleDeleteGame)

			r.Get("/forecast", s.handleForecast)
			r.Get("/events", s.handleUpcomingEvents)

			r.Post("/shop", s.gameAction(s.actionShop))
			r.Post("/upgrades", s.gameAction(s.actionUpgrade))
			r.Post("/permits", s.gameAction(s.actionPermit))
			r.Post("/kitchen/mix", s.gameAction(s.actionMix))
			r.Post("/kitchen/cider", s.gameAction(s.actionCider))
			r.Post("/kitchen/taste", s.gameAction(s.actionTaste))
			r.Post("/kitchen/adjust", s.gameAction(s.actionAdjust))
			r.Post("/kitchen/combine", s.gameAction(s.actionCombine))
			r.Post("/kitchen/auto", s.gameAction(s.actionAutoRecipe))
			r.Post("/sell", s.gameAction(s.actionSell))
			r.Post("/day/advance", s.gameAction(s.actionAdvanceDay))
			r.Post("/day/shutdown", s.gameAction(s.actionShutdown))
			r.Post("/bank/transfer", s.gameAction(s.actionTransferTips))
			r.Post("/bank/withdraw", s.gameAction(s.actionWithdraw))
		})

		r.With(limiter.Middleware).Get("/leaderboard", s.handleLeaderboard)
	})

	return r
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	slog.Info("HTTP API starting", "addr", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps domain rejections to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, persistence.ErrNotFound), errors.Is(err, game.ErrBatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, game.ErrInsufficientInventory),
		errors.Is(err, game.ErrNoContainer),
		errors.Is(err, game.ErrCapacityExceeded),
		errors.Is(err, game.ErrInvalidRecipe),
		errors.Is(err, game.ErrNotEnoughToTaste),
		errors.Is(err, game.ErrMixedContainerTypes),
		errors.Is(err, game.ErrContainerWornOut),
		errors.Is(err, game.ErrTooFewBatches),
		errors.Is(err, game.ErrUpgradeRequired),
		errors.Is(err, game.ErrNotAvailableYet),
		errors.Is(err, game.ErrWeeklyLimit),
		errors.Is(err, game.ErrAlreadyOwned),
		errors.Is(err, game.ErrJuicerProgression),
		errors.Is(err, game.ErrUnknownItem),
		errors.Is(err, game.ErrPermitRequired),
		errors.Is(err, game.ErrLocationLimit),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, sale.ErrNoBatches),
		errors.Is(err, sale.ErrInvalidPrice):
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil || req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	p, err := s.DB.CreatePlayer(req.Name)
	if err != nil {
		http.Error(w, "name already taken", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, p)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := s.DB.GetPlayer(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	recs, err := s.DB.ListGames(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if recs == nil {
		recs = []persistence.SaveRecord{}
	}
	writeJSON(w, recs)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if err := decode(r, &req); err != nil || req.PlayerID == "" {
		http.Error(w, "player_id is required", http.StatusBadRequest)
		return
	}

	state := game.New(s.source())
	rec, err := s.DB.CreateGame(req.PlayerID, state)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"save": rec, "state": state})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	state, err := s.DB.LoadGame(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, state)
}

func (s *Server) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	var state game.State
	if err := decode(r, &state); err != nil {
		http.Error(w, "invalid game document", http.StatusBadRequest)
		return
	}
	if err := s.DB.SaveGame(chi.URLParam(r, "gameID"), &state); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.DeleteGame(chi.URLParam(r, "gameID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	rows, err := s.DB.Leaderboard(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []persistence.LeaderboardRow{}
	}
	writeJSON(w, rows)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	state, err := s.DB.LoadGame(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	days := 5
	if d := r.URL.Query().Get("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 && n <= 14 {
			days = n
		}
	}
	writeJSON(w, state.Forecast(days))
}

func (s *Server) handleUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	state, err := s.DB.LoadGame(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, state.UpcomingEvents())
}

// actionFunc applies one request against a loaded game document and
// returns the response payload.
type actionFunc func(state *game.State, r *http.Request) (any, error)

// gameAction wraps an action with the load-apply-save cycle.
func (s *Server) gameAction(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		state, err := s.DB.LoadGame(gameID)
		if err != nil {
			writeError(w, err)
			return
		}

		payload, err := fn(state, r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := s.DB.SaveGame(gameID, state); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]any{"result": payload, "state": state})
	}
}

func (s *Server) actionShop(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Cart map[string]int `json:"cart"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}
	return nil, state.BuyItems(req.Cart)
}

func (s *Server) actionUpgrade(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Upgrade string `json:"upgrade"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrUnknownItem
	}
	return nil, state.BuyUpgrade(req.Upgrade)
}

func (s *Server) actionPermit(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Location traffic.Location `json:"location"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrUnknownItem
	}
	return nil, state.BuyPermit(req.Location)
}

func (s *Server) actionMix(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Lemons     recipe.LemonCounts   `json:"lemons"`
		SugarGrams float64              `json:"sugar_grams"`
		WaterOz    float64              `json:"water_oz"`
		Container  recipe.ContainerType `json:"container"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidRecipe
	}
	return state.MixLemonade(req.Lemons, req.SugarGrams, req.WaterOz, req.Container)
}

func (s *Server) actionCider(state *game.State, r *http.Request) (any, error) {
	var req struct {
		ApplesLbs float64              `json:"apples_lbs"`
		Container recipe.ContainerType `json:"container"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}
	return state.BrewCider(req.ApplesLbs, req.Container)
}

func (s *Server) actionTaste(state *game.State, r *http.Request) (any, error) {
	var req struct {
		BatchID string `json:"batch_id"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrBatchNotFound
	}
	notes, err := state.TasteBatch(req.BatchID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"notes": notes}, nil
}

func (s *Server) actionAdjust(state *game.State, r *http.Request) (any, error) {
	var req struct {
		BatchID    string `json:"batch_id"`
		Adjustment string `json:"adjustment"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrBatchNotFound
	}

	var adj game.Adjustment
	switch req.Adjustment {
	case "water":
		adj = game.AddWater
	case "lemon":
		adj = game.AddLemon
	case "sugar":
		adj = game.AddSugar
	default:
		return nil, game.ErrInvalidAmount
	}
	return state.AdjustBatch(req.BatchID, adj)
}

func (s *Server) actionCombine(state *game.State, r *http.Request) (any, error) {
	var req struct {
		BatchIDs []string `json:"batch_ids"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrTooFewBatches
	}
	return state.CombineBatches(req.BatchIDs)
}

func (s *Server) actionAutoRecipe(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Container recipe.ContainerType `json:"container"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}
	return state.PlanAutoRecipe(req.Container)
}

func (s *Server) actionSell(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Location traffic.Location `json:"location"`
		BatchIDs []string         `json:"batch_ids"`
		Prices   sale.Prices      `json:"prices"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}

	sess, err := state.StartSale(s.source(), req.Location, req.BatchIDs, req.Prices)
	if err != nil {
		return nil, err
	}
	res := sess.Run()
	state.ApplySale(req.Location, res)
	return res, nil
}

func (s *Server) actionAdvanceDay(state *game.State, r *http.Request) (any, error) {
	state.AdvanceDay()
	return nil, nil
}

func (s *Server) actionShutdown(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Days int `json:"days"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}
	return nil, state.Shutdown(req.Days)
}

func (s *Server) actionTransferTips(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}
	return nil, state.TransferTips(req.Amount)
}

func (s *Server) actionWithdraw(state *game.State, r *http.Request) (any, error) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		return nil, game.ErrInvalidAmount
	}
	return nil, state.WithdrawSavings(req.Amount)
}
