// internal/httpserver/server.go
//
// HTTP server wiring for the word game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /game/new creates a session (random, daily or fixed answer) and
//     hands back a per-game token.
//   - Token-gated game endpoints under /game/{id}: view, key events, guesses.
//
// Notes:
//   - The server is the input and rendering layer around game.Session:
//     key events are forwarded one at a time and every response carries the
//     derived board/keyboard views.
//   - Rejected input (early Enter, too many letters, moves after the end) is
//     not an HTTP error; the view comes back with "accepted": false.
//   - All session mutations are serialised by Server.mu.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// Server bundles router, session store, answer list and settings.
type Server struct {
	r      *chi.Mux
	store  store.Store
	words  *words.List
	cfg    config.Config
	layout game.Layout

	mu  sync.Mutex // serialises get-mutate-save on sessions
	now func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, st store.Store, list *words.List) (*Server, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		words:  list,
		cfg:    cfg,
		layout: layout,
		now:    time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog request line
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.Client.Origin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"go-wordle","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/{id}/key","POST /game/{id}/guess","DELETE /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.words.Stats())
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleView)
		r.Post("/key", s.handleKey)
		r.Post("/guess", s.handleGuess)
		r.Delete("/", s.handleAbandon)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// writeError writes {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID    string        `json:"gameId"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Daily     *daily.Puzzle `json:"daily,omitempty"` // daily mode only
	View      view          `json:"view"`
}

// handleNewGame picks a target, creates the session and issues its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		target string
		puzzle *daily.Puzzle
	)
	switch {
	case req.Answer != "":
		target = req.Answer
	case req.Mode == "daily":
		p := daily.Pick(s.now(), s.cfg.Daily.Salt, s.words)
		puzzle, target = &p, p.Word
	case req.Mode == "" || req.Mode == "random":
		target = s.words.RandomAnswer()
	default:
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}

	sess, err := game.NewSession(target, s.cfg.Game.WordLength, s.cfg.Game.MaxAttempts, game.WithLayout(s.layout))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}

	id := uuid.NewString()
	if err := s.store.Save(r.Context(), id, sess); err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signGameToken(id)
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setGameCookie(w, tok, exp)

	log.Info().Str("gameId", id).Str("mode", modeName(req)).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:    id,
		Token:     tok,
		ExpiresAt: exp,
		Daily:     puzzle,
		View:      render(id, sess, nil),
	})
}

func modeName(req newGameReq) string {
	switch {
	case req.Answer != "":
		return "fixed"
	case req.Mode == "":
		return "random"
	default:
		return req.Mode
	}
}

// handleView returns the current view of a game.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.load(w, r, id)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(render(id, sess, nil))
}

// keyReq is the payload for POST /game/{id}/key.
type keyReq struct {
	Key string `json:"key"` // a letter, "Enter" or "Backspace"
}

// handleKey forwards one key event to the session.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.mutate(w, r, func(sess *game.Session) bool { return sess.HandleKey(req.Key) })
}

// guessReq is the payload for POST /game/{id}/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess submits a whole word, bypassing the in-progress input.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess := strings.TrimSpace(req.Guess)
	s.mutate(w, r, func(sess *game.Session) bool { return sess.SubmitGuess(guess) })
}

// handleAbandon forgets a game.
func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	s.clearGameCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// mutate loads the game, applies fn and saves the session if fn changed it.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*game.Session) bool) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.load(w, r, id)
	if !ok {
		return
	}
	before := sess.State()
	accepted := fn(sess)
	if accepted {
		if err := s.store.Save(r.Context(), id, sess); err != nil {
			log.Error().Err(err).Str("gameId", id).Msg("save game")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}
		if st := sess.State(); st != before {
			log.Info().Str("gameId", id).Str("state", string(st)).Int("guesses", len(sess.History())).Msg("game finished")
		}
	}
	_ = json.NewEncoder(w).Encode(render(id, sess, &accepted))
}

// load fetches a session or writes the matching error response.
func (s *Server) load(w http.ResponseWriter, r *http.Request, id string) (*game.Session, bool) {
	sess, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return sess, true
}
