package client

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	sessionCookie = "simpleapp_session"
	sessionIdle   = 12 * time.Hour
)

type session struct {
	app      *App
	lastSeen time.Time
}

// WebHandler serves the browser UI. Each browser session gets its own App;
// loading the page starts a fresh one, the way a reload remounts a SPA.
type WebHandler struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewWebHandler creates a WebHandler whose Apps talk to backend.
func NewWebHandler(backend Backend, logger *slog.Logger) *WebHandler {
	return &WebHandler{
		backend:  backend,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Routes returns the router for the UI endpoints
func (h *WebHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/ui/mount", h.Mount)
	r.Post("/ui/users", h.Create)
	r.Delete("/ui/users/{id}", h.Delete)

	return r
}

// Index handles GET / by rendering the page in its loading state.
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			id = c.Value
		}
	}

	app := h.startSession(id)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(app.State()).Render(r.Context(), w); err != nil {
		h.logger.Error("render page", "error", err)
	}
}

// Mount handles GET /ui/mount by loading the user list.
func (h *WebHandler) Mount(w http.ResponseWriter, r *http.Request) {
	app, ok := h.app(r)
	if !ok {
		datastar.NewSSE(w, r).Redirect("/")
		return
	}

	state := app.Mount(r.Context())
	h.patch(w, r, state, false)
}

type formSignals struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create handles POST /ui/users with the form signals as body.
func (h *WebHandler) Create(w http.ResponseWriter, r *http.Request) {
	app, ok := h.app(r)
	if !ok {
		datastar.NewSSE(w, r).Redirect("/")
		return
	}

	var signals formSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return
	}

	app.SetForm(signals.Name, signals.Email)
	state := app.SubmitCreate(r.Context())
	h.patch(w, r, state, true)
}

// Delete handles DELETE /ui/users/{id}.
func (h *WebHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	app, ok := h.app(r)
	if !ok {
		datastar.NewSSE(w, r).Redirect("/")
		return
	}

	state := app.Delete(r.Context(), id)
	h.patch(w, r, state, false)
}

// patch sends the re-rendered #app element and, when syncForm is set, the
// form fields as signals.
func (h *WebHandler) patch(w http.ResponseWriter, r *http.Request, s State, syncForm bool) {
	sse := datastar.NewSSE(w, r)

	if err := sse.PatchElementTempl(AppFragment(s)); err != nil {
		h.logger.Error("patch app element", "error", err)
		return
	}

	if syncForm {
		if err := sse.MarshalAndPatchSignals(formSignals{Name: s.Form.Name, Email: s.Form.Email}); err != nil {
			h.logger.Error("patch form signals", "error", err)
		}
	}
}

func (h *WebHandler) startSession(id string) *App {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	for key, s := range h.sessions {
		if now.Sub(s.lastSeen) > sessionIdle {
			delete(h.sessions, key)
		}
	}

	app := NewApp(h.backend, h.logger.With("session", id))
	h.sessions[id] = &session{app: app, lastSeen: now}
	return app
}

func (h *WebHandler) app(r *http.Request) (*App, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[c.Value]
	if !ok {
		return nil, false
	}
	s.lastSeen = h.now()
	return s.app, true
}
