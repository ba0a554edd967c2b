package client

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeAPI mimics the users resource of the API service.
type fakeAPI struct {
	mu     sync.Mutex
	users  []User
	nextID int64

	// failWith, when non-zero, makes every request fail with that status.
	failWith int
	requests atomic.Int32
}

func newFakeAPI(t *testing.T, seed ...User) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{users: append([]User{}, seed...)}
	for _, u := range seed {
		if u.ID > api.nextID {
			api.nextID = u.ID
		}
	}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != 0 {
		writeJSON(w, f.failWith, map[string]any{"error": map[string]string{"code": "INTERNAL_ERROR", "message": "storage unavailable"}})
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/users")
	switch {
	case r.Method == http.MethodGet && path == "":
		writeJSON(w, http.StatusOK, f.users)

	case r.Method == http.MethodPost && path == "":
		var req struct{ Name, Email string }
		json.NewDecoder(r.Body).Decode(&req)
		f.nextID++
		u := User{ID: f.nextID, Name: req.Name, Email: req.Email, CreatedAt: time.Now().UTC().Format(time.RFC3339)}
		f.users = append(f.users, u)
		writeJSON(w, http.StatusCreated, u)

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/"):
		id, err := strconv.ParseInt(path[1:], 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]string{"code": "BAD_REQUEST", "message": "Invalid user ID"}})
			return
		}
		for i, u := range f.users {
			if u.ID == id {
				f.users = append(f.users[:i], f.users[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "NOT_FOUND", "message": "user not found"}})

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) fail(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = status
}

func (f *fakeAPI) snapshot() []User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]User{}, f.users...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, seed ...User) (*App, *fakeAPI) {
	t.Helper()
	api, srv := newFakeAPI(t, seed...)
	return NewApp(NewAPIClient(srv.URL+"/api/users", 5*time.Second), discardLogger()), api
}
