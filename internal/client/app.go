package client

import (
	"context"
	"log/slog"
	"sync"
)

// Backend is the subset of the API the App needs. *APIClient implements it.
type Backend interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, name, email string) (User, error)
	Delete(ctx context.Context, id int64) error
}

// App owns one UI state and runs the network effects for user actions.
// Requests run outside the lock, so overlapping actions resolve in the order
// their responses arrive.
type App struct {
	backend Backend
	logger  *slog.Logger

	mu    sync.Mutex
	state State
}

// NewApp creates an App in the initial loading state.
func NewApp(backend Backend, logger *slog.Logger) *App {
	return &App{
		backend: backend,
		logger:  logger,
		state:   InitialState(),
	}
}

// State returns a snapshot of the current state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.state
	s.Users = append([]User{}, a.state.Users...)
	return s
}

// Dispatch applies e and returns the resulting state.
func (a *App) Dispatch(e Event) State {
	a.mu.Lock()
	a.state = Reduce(a.state, e)
	a.mu.Unlock()
	return a.State()
}

// Mount loads the user list.
func (a *App) Mount(ctx context.Context) State {
	users, err := a.backend.List(ctx)
	if err != nil {
		a.logger.Warn("list users failed", "error", err)
		return a.Dispatch(LoadFailed{Err: err})
	}
	return a.Dispatch(LoadSucceeded{Users: users})
}

// SetForm records the current form inputs.
func (a *App) SetForm(name, email string) State {
	return a.Dispatch(FormChanged{Name: name, Email: email})
}

// SubmitCreate creates a user from the form. An incomplete form is rejected
// without contacting the API.
func (a *App) SubmitCreate(ctx context.Context) State {
	form := a.State().Form
	if !form.Complete() {
		return a.Dispatch(CreateRejected{})
	}

	created, err := a.backend.Create(ctx, form.Name, form.Email)
	if err != nil {
		a.logger.Warn("create user failed", "error", err)
		return a.Dispatch(CreateFailed{Err: err})
	}
	return a.Dispatch(CreateSucceeded{User: created})
}

// Delete removes the user with the given id.
func (a *App) Delete(ctx context.Context, id int64) State {
	if err := a.backend.Delete(ctx, id); err != nil {
		a.logger.Warn("delete user failed", "id", id, "error", err)
		return a.Dispatch(DeleteFailed{Err: err})
	}
	return a.Dispatch(DeleteSucceeded{ID: id})
}
