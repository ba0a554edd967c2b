package user

import (
	"context"
	"errors"
	"sync"
	"time"
)

// memoryRepository is an in-memory Repository for handler and service tests.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	users  []*User
	err    error
	calls  int
}

func newMemoryRepository(seed ...*User) *memoryRepository {
	repo := &memoryRepository{}
	for _, u := range seed {
		repo.users = append(repo.users, u)
		if u.ID > repo.nextID {
			repo.nextID = u.ID
		}
	}
	return repo
}

func (m *memoryRepository) List(ctx context.Context) ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memoryRepository) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	u := &User{ID: m.nextID, Name: req.Name, Email: req.Email, CreatedAt: time.Now().UTC()}
	m.users = append(m.users, u)
	return u, nil
}

func (m *memoryRepository) DeleteByID(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

var errStorage = errors.New("connection refused")
