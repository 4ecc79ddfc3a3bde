package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/user"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[kernel.UserID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[kernel.UserID]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists()
		}
	}
	r.nextID++
	u.ID = kernel.UserID(r.nextID)
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

type memStates struct {
	mu     sync.Mutex
	states map[string]string
}

func newMemStates() *memStates {
	return &memStates{states: make(map[string]string)}
}

func (m *memStates) StoreState(_ context.Context, state, verifier string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state] = verifier
	return nil
}

func (m *memStates) ConsumeState(_ context.Context, state string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	verifier, ok := m.states[state]
	if !ok {
		return "", auth.ErrInvalidOAuthState()
	}
	delete(m.states, state)
	return verifier, nil
}
