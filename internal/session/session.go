package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vaishnav/edutech_backend_v1/internal/auth"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

// Session is one logged-in client. It owns the dashboard view state and the chat
// log; the mutex guards both.
type Session struct {
	ID        string
	User      models.User
	CreatedAt time.Time
	// zero means the session never expires
	ExpiresAt time.Time

	mu       sync.Mutex
	student  StudentView
	admin    AdminView
	chat     []models.ChatMessage
	closers  map[int]func()
	closerID int
}

// Manager is the session gate: a client either has a live session (student or admin)
// or is unauthenticated.
type Manager struct {
	provider auth.Provider
	delay    time.Duration
	ttl      time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

type Option func(*Manager)

// WithDelay adds artificial latency to Login.
func WithDelay(d time.Duration) Option {
	return func(m *Manager) { m.delay = d }
}

// WithTTL expires sessions ttl after login, matching the token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(provider auth.Provider, opts ...Option) *Manager {
	m := &Manager{
		provider: provider,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login creates a session when the credentials match. On failure nothing is created.
func (m *Manager) Login(ctx context.Context, creds auth.Credentials) (*Session, error) {
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	user, err := m.provider.Authenticate(creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: now,
		student:   defaultStudentView(),
		admin:     defaultAdminView(),
		chat:      greeting(now),
		closers:   make(map[int]func()),
	}
	if m.ttl > 0 {
		s.ExpiresAt = now.Add(m.ttl)
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Logout always leaves the client unauthenticated; unknown ids are ignored.
func (m *Manager) Logout(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.closeAll()
	}
}

// Get returns the live session for id. An expired session is dropped on sight.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(m.now()) {
		m.drop(id, s)
		return nil, false
	}
	return s, true
}

// Sweep drops every expired session and reports how many went.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	var gone []*Session
	for id, s := range m.sessions {
		if s.expired(now) {
			delete(m.sessions, id)
			gone = append(gone, s)
		}
	}
	m.mu.Unlock()
	for _, s := range gone {
		s.closeAll()
	}
	return len(gone)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}

func (m *Manager) drop(id string, s *Session) {
	m.mu.Lock()
	if m.sessions[id] != s {
		m.mu.Unlock()
		return
	}
	delete(m.sessions, id)
	m.mu.Unlock()
	s.closeAll()
}

// State reports the role for id, RoleNone when there is no session.
func (m *Manager) State(id string) models.Role {
	if s, ok := m.Get(id); ok {
		return s.User.Role
	}
	return models.RoleNone
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// OnClose registers fn to run when the session logs out. The returned func
// unregisters it.
func (s *Session) OnClose(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closerID++
	id := s.closerID
	s.closers[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.closers, id)
		s.mu.Unlock()
	}
}

func (s *Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s *Session) closeAll() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.closers))
	for id, fn := range s.closers {
		fns = append(fns, fn)
		delete(s.closers, id)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
