// Package session provides the server-side admin session store with an
// idle-timeout policy.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the admin session token.
const CookieName = "admin_session"

// DefaultIdleTimeout is how long an admin session survives without activity.
const DefaultIdleTimeout = 10 * time.Minute

// State is the outcome of checking a session token.
type State int

const (
	// StateAnonymous means the token is unknown (never existed, already
	// destroyed, or previously expired).
	StateAnonymous State = iota
	// StateExpired means the token was valid but idled past the timeout on
	// this request. The session is destroyed as a side effect.
	StateExpired
	// StateActive means the token is valid; its last-active time has been
	// refreshed.
	StateActive
)

// Manager holds authenticated admin sessions keyed by opaque token.
// Expiry is computed from time.Time values, which carry a monotonic clock
// reading, so wall-clock adjustments cannot shorten or extend a session.
type Manager struct {
	mu          sync.Mutex
	lastActive  map[string]time.Time
	idleTimeout time.Duration
	now         func() time.Time
}

// NewManager creates a Manager with the given idle timeout.
func NewManager(idleTimeout time.Duration) *Manager {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Manager{
		lastActive:  make(map[string]time.Time),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Create starts a new authenticated session and returns its token.
func (m *Manager) Create() string {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActive[token] = m.now()

	return token
}

// Touch checks the session for token and refreshes its last-active time.
// An idle session is destroyed and reported as StateExpired exactly once;
// subsequent checks see StateAnonymous.
func (m *Manager) Touch(token string) State {
	if token == "" {
		return StateAnonymous
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok := m.lastActive[token]
	if !ok {
		return StateAnonymous
	}

	now := m.now()
	if now.Sub(last) > m.idleTimeout {
		delete(m.lastActive, token)
		return StateExpired
	}

	m.lastActive[token] = now
	return StateActive
}

// Destroy removes the session for token. Unknown tokens are ignored.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lastActive, token)
}
