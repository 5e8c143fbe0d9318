// Package session holds the staff PIN gate and per-visitor state of the
// suite server.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/alnah/go-larkreport/internal/suite"
)

// PIN is the staff code that unlocks the suite.
const PIN = "2025"

// pinLength is the number of digits in a PIN.
const pinLength = 4

// Sentinel errors for session operations.
var (
	ErrPINFormat       = errors.New("PIN must be 4 digits")
	ErrWrongPIN        = errors.New("incorrect PIN")
	ErrSessionNotFound = errors.New("session not found")
)

// CheckPIN validates the format of pin, then compares it to PIN.
func CheckPIN(pin string) error {
	if len(pin) != pinLength {
		return ErrPINFormat
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrPINFormat
		}
	}
	if pin != PIN {
		return ErrWrongPIN
	}
	return nil
}

// State is what the suite remembers about one visitor.
type State struct {
	Authenticated bool
	Cart          suite.Cart
	ReportTab     string
	LastReceipt   *suite.Receipt
}

// Store maps session IDs to state. All access goes through Do, which
// holds the store lock for the duration of the callback.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*State)}
}

// Create starts a new session and returns its ID.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &State{ReportTab: suite.DefaultSection}
	s.mu.Unlock()
	return id
}

// Login authenticates the session with pin. An unknown or empty id
// starts a fresh session; the returned ID is the one to use from now on.
func (s *Store) Login(id, pin string) (string, error) {
	if err := CheckPIN(pin); err != nil {
		return id, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		id = uuid.NewString()
		st = &State{ReportTab: suite.DefaultSection}
		s.sessions[id] = st
	}
	st.Authenticated = true
	return id, nil
}

// Logout forgets the session.
func (s *Store) Logout(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Authenticated reports whether id belongs to a logged-in session.
func (s *Store) Authenticated(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	return ok && st.Authenticated
}

// Do runs fn with exclusive access to the session state.
func (s *Store) Do(id string, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(st)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
