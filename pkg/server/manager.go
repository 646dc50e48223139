package server

import (
	"log/slog"
	"sync"
	"time"
)

// SessionManager tracks live sessions and closes the ones left detached
// longer than the resume window.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	expiry   map[string]*time.Timer
	config   *Config
	logger   *slog.Logger

	// reserved counts sessions being built by Create that are not in
	// sessions yet.
	reserved int

	onSessionCreate func(*Session)
	onSessionClose  func(*Session)
}

// NewSessionManager creates a manager.
func NewSessionManager(config *Config) *SessionManager {
	config = config.withDefaults()
	return &SessionManager{
		sessions: make(map[string]*Session),
		expiry:   make(map[string]*time.Timer),
		config:   config,
		logger:   config.Logger.With("component", "sessions"),
	}
}

// Create builds a new session running app. The session is closed unless a
// websocket attaches within the resume window.
func (sm *SessionManager) Create(app App) (*Session, error) {
	sm.mu.Lock()
	if sm.config.MaxSessions > 0 && len(sm.sessions)+sm.reserved >= sm.config.MaxSessions {
		sm.mu.Unlock()
		return nil, ErrMaxSessionsReached
	}
	sm.reserved++
	sm.mu.Unlock()

	s, err := newSession(app, sm.config)
	if err != nil {
		sm.mu.Lock()
		sm.reserved--
		sm.mu.Unlock()
		return nil, err
	}
	s.onDetach = sm.scheduleExpiry
	s.onClose = sm.remove

	sm.mu.Lock()
	sm.reserved--
	sm.sessions[s.ID] = s
	sm.mu.Unlock()
	sm.scheduleExpiry(s)

	if sm.onSessionCreate != nil {
		sm.onSessionCreate(s)
	}
	return s, nil
}

// Get returns a live session by id.
func (sm *SessionManager) Get(id string) (*Session, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	s, ok := sm.sessions[id]
	return s, ok
}

// Attach cancels the expiry of a session and binds conn to it.
func (sm *SessionManager) Attach(id string, attach func(*Session) error) error {
	sm.mu.Lock()
	s, ok := sm.sessions[id]
	if ok {
		if t, pending := sm.expiry[id]; pending {
			t.Stop()
			delete(sm.expiry, id)
		}
	}
	sm.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	if err := attach(s); err != nil {
		if !s.Attached() {
			sm.scheduleExpiry(s)
		}
		return err
	}
	return nil
}

// scheduleExpiry closes s after the resume window unless it attaches.
func (sm *SessionManager) scheduleExpiry(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[s.ID]; !ok {
		return
	}
	if t, ok := sm.expiry[s.ID]; ok {
		t.Stop()
	}
	sm.expiry[s.ID] = time.AfterFunc(sm.config.ResumeWindow, func() {
		if !s.Attached() {
			sm.logger.Debug("session expired", "session_id", s.ID)
			s.Close()
		}
	})
}

// remove forgets s. It is the session's close callback.
func (sm *SessionManager) remove(s *Session) {
	sm.mu.Lock()
	_, ok := sm.sessions[s.ID]
	delete(sm.sessions, s.ID)
	if t, pending := sm.expiry[s.ID]; pending {
		t.Stop()
		delete(sm.expiry, s.ID)
	}
	sm.mu.Unlock()

	if ok && sm.onSessionClose != nil {
		sm.onSessionClose(s)
	}
}

// Close closes a session by id.
func (sm *SessionManager) Close(id string) {
	if s, ok := sm.Get(id); ok {
		s.Close()
	}
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.sessions)
}

// ForEach calls fn for every live session until fn returns false.
func (sm *SessionManager) ForEach(fn func(*Session) bool) {
	sm.mu.Lock()
	list := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		list = append(list, s)
	}
	sm.mu.Unlock()
	for _, s := range list {
		if !fn(s) {
			return
		}
	}
}

// SetOnSessionCreate sets a callback run after a session is created.
func (sm *SessionManager) SetOnSessionCreate(fn func(*Session)) {
	sm.onSessionCreate = fn
}

// SetOnSessionClose sets a callback run after a session is closed.
func (sm *SessionManager) SetOnSessionClose(fn func(*Session)) {
	sm.onSessionClose = fn
}

// Shutdown closes every session.
func (sm *SessionManager) Shutdown() {
	sm.ForEach(func(s *Session) bool {
		s.Close()
		return true
	})
}
