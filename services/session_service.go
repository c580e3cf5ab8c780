package services

import (
	"Eatdentify/models"
	"sync"
	"time"
)

// Session holds everything one user accumulates between requests: the
// current query, the current results and the chat transcript. Results are
// replaced wholesale on a successful search and left untouched otherwise.
type Session struct {
	mu      sync.Mutex
	busy    bool
	query   *models.Query
	results *models.SearchResult
	history []models.ChatMessage
}

// Begin marks a search as outstanding. A second search for the same session
// is rejected with ErrBusy instead of running concurrently.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

// End clears the outstanding-search mark.
func (s *Session) End() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Publish atomically replaces the current query and results.
func (s *Session) Publish(query *models.Query, results *models.SearchResult) {
	s.mu.Lock()
	s.query = query
	s.results = results
	s.mu.Unlock()
}

// Current returns the query and results of the last successful search.
func (s *Session) Current() (*models.Query, *models.SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.results
}

// AppendMessage records one chat turn.
func (s *Session) AppendMessage(role, content string) {
	s.mu.Lock()
	s.history = append(s.history, models.ChatMessage{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
	s.mu.Unlock()
}

// History returns a copy of the chat transcript.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]models.ChatMessage, len(s.history))
	copy(history, s.history)
	return history
}

// SessionService hands out per-user sessions, created on demand.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

var sessionService = &SessionService{sessions: make(map[string]*Session)}

// GetSessionService returns the process-wide session registry.
func GetSessionService() *SessionService {
	return sessionService
}

// Get returns the session for a user id, creating it if needed.
func (s *SessionService) Get(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		session = &Session{}
		s.sessions[userID] = session
	}
	return session
}
