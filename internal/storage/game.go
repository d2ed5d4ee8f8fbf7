// Package storage provides in-memory storage for transient game state.
package storage

import (
	"sync"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// GameStorage keeps the active game session per user. Starting a new game
// simply overwrites the previous session.
type GameStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.GameSession
}

// NewGameStorage creates a new GameStorage.
func NewGameStorage() *GameStorage {
	return &GameStorage{
		sessions: make(map[int64]*entities.GameSession),
	}
}

// Store saves the active session for a user.
func (s *GameStorage) Store(userID int64, session *entities.GameSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
}

// Get retrieves the active session for a user, or nil.
func (s *GameStorage) Get(userID int64) *entities.GameSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// Delete removes the active session for a user.
func (s *GameStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
