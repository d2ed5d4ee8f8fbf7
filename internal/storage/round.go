package storage

import (
	"sync"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// RoundStorage keeps the pending mini-game rounds per user. Rounds are
// independent of each other, so recognition and group state live side by
// side.
type RoundStorage struct {
	mu          sync.RWMutex
	recognition map[int64]*entities.RecognitionRound
	group       map[int64]*entities.GroupRound
}

// NewRoundStorage creates a new RoundStorage.
func NewRoundStorage() *RoundStorage {
	return &RoundStorage{
		recognition: make(map[int64]*entities.RecognitionRound),
		group:       make(map[int64]*entities.GroupRound),
	}
}

// StoreRecognition saves the pending recognition round for a user.
func (s *RoundStorage) StoreRecognition(userID int64, round *entities.RecognitionRound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recognition[userID] = round
}

// GetRecognition retrieves the pending recognition round for a user, or nil.
func (s *RoundStorage) GetRecognition(userID int64) *entities.RecognitionRound {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recognition[userID]
}

// DeleteRecognition removes the pending recognition round for a user.
func (s *RoundStorage) DeleteRecognition(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recognition, userID)
}

// StoreGroup saves the pending group round for a user.
func (s *RoundStorage) StoreGroup(userID int64, round *entities.GroupRound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group[userID] = round
}

// GetGroup retrieves the pending group round for a user, or nil.
func (s *RoundStorage) GetGroup(userID int64) *entities.GroupRound {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.group[userID]
}

// DeleteGroup removes the pending group round for a user.
func (s *RoundStorage) DeleteGroup(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.group, userID)
}
