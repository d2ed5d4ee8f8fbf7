package service

import (
	"context"
	"math/rand"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// VerbService exposes the vocabulary to the delivery layer: the full list
// for browsing and pool-aware random picks for the study screens.
type VerbService struct {
	verbs   VerbProvider
	profile *ProfileService
}

// NewVerbService creates a VerbService.
func NewVerbService(verbs VerbProvider, profile *ProfileService) *VerbService {
	return &VerbService{
		verbs:   verbs,
		profile: profile,
	}
}

// GetAll returns every loaded verb in dataset order.
func (s *VerbService) GetAll() []*entities.Verb {
	return s.verbs.GetAll()
}

// RandomFromPool picks a random verb from the user's active difficulty pool.
func (s *VerbService) RandomFromPool(ctx context.Context, userID int64) (*entities.Verb, error) {
	settings, err := s.profile.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	pool := SelectPool(s.verbs.GetAll(), settings.Difficulty)
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	return pool[rand.Intn(len(pool))], nil
}
