// Package memory is an in-process repository.Store used by tests and
// STORAGE_DRIVER=memory development runs. It honours the same version and
// capacity rules as the PostgreSQL store.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/Greenhouse_Go/internal/concurrency"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/repository"
)

type participationKey struct {
	accountID string
	code      string
	period    int64
}

func keyOf(accountID, code string, periodStart time.Time) participationKey {
	return participationKey{accountID: accountID, code: code, period: periodStart.UnixNano()}
}

// Store implements repository.Store in memory
type Store struct {
	locks *concurrency.LockManager

	mu             sync.RWMutex
	gardens        map[string]*domain.Garden
	achievements   map[string]domain.Achievement
	challenges     map[string]*domain.Challenge
	participations map[participationKey]*domain.Participation
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		locks:          concurrency.NewLockManager(),
		gardens:        make(map[string]*domain.Garden),
		achievements:   make(map[string]domain.Achievement),
		challenges:     make(map[string]*domain.Challenge),
		participations: make(map[participationKey]*domain.Participation),
	}
}

func gardenLockKey(accountID string) string { return "garden:" + accountID }
func challengeLockKey(code string) string   { return "challenge:" + code }
func participationLockKey(k participationKey) string {
	return "participation:" + k.accountID + ":" + k.code + ":" + strconv.FormatInt(k.period, 10)
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op
func (s *Store) Close() {}

// GetGarden returns a copy of the stored garden
func (s *Store) GetGarden(ctx context.Context, accountID string) (*domain.Garden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gardens[accountID]
	if !ok {
		return nil, domain.ErrGardenNotFound
	}
	return g.Clone(), nil
}

// CreateGarden stores the garden unless one exists, returning whichever is stored
func (s *Store) CreateGarden(ctx context.Context, garden *domain.Garden) (*domain.Garden, error) {
	defer s.locks.Lock(gardenLockKey(garden.AccountID))()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.gardens[garden.AccountID]; ok {
		return existing.Clone(), nil
	}
	stored := garden.Clone()
	stored.Version = 1
	if stored.ActionCounts == nil {
		stored.ActionCounts = map[domain.ActionType]int{}
	}
	s.gardens[garden.AccountID] = stored
	return stored.Clone(), nil
}

// UpdateGarden replaces the garden when the version matches
func (s *Store) UpdateGarden(ctx context.Context, garden *domain.Garden) error {
	defer s.locks.Lock(gardenLockKey(garden.AccountID))()

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.gardens[garden.AccountID]
	if !ok {
		return domain.ErrGardenNotFound
	}
	if current.Version != garden.Version {
		return domain.ErrConcurrentUpdate
	}
	garden.Version++
	s.gardens[garden.AccountID] = garden.Clone()
	return nil
}

// ListAchievements returns all definitions ordered by creation then code
func (s *Store) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// UpsertAchievement inserts or replaces a definition
func (s *Store) UpsertAchievement(ctx context.Context, a domain.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements[a.Code] = a
	return nil
}

// ListChallenges returns all definitions ordered by end time
func (s *Store) ListChallenges(ctx context.Context) ([]domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Challenge, 0, len(s.challenges))
	for _, c := range s.challenges {
		out = append(out, copyChallenge(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndTime.Equal(out[j].EndTime) {
			return out[i].EndTime.Before(out[j].EndTime)
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// GetChallenge returns a copy of one challenge
func (s *Store) GetChallenge(ctx context.Context, code string) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.challenges[code]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	cp := copyChallenge(c)
	return &cp, nil
}

// UpsertChallenge inserts or replaces a definition. The participant count is
// kept while the window is unchanged and starts from zero for a new window.
func (s *Store) UpsertChallenge(ctx context.Context, c domain.Challenge) error {
	defer s.locks.Lock(challengeLockKey(c.Code))()

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := copyChallenge(&c)
	stored.CurrentParticipants = 0
	if existing, ok := s.challenges[c.Code]; ok && existing.StartTime.Equal(c.StartTime) {
		stored.CurrentParticipants = existing.CurrentParticipants
	}
	s.challenges[c.Code] = &stored
	return nil
}

// GetParticipation returns a copy of one participation
func (s *Store) GetParticipation(ctx context.Context, accountID, challengeCode string, periodStart time.Time) (*domain.Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participations[keyOf(accountID, challengeCode, periodStart)]
	if !ok {
		return nil, domain.ErrParticipationNotFound
	}
	return p.Clone(), nil
}

// ListParticipations returns the account's participations ordered by join time
func (s *Store) ListParticipations(ctx context.Context, accountID string) ([]domain.Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Participation
	for k, p := range s.participations {
		if k.accountID == accountID {
			out = append(out, *p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

// Enroll checks for a duplicate, then capacity, then commits both writes
func (s *Store) Enroll(ctx context.Context, p *domain.Participation) (*domain.Challenge, error) {
	defer s.locks.Lock(challengeLockKey(p.ChallengeCode))()

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[p.ChallengeCode]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	if !c.InPeriod(p) {
		return nil, domain.ErrChallengeInactive
	}
	key := keyOf(p.AccountID, p.ChallengeCode, p.PeriodStart)
	if _, exists := s.participations[key]; exists {
		return nil, domain.ErrAlreadyParticipating
	}
	if !c.HasCapacity() {
		return nil, domain.ErrChallengeFull
	}

	c.CurrentParticipants++
	p.Version = 1
	s.participations[key] = p.Clone()

	cp := copyChallenge(c)
	return &cp, nil
}

// UpdateParticipation replaces the participation when the version matches
func (s *Store) UpdateParticipation(ctx context.Context, p *domain.Participation) error {
	key := keyOf(p.AccountID, p.ChallengeCode, p.PeriodStart)
	defer s.locks.Lock(participationLockKey(key))()

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.participations[key]
	if !ok {
		return domain.ErrParticipationNotFound
	}
	if current.Version != p.Version {
		return domain.ErrConcurrentUpdate
	}
	p.Version++
	s.participations[key] = p.Clone()
	return nil
}

func copyChallenge(c *domain.Challenge) domain.Challenge {
	cp := *c
	cp.Requirements = append([]domain.Requirement(nil), c.Requirements...)
	return cp
}
