package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/logger"
	"github.com/osse101/Greenhouse_Go/internal/repository"
)

type cachedEntry struct {
	Version      string
	Achievements []domain.Achievement
	Challenges   []domain.Challenge
	Challenge    *domain.Challenge
	CachedAt     time.Time
}

// Cache fronts the catalog repository with an in-memory LRU whose entries
// expire after a TTL. Reads return copies; callers may modify them freely.
type Cache struct {
	repo repository.Catalog
	lru  *expirable.LRU[string, *cachedEntry]
}

// NewCache creates a catalog cache holding at most size entries for ttl
func NewCache(repo repository.Catalog, size int, ttl time.Duration) *Cache {
	return &Cache{
		repo: repo,
		lru:  expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (c *Cache) get(key string) (*cachedEntry, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry, true
}

func (c *Cache) set(key string, entry *cachedEntry) {
	entry.Version = CacheSchemaVersion
	entry.CachedAt = time.Now()
	c.lru.Add(key, entry)
}

// ListAchievements returns every achievement definition
func (c *Cache) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	if entry, ok := c.get(keyAchievements); ok {
		return append([]domain.Achievement(nil), entry.Achievements...), nil
	}
	defs, err := c.repo.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	c.set(keyAchievements, &cachedEntry{Achievements: defs})
	return append([]domain.Achievement(nil), defs...), nil
}

// ListChallenges returns every challenge definition
func (c *Cache) ListChallenges(ctx context.Context) ([]domain.Challenge, error) {
	if entry, ok := c.get(keyChallenges); ok {
		return copyChallenges(entry.Challenges), nil
	}
	defs, err := c.repo.ListChallenges(ctx)
	if err != nil {
		return nil, err
	}
	c.set(keyChallenges, &cachedEntry{Challenges: defs})
	return copyChallenges(defs), nil
}

// GetChallenge returns one challenge definition.
// Participant counts may lag by up to the TTL; the store enforces capacity.
func (c *Cache) GetChallenge(ctx context.Context, code string) (*domain.Challenge, error) {
	key := challengeKey(code)
	if entry, ok := c.get(key); ok {
		cp := copyChallenge(*entry.Challenge)
		return &cp, nil
	}
	ch, err := c.repo.GetChallenge(ctx, code)
	if err != nil {
		return nil, err
	}
	stored := copyChallenge(*ch)
	c.set(key, &cachedEntry{Challenge: &stored})
	return ch, nil
}

// InvalidateChallenge drops the cached listing and the single challenge entry
func (c *Cache) InvalidateChallenge(code string) {
	c.lru.Remove(keyChallenges)
	c.lru.Remove(challengeKey(code))
}

// Clear removes all entries
func (c *Cache) Clear() {
	c.lru.Purge()
}

// Len is the number of live entries
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Register drops stale participant counts whenever someone joins a challenge
func (c *Cache) Register(bus event.Bus) {
	bus.Subscribe(event.ChallengeJoined, c.handleChallengeJoined)
}

func (c *Cache) handleChallengeJoined(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ChallengePayload](evt.Payload)
	if err != nil {
		return err
	}
	c.InvalidateChallenge(payload.ChallengeCode)
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "challenge", payload.ChallengeCode)
	return nil
}

func challengeKey(code string) string {
	return keyChallenges + ":" + code
}

func copyChallenge(ch domain.Challenge) domain.Challenge {
	ch.Requirements = append([]domain.Requirement(nil), ch.Requirements...)
	return ch
}

func copyChallenges(in []domain.Challenge) []domain.Challenge {
	out := make([]domain.Challenge, len(in))
	for i := range in {
		out[i] = copyChallenge(in[i])
	}
	return out
}
