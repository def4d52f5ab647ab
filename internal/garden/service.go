package garden

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Greenhouse_Go/internal/achievement"
	"github.com/osse101/Greenhouse_Go/internal/cooldown"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/logger"
	"github.com/osse101/Greenhouse_Go/internal/repository"
)

// Service is the action processor: the only component that mutates plant and
// garden numeric state.
type Service interface {
	// GetGarden loads the account's garden, creating the starter garden on first access
	GetGarden(ctx context.Context, accountID string) (*domain.Garden, error)
	AddPlant(ctx context.Context, accountID, name, plantType string) (*domain.PlantChangeResult, error)
	RemovePlant(ctx context.Context, accountID, plantID string) (*domain.PlantChangeResult, error)
	PerformAction(ctx context.Context, accountID, plantID string, action domain.ActionType) (*domain.ActionResult, error)
	// CreditReward adds a reward's currency to the garden. Experience has no
	// garden-level pool and is not applied.
	CreditReward(ctx context.Context, accountID string, reward domain.Reward) (*domain.Garden, error)
}

// Option configures the service
type Option func(*service)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithIDGenerator overrides plant id generation
func WithIDGenerator(newID func() string) Option {
	return func(s *service) { s.newID = newID }
}

// WithMaxRetries sets how many times a conflicting write is retried in total
func WithMaxRetries(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

type service struct {
	repo       repository.Garden
	defs       achievement.Definitions
	evaluator  *achievement.Evaluator
	guard      *cooldown.Guard
	bus        event.Bus
	maxRetries int
	now        func() time.Time
	newID      func() string
	lowerTag   cases.Caser
}

// NewService creates the garden service
func NewService(
	repo repository.Garden,
	defs achievement.Definitions,
	evaluator *achievement.Evaluator,
	guard *cooldown.Guard,
	bus event.Bus,
	opts ...Option,
) Service {
	s := &service{
		repo:       repo,
		defs:       defs,
		evaluator:  evaluator,
		guard:      guard,
		bus:        bus,
		maxRetries: DefaultMaxRetries,
		now:        time.Now,
		newID:      uuid.NewString,
		lowerTag:   cases.Lower(language.Und),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// retry runs fn until it stops failing with ErrConcurrentUpdate or attempts run out.
// fn must re-read everything it checks.
func (s *service) retry(ctx context.Context, accountID string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err = fn(); !errors.Is(err, domain.ErrConcurrentUpdate) {
			return err
		}
		logger.FromContext(ctx).Debug(LogMsgRetryingConflict, "account_id", accountID, "attempt", attempt)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("%w: "+ErrMsgRetriesExhausted, err, s.maxRetries)
}

func (s *service) GetGarden(ctx context.Context, accountID string) (*domain.Garden, error) {
	g, err := s.repo.GetGarden(ctx, accountID)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, domain.ErrGardenNotFound) {
		return nil, err
	}

	now := s.now()
	starter := &domain.Garden{
		AccountID:    accountID,
		Plants:       make([]domain.Plant, 0, len(domain.StarterPlants)),
		Currency:     domain.StartingCurrency,
		ActionCounts: map[domain.ActionType]int{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, sp := range domain.StarterPlants {
		starter.Plants = append(starter.Plants, domain.NewPlant(s.newID(), sp.Name, sp.Type, now))
	}
	starter.RecomputeTotalLevel()

	created, err := s.repo.CreateGarden(ctx, starter)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgGardenCreated, "account_id", accountID)
	return created, nil
}

func (s *service) AddPlant(ctx context.Context, accountID, name, plantType string) (*domain.PlantChangeResult, error) {
	name = strings.TrimSpace(name)
	plantType = s.lowerTag.String(strings.TrimSpace(plantType))
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if plantType == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTypeRequired)
	}

	var result *domain.PlantChangeResult
	var added domain.Plant
	err := s.retry(ctx, accountID, func() error {
		g, err := s.repo.GetGarden(ctx, accountID)
		if err != nil {
			return err
		}
		now := s.now()
		added = domain.NewPlant(s.newID(), name, plantType, now)
		g.Plants = append(g.Plants, added)
		g.RecomputeTotalLevel()
		g.UpdatedAt = now
		if err := s.repo.UpdateGarden(ctx, g); err != nil {
			return err
		}
		plant := added
		result = &domain.PlantChangeResult{Plant: &plant, TotalLevel: g.TotalLevel, PlantsCount: len(g.Plants)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPlantAdded, "account_id", accountID, "plant_id", added.ID, "type", added.Type)
	s.publish(ctx, event.NewPlantEvent(event.PlantAdded, accountID, added))
	return result, nil
}

func (s *service) RemovePlant(ctx context.Context, accountID, plantID string) (*domain.PlantChangeResult, error) {
	if strings.TrimSpace(plantID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlantIDRequired)
	}

	var result *domain.PlantChangeResult
	var removed domain.Plant
	err := s.retry(ctx, accountID, func() error {
		g, err := s.repo.GetGarden(ctx, accountID)
		if err != nil {
			return err
		}
		var ok bool
		if removed, ok = g.RemovePlant(plantID); !ok {
			return domain.ErrPlantNotFound
		}
		g.RecomputeTotalLevel()
		g.UpdatedAt = s.now()
		if err := s.repo.UpdateGarden(ctx, g); err != nil {
			return err
		}
		result = &domain.PlantChangeResult{TotalLevel: g.TotalLevel, PlantsCount: len(g.Plants)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPlantRemoved, "account_id", accountID, "plant_id", plantID)
	s.publish(ctx, event.NewPlantEvent(event.PlantRemoved, accountID, removed))
	return result, nil
}

func (s *service) PerformAction(ctx context.Context, accountID, plantID string, action domain.ActionType) (*domain.ActionResult, error) {
	effect, ok := actionEffects[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}

	defs, err := s.defs.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDefinitionsFailed, err)
	}

	var result *domain.ActionResult
	err = s.retry(ctx, accountID, func() error {
		g, err := s.repo.GetGarden(ctx, accountID)
		if err != nil {
			return err
		}
		plant := g.FindPlant(plantID)
		if plant == nil {
			return domain.ErrPlantNotFound
		}

		now := s.now()
		if err := s.guard.Enforce(plant.ID, plant.LastAction, now); err != nil {
			return err
		}

		levelUp, reachedMax := applyEffect(plant, action, effect, now)
		g.Currency += effect.Currency
		if g.ActionCounts == nil {
			g.ActionCounts = map[domain.ActionType]int{}
		}
		g.ActionCounts[action]++
		g.RecomputeTotalLevel()

		unlocked := s.evaluator.Evaluate(defs, action, g)
		achievement.Record(g, unlocked)
		g.UpdatedAt = now

		if err := s.repo.UpdateGarden(ctx, g); err != nil {
			return err
		}

		snapshot := *g.FindPlant(plantID)
		snapshot.Achievements = append([]string{}, snapshot.Achievements...)
		result = &domain.ActionResult{
			Plant:            snapshot,
			Currency:         g.Currency,
			TotalLevel:       g.TotalLevel,
			ExperienceGained: effect.Experience,
			CurrencyGained:   effect.Currency,
			LevelUp:          levelUp,
			ReachedMax:       reachedMax,
			NewAchievements:  unlocked,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.NewAchievements == nil {
		result.NewAchievements = []domain.Achievement{}
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgActionPerformed, "account_id", accountID, "plant_id", plantID, "action", action,
		"level_up", result.LevelUp, "achievements", len(result.NewAchievements))

	s.publish(ctx, event.NewActionPerformedEvent(accountID, plantID, result, action))
	for _, a := range result.NewAchievements {
		log.Info(LogMsgAchievementUnlock, "account_id", accountID, "code", a.Code)
		s.publish(ctx, event.NewAchievementUnlockedEvent(accountID, a))
	}
	return result, nil
}

// applyEffect mutates the plant and reports whether it sits at the level cap
// afterwards and whether this action is the one that brought it there
func applyEffect(p *domain.Plant, action domain.ActionType, effect ActionEffect, now time.Time) (levelUp, reachedMax bool) {
	p.Health = min(p.Health+effect.Health, domain.MaxPlantHealth)

	wasMaxed := p.VirtualLevel >= domain.MaxPlantLevel
	p.VirtualLevel = min(p.VirtualLevel+effect.Experience, domain.MaxPlantLevel)

	switch action {
	case domain.ActionWater:
		p.LastWatered = now
	case domain.ActionFertilize:
		p.LastFertilized = now
	case domain.ActionPrune:
		p.LastPruned = now
	}
	p.LastAction = now

	levelUp = p.VirtualLevel >= domain.MaxPlantLevel
	return levelUp, levelUp && !wasMaxed
}

func (s *service) CreditReward(ctx context.Context, accountID string, reward domain.Reward) (*domain.Garden, error) {
	if reward.Currency < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeReward)
	}

	var credited *domain.Garden
	err := s.retry(ctx, accountID, func() error {
		g, err := s.GetGarden(ctx, accountID)
		if err != nil {
			return err
		}
		g.Currency += reward.Currency
		g.UpdatedAt = s.now()
		if err := s.repo.UpdateGarden(ctx, g); err != nil {
			return err
		}
		credited = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgRewardCredited, "account_id", accountID, "currency", reward.Currency)
	return credited, nil
}

// publish fans an event out after commit; subscriber failures never undo the commit
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
