package challenge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/logger"
	"github.com/osse101/Greenhouse_Go/internal/repository"
)

// Catalog is the read-only source of challenge definitions
type Catalog interface {
	ListChallenges(ctx context.Context) ([]domain.Challenge, error)
	GetChallenge(ctx context.Context, code string) (*domain.Challenge, error)
}

// RewardCreditor credits reward currency to a garden
type RewardCreditor interface {
	CreditReward(ctx context.Context, accountID string, reward domain.Reward) (*domain.Garden, error)
}

// Service is the challenge engine
type Service interface {
	ListChallenges(ctx context.Context, accountID string) (*domain.ChallengeList, error)
	Enroll(ctx context.Context, accountID, challengeCode string) (*domain.EnrollmentResult, error)
	// AdvanceProgress applies one qualifying action to every open participation
	// of the account and returns the participations it changed.
	AdvanceProgress(ctx context.Context, accountID string, action domain.ActionType, reachedMax bool) ([]domain.Participation, error)
	ClaimReward(ctx context.Context, accountID, challengeCode string) (*domain.ClaimResult, error)
}

// Option configures the service
type Option func(*service)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithMaxRetries sets how many times a conflicting participation write is tried
func WithMaxRetries(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

type service struct {
	repo       repository.Participation
	catalog    Catalog
	creditor   RewardCreditor
	bus        event.Bus
	maxRetries int
	now        func() time.Time
}

// NewService creates the challenge service
func NewService(repo repository.Participation, catalog Catalog, creditor RewardCreditor, bus event.Bus, opts ...Option) Service {
	s := &service{
		repo:       repo,
		catalog:    catalog,
		creditor:   creditor,
		bus:        bus,
		maxRetries: DefaultMaxRetries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListChallenges(ctx context.Context, accountID string) (*domain.ChallengeList, error) {
	challenges, err := s.catalog.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListChallenges, err)
	}
	participations, err := s.repo.ListParticipations(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	active := make([]domain.Challenge, 0, len(challenges))
	for _, c := range challenges {
		if c.IsOpenAt(now) {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].EndTime.Before(active[j].EndTime) })

	list := &domain.ChallengeList{
		Challenges:        make([]domain.ChallengeWithProgress, 0, len(active)),
		TotalActive:       len(active),
		UserParticipating: len(participations),
	}
	for _, c := range active {
		p := currentPeriod(&c, participations)
		list.Challenges = append(list.Challenges, domain.ChallengeWithProgress{
			Challenge:         c,
			IsCurrentlyActive: true,
			TimeRemainingMs:   c.TimeRemaining(now).Milliseconds(),
			UserProgress:      userProgress(p),
		})
	}
	return list, nil
}

// currentPeriod finds the participation in c's current window, if any
func currentPeriod(c *domain.Challenge, participations []domain.Participation) *domain.Participation {
	for i := range participations {
		if c.InPeriod(&participations[i]) {
			return &participations[i]
		}
	}
	return nil
}

// userProgress projects a participation; nil means not participating
func userProgress(p *domain.Participation) domain.UserProgress {
	if p == nil {
		return domain.UserProgress{Progress: []domain.RequirementProgress{}}
	}
	joined := p.JoinedAt
	return domain.UserProgress{
		IsParticipating: true,
		IsCompleted:     p.IsCompleted,
		OverallProgress: p.OverallProgress(),
		Progress:        append([]domain.RequirementProgress{}, p.Progress...),
		JoinedAt:        &joined,
		CompletedAt:     p.CompletedAt,
		RewardClaimed:   p.RewardClaimed,
	}
}

func (s *service) Enroll(ctx context.Context, accountID, challengeCode string) (*domain.EnrollmentResult, error) {
	challengeCode = strings.TrimSpace(challengeCode)
	if challengeCode == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCodeRequired)
	}

	c, err := s.catalog.GetChallenge(ctx, challengeCode)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !c.IsOpenAt(now) {
		return nil, domain.ErrChallengeInactive
	}

	if _, err := s.repo.GetParticipation(ctx, accountID, challengeCode, c.StartTime); err == nil {
		return nil, domain.ErrAlreadyParticipating
	} else if !errors.Is(err, domain.ErrParticipationNotFound) {
		return nil, err
	}

	p := domain.NewParticipation(accountID, c, now)
	updated, err := s.repo.Enroll(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgEnrolled, "account_id", accountID, "challenge", challengeCode,
		"participants", updated.CurrentParticipants)
	s.publish(ctx, event.NewChallengeEvent(event.ChallengeJoined, accountID, challengeCode, 0))

	return &domain.EnrollmentResult{
		Challenge:     *updated,
		UserProgress:  userProgress(p),
		Participation: p,
	}, nil
}

func (s *service) AdvanceProgress(ctx context.Context, accountID string, action domain.ActionType, reachedMax bool) ([]domain.Participation, error) {
	participations, err := s.repo.ListParticipations(ctx, accountID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	now := s.now()
	var (
		changed []domain.Participation
		errs    []error
	)
	for _, p := range participations {
		if p.IsCompleted {
			continue
		}
		c, err := s.catalog.GetChallenge(ctx, p.ChallengeCode)
		if err != nil {
			log.Warn(LogMsgChallengeLookupErr, "challenge", p.ChallengeCode, "error", err)
			errs = append(errs, err)
			continue
		}
		if !c.IsOpenAt(now) || !c.InPeriod(&p) {
			continue
		}

		updated, completedNow, err := s.advanceOne(ctx, accountID, p.ChallengeCode, p.PeriodStart, action, reachedMax, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if updated == nil {
			continue
		}
		changed = append(changed, *updated)
		log.Debug(LogMsgProgressAdvanced, "account_id", accountID, "challenge", p.ChallengeCode,
			"overall", updated.OverallProgress())
		if completedNow {
			log.Info(LogMsgCompleted, "account_id", accountID, "challenge", p.ChallengeCode)
			s.publish(ctx, event.NewChallengeEvent(event.ChallengeCompleted, accountID, p.ChallengeCode, 0))
		}
	}
	return changed, errors.Join(errs...)
}

// advanceOne re-reads and updates one participation under the version check.
// It returns nil when nothing matched.
func (s *service) advanceOne(ctx context.Context, accountID, code string, period time.Time, action domain.ActionType, reachedMax bool, now time.Time) (*domain.Participation, bool, error) {
	var (
		result       *domain.Participation
		completedNow bool
	)
	err := s.retry(ctx, func() error {
		result, completedNow = nil, false

		p, err := s.repo.GetParticipation(ctx, accountID, code, period)
		if err != nil {
			return err
		}
		if p.IsCompleted || !ApplyAction(p, action, reachedMax, now) {
			return nil
		}
		if err := s.repo.UpdateParticipation(ctx, p); err != nil {
			return err
		}
		result, completedNow = p, p.IsCompleted
		return nil
	})
	return result, completedNow, err
}

// ApplyAction advances every matching requirement of p by one, capped at the
// required count, and recomputes completion. CompletedAt is set only on the
// transition to completed. level_up requirements move only when reachedMax
// reports the action that took a plant to the cap. Returns whether anything changed.
func ApplyAction(p *domain.Participation, action domain.ActionType, reachedMax bool, now time.Time) bool {
	changed := false
	for i := range p.Progress {
		rp := &p.Progress[i]
		matches := rp.Action == string(action) || (reachedMax && rp.Action == domain.RequirementLevelUp)
		if !matches || rp.CurrentCount >= rp.RequiredCount {
			continue
		}
		rp.CurrentCount++
		rp.Completed = rp.CurrentCount >= rp.RequiredCount
		changed = true
	}
	if !changed {
		return false
	}

	all := true
	for _, rp := range p.Progress {
		if !rp.Completed {
			all = false
			break
		}
	}
	if all && !p.IsCompleted {
		p.IsCompleted = true
		completedAt := now
		p.CompletedAt = &completedAt
	}
	return true
}

func (s *service) ClaimReward(ctx context.Context, accountID, challengeCode string) (*domain.ClaimResult, error) {
	challengeCode = strings.TrimSpace(challengeCode)
	if challengeCode == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCodeRequired)
	}

	c, err := s.catalog.GetChallenge(ctx, challengeCode)
	if err != nil {
		return nil, err
	}
	period, err := s.claimablePeriod(ctx, accountID, challengeCode)
	if err != nil {
		return nil, err
	}

	err = s.retry(ctx, func() error {
		p, err := s.repo.GetParticipation(ctx, accountID, challengeCode, period)
		if err != nil {
			return err
		}
		if !p.IsCompleted {
			return domain.ErrChallengeNotCompleted
		}
		if p.RewardClaimed {
			return domain.ErrRewardAlreadyClaimed
		}
		p.RewardClaimed = true
		return s.repo.UpdateParticipation(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	garden, err := s.creditor.CreditReward(ctx, accountID, c.Reward)
	if err != nil {
		// the claim must be undone even when the request was abandoned
		s.revertClaim(context.WithoutCancel(ctx), accountID, challengeCode, period)
		return nil, fmt.Errorf("%s: %w", ErrMsgCreditFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgRewardClaimed, "account_id", accountID, "challenge", challengeCode,
		"currency", c.Reward.Currency)
	s.publish(ctx, event.NewChallengeEvent(event.ChallengeRewardClaimed, accountID, challengeCode, c.Reward.Currency))

	return &domain.ClaimResult{
		ChallengeCode:  challengeCode,
		CurrencyGained: c.Reward.Currency,
		Currency:       garden.Currency,
	}, nil
}

// claimablePeriod picks the newest completed, unclaimed period of the challenge.
// A reward earned in a window that has since rolled over stays claimable.
// Without one, the newest period decides the error.
func (s *service) claimablePeriod(ctx context.Context, accountID, challengeCode string) (time.Time, error) {
	participations, err := s.repo.ListParticipations(ctx, accountID)
	if err != nil {
		return time.Time{}, err
	}
	var newest, claimable *domain.Participation
	for i := range participations {
		p := &participations[i]
		if p.ChallengeCode != challengeCode {
			continue
		}
		if newest == nil || p.PeriodStart.After(newest.PeriodStart) {
			newest = p
		}
		if p.IsCompleted && !p.RewardClaimed && (claimable == nil || p.PeriodStart.After(claimable.PeriodStart)) {
			claimable = p
		}
	}
	switch {
	case claimable != nil:
		return claimable.PeriodStart, nil
	case newest == nil:
		return time.Time{}, domain.ErrParticipationNotFound
	case !newest.IsCompleted:
		return time.Time{}, domain.ErrChallengeNotCompleted
	default:
		return time.Time{}, domain.ErrRewardAlreadyClaimed
	}
}

// revertClaim clears RewardClaimed so a failed credit can be claimed again
func (s *service) revertClaim(ctx context.Context, accountID, challengeCode string, period time.Time) {
	err := s.retry(ctx, func() error {
		p, err := s.repo.GetParticipation(ctx, accountID, challengeCode, period)
		if err != nil {
			return err
		}
		p.RewardClaimed = false
		return s.repo.UpdateParticipation(ctx, p)
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgCompensateFailed, "account_id", accountID, "challenge", challengeCode, "error", err)
	}
}

func (s *service) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err = fn(); !errors.Is(err, domain.ErrConcurrentUpdate) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("%w: "+ErrMsgRetriesExhausted, err, s.maxRetries)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
