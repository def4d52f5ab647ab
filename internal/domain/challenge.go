package domain

import (
	"math"
	"time"
)

// RequirementLevelUp is a requirement tag advanced by actions that max out a plant
const RequirementLevelUp = "level_up"

// Difficulty of a challenge
type Difficulty string

// Difficulty values
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Category of a challenge
type Category string

// Category values
const (
	CategoryDaily   Category = "daily"
	CategoryWeekly  Category = "weekly"
	CategoryMonthly Category = "monthly"
	CategorySpecial Category = "special"
)

// UnlimitedParticipants marks a challenge without a capacity limit
const UnlimitedParticipants = -1

// Requirement is one sub-goal of a challenge
type Requirement struct {
	Action      string `json:"action"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// Challenge is a global, time-boxed multi-requirement goal
type Challenge struct {
	Code                string        `json:"code"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	StartTime           time.Time     `json:"start_date"`
	EndTime             time.Time     `json:"end_date"`
	Requirements        []Requirement `json:"requirements"`
	Reward              Reward        `json:"reward"`
	MaxParticipants     int           `json:"max_participants"`
	CurrentParticipants int           `json:"current_participants"`
	IsActive            bool          `json:"is_active"`
	Difficulty          Difficulty    `json:"difficulty"`
	Category            Category      `json:"category"`
	CreatedAt           time.Time     `json:"created_at"`
}

// IsOpenAt reports whether the challenge is active and now falls in [StartTime, EndTime)
func (c *Challenge) IsOpenAt(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartTime) && now.Before(c.EndTime)
}

// InPeriod reports whether p belongs to the challenge's current window
func (c *Challenge) InPeriod(p *Participation) bool {
	return p != nil && p.ChallengeCode == c.Code && p.PeriodStart.Equal(c.StartTime)
}

// HasCapacity reports whether another participant can join
func (c *Challenge) HasCapacity() bool {
	return c.MaxParticipants < 0 || c.CurrentParticipants < c.MaxParticipants
}

// TimeRemaining is zero once now passes EndTime, otherwise EndTime - now
func (c *Challenge) TimeRemaining(now time.Time) time.Duration {
	if !now.Before(c.EndTime) {
		return 0
	}
	return c.EndTime.Sub(now)
}

// RequirementProgress tracks one requirement inside a participation
type RequirementProgress struct {
	Action        string `json:"action"`
	CurrentCount  int    `json:"current_count"`
	RequiredCount int    `json:"required_count"`
	Completed     bool   `json:"completed"`
}

// Participation is an account's enrollment in one window of a challenge.
// PeriodStart is the challenge StartTime at enrollment; a re-seeded window
// starts a new period with fresh participations.
type Participation struct {
	AccountID     string                `json:"account_id"`
	ChallengeCode string                `json:"challenge_code"`
	PeriodStart   time.Time             `json:"period_start"`
	Progress      []RequirementProgress `json:"progress"`
	IsCompleted   bool                  `json:"is_completed"`
	JoinedAt      time.Time             `json:"joined_at"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	RewardClaimed bool                  `json:"reward_claimed"`
	Version       int64                 `json:"-"`
}

// NewParticipation creates a zeroed progress entry per requirement
func NewParticipation(accountID string, c *Challenge, now time.Time) *Participation {
	progress := make([]RequirementProgress, len(c.Requirements))
	for i, req := range c.Requirements {
		progress[i] = RequirementProgress{
			Action:        req.Action,
			CurrentCount:  0,
			RequiredCount: req.Count,
			Completed:     req.Count <= 0,
		}
	}
	return &Participation{
		AccountID:     accountID,
		ChallengeCode: c.Code,
		PeriodStart:   c.StartTime,
		Progress:      progress,
		JoinedAt:      now,
	}
}

// OverallProgress is the rounded percentage of completed requirements
func (p *Participation) OverallProgress() int {
	if p == nil || len(p.Progress) == 0 {
		return 0
	}
	completed := 0
	for _, rp := range p.Progress {
		if rp.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(p.Progress)) * 100))
}

// Clone returns a deep copy
func (p *Participation) Clone() *Participation {
	c := *p
	c.Progress = append([]RequirementProgress{}, p.Progress...)
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// UserProgress is the caller's view of their participation in a challenge
type UserProgress struct {
	IsParticipating bool                  `json:"is_participating"`
	IsCompleted     bool                  `json:"is_completed"`
	OverallProgress int                   `json:"overall_progress"`
	Progress        []RequirementProgress `json:"progress"`
	JoinedAt        *time.Time            `json:"joined_at"`
	CompletedAt     *time.Time            `json:"completed_at"`
	RewardClaimed   bool                  `json:"reward_claimed"`
}

// ChallengeWithProgress joins a challenge with the caller's progress
type ChallengeWithProgress struct {
	Challenge
	IsCurrentlyActive bool         `json:"is_currently_active"`
	TimeRemainingMs   int64        `json:"time_remaining"`
	UserProgress      UserProgress `json:"user_progress"`
}

// ChallengeList is the listing returned to a caller
type ChallengeList struct {
	Challenges        []ChallengeWithProgress `json:"challenges"`
	TotalActive       int                     `json:"total_active"`
	UserParticipating int                     `json:"user_participating"`
}

// EnrollmentResult is returned after a successful enrollment
type EnrollmentResult struct {
	Challenge     Challenge      `json:"challenge"`
	UserProgress  UserProgress   `json:"user_progress"`
	Participation *Participation `json:"-"`
}

// ClaimResult is returned after a challenge reward is credited
type ClaimResult struct {
	ChallengeCode  string `json:"challenge_code"`
	CurrencyGained int    `json:"currency_gained"`
	Currency       int    `json:"currency"`
}
