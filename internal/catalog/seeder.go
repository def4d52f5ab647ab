package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/logger"
	"github.com/osse101/Greenhouse_Go/internal/repository"
	"github.com/osse101/Greenhouse_Go/internal/validation"
)

// AchievementsConfig is the layout of configs/achievements.json
type AchievementsConfig struct {
	Version      string           `json:"version"`
	Description  string           `json:"description"`
	Achievements []AchievementDef `json:"achievements"`
}

// AchievementDef is one achievement in the seed file
type AchievementDef struct {
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IconURL     string          `json:"icon_url"`
	Rarity      domain.Rarity   `json:"rarity"`
	Criteria    domain.Criteria `json:"criteria"`
	Reward      domain.Reward   `json:"reward"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// ChallengesConfig is the layout of configs/challenges.json
type ChallengesConfig struct {
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Challenges  []ChallengeDef `json:"challenges"`
}

// ChallengeDef is one challenge in the seed file.
// The window opens at seeding time and lasts DurationHours.
type ChallengeDef struct {
	Code            string               `json:"code"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	DurationHours   int                  `json:"duration_hours"`
	Requirements    []domain.Requirement `json:"requirements"`
	Reward          domain.Reward        `json:"reward"`
	MaxParticipants *int                 `json:"max_participants,omitempty"`
	Difficulty      domain.Difficulty    `json:"difficulty"`
	Category        domain.Category      `json:"category"`
	IsActive        *bool                `json:"is_active,omitempty"`
}

// SeedResult counts what a seeding run wrote
type SeedResult struct {
	Achievements int
	Challenges   int
	WindowsKept  int
}

// Seeder loads catalog definitions from JSON and upserts them
type Seeder struct {
	reader  repository.Catalog
	writer  repository.CatalogWriter
	schemas validation.SchemaValidator
	now     func() time.Time
}

// NewSeeder creates a seeder writing through writer; reader is used to keep open challenge windows
func NewSeeder(reader repository.Catalog, writer repository.CatalogWriter) *Seeder {
	return &Seeder{
		reader:  reader,
		writer:  writer,
		schemas: validation.NewSchemaValidator(),
		now:     time.Now,
	}
}

// Seed loads both files and upserts every definition
func (s *Seeder) Seed(ctx context.Context, achievementsPath, challengesPath string) (*SeedResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSeedStarted, "achievements", achievementsPath, "challenges", challengesPath)

	achievements, err := s.LoadAchievements(achievementsPath)
	if err != nil {
		return nil, err
	}
	challenges, err := s.LoadChallenges(challengesPath)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &SeedResult{}
	for _, a := range achievements {
		a.CreatedAt = now
		if err := s.writer.UpsertAchievement(ctx, a); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertFailed, a.Code, err)
		}
		result.Achievements++
		log.Debug(LogMsgSeededAchievement, "code", a.Code)
	}

	for _, def := range challenges {
		c := def.toChallenge(now)
		existing, err := s.reader.GetChallenge(ctx, c.Code)
		switch {
		case err == nil && existing.IsOpenAt(now):
			c.StartTime, c.EndTime, c.CreatedAt = existing.StartTime, existing.EndTime, existing.CreatedAt
			result.WindowsKept++
			log.Debug(LogMsgWindowKept, "code", c.Code, "ends", existing.EndTime)
		case err != nil && !errors.Is(err, domain.ErrChallengeNotFound):
			return nil, err
		}
		if err := s.writer.UpsertChallenge(ctx, c); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertFailed, c.Code, err)
		}
		result.Challenges++
		log.Debug(LogMsgSeededChallenge, "code", c.Code)
	}

	log.Info(LogMsgSeedCompleted, "achievements", result.Achievements,
		"challenges", result.Challenges, "windows_kept", result.WindowsKept)
	return result, nil
}

// LoadAchievements reads, schema-checks and converts the achievements file
func (s *Seeder) LoadAchievements(path string) ([]domain.Achievement, error) {
	var cfg AchievementsConfig
	if err := s.load(path, validation.AchievementsSchemaPath, &cfg); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cfg.Achievements))
	out := make([]domain.Achievement, 0, len(cfg.Achievements))
	for _, def := range cfg.Achievements {
		if seen[def.Code] {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateCode, domain.ErrInvalidInput, def.Code)
		}
		seen[def.Code] = true
		if err := validateCriteria(def.Code, def.Criteria); err != nil {
			return nil, err
		}
		out = append(out, domain.Achievement{
			Code:        def.Code,
			Title:       def.Title,
			Description: def.Description,
			IconURL:     def.IconURL,
			Rarity:      def.Rarity,
			Criteria:    def.Criteria,
			Reward:      def.Reward,
			IsActive:    def.IsActive == nil || *def.IsActive,
		})
	}
	return out, nil
}

// LoadChallenges reads and schema-checks the challenges file
func (s *Seeder) LoadChallenges(path string) ([]ChallengeDef, error) {
	var cfg ChallengesConfig
	if err := s.load(path, validation.ChallengesSchemaPath, &cfg); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cfg.Challenges))
	for _, def := range cfg.Challenges {
		if seen[def.Code] {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateCode, domain.ErrInvalidInput, def.Code)
		}
		seen[def.Code] = true
	}
	return cfg.Challenges, nil
}

func (s *Seeder) load(path, schemaPath string, into interface{}) error {
	resolved, err := validation.ResolvePath(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFailed, path, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFailed, path, err)
	}
	if err := s.schemas.ValidateBytes(data, schemaPath); err != nil {
		return fmt.Errorf(ErrMsgSchemaInvalid, path, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFailed, path, err)
	}
	return nil
}

func validateCriteria(code string, c domain.Criteria) error {
	ok := false
	switch c.Kind {
	case domain.CriteriaPlantCare:
		ok = c.Action.IsValid() && c.Count > 0
	case domain.CriteriaLevelReach:
		ok = c.Level > 0
	case domain.CriteriaCurrencyEarn:
		ok = c.Currency > 0
	}
	if !ok {
		return fmt.Errorf("%w: "+ErrMsgCriteriaParams, domain.ErrInvalidCriteria, code, c.Kind)
	}
	return nil
}

func (d ChallengeDef) toChallenge(now time.Time) domain.Challenge {
	maxParticipants := domain.UnlimitedParticipants
	if d.MaxParticipants != nil {
		maxParticipants = *d.MaxParticipants
	}
	return domain.Challenge{
		Code:            d.Code,
		Title:           d.Title,
		Description:     d.Description,
		StartTime:       now,
		EndTime:         now.Add(time.Duration(d.DurationHours) * time.Hour),
		Requirements:    append([]domain.Requirement(nil), d.Requirements...),
		Reward:          d.Reward,
		MaxParticipants: maxParticipants,
		IsActive:        d.IsActive == nil || *d.IsActive,
		Difficulty:      d.Difficulty,
		Category:        d.Category,
		CreatedAt:       now,
	}
}
