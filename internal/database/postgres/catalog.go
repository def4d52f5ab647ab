package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// ListAchievements returns every achievement definition, active or not
func (s *Store) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	rows, err := s.db.Query(ctx, `
		SELECT code, title, description, icon_url, rarity, criteria,
		       reward_currency, reward_experience, is_active, created_at
		FROM achievements
		ORDER BY created_at, code`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var (
			a            domain.Achievement
			criteriaJSON []byte
		)
		if err := rows.Scan(&a.Code, &a.Title, &a.Description, &a.IconURL, &a.Rarity, &criteriaJSON,
			&a.Reward.Currency, &a.Reward.Experience, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
		}
		if err := unmarshalJSON("criteria", criteriaJSON, &a.Criteria); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}
	return achievements, nil
}

// UpsertAchievement inserts or replaces a definition by code
func (s *Store) UpsertAchievement(ctx context.Context, a domain.Achievement) error {
	criteriaJSON, err := marshalJSON("criteria", a.Criteria)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO achievements (code, title, description, icon_url, rarity, criteria,
		                          reward_currency, reward_experience, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO UPDATE SET
			current_participants = CASE
				WHEN challenges.start_time = EXCLUDED.start_time THEN challenges.current_participants
				ELSE 0
			END,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			icon_url = EXCLUDED.icon_url,
			rarity = EXCLUDED.rarity,
			criteria = EXCLUDED.criteria,
			reward_currency = EXCLUDED.reward_currency,
			reward_experience = EXCLUDED.reward_experience,
			is_active = EXCLUDED.is_active`,
		a.Code, a.Title, a.Description, a.IconURL, a.Rarity, criteriaJSON,
		a.Reward.Currency, a.Reward.Experience, a.IsActive, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertAchievement, a.Code, err)
	}
	return nil
}

const challengeColumns = `code, title, description, start_time, end_time, requirements,
	reward_currency, reward_experience, max_participants, current_participants,
	is_active, difficulty, category, created_at`

func scanChallenge(row pgx.Row) (*domain.Challenge, error) {
	var (
		c       domain.Challenge
		reqJSON []byte
	)
	if err := row.Scan(&c.Code, &c.Title, &c.Description, &c.StartTime, &c.EndTime, &reqJSON,
		&c.Reward.Currency, &c.Reward.Experience, &c.MaxParticipants, &c.CurrentParticipants,
		&c.IsActive, &c.Difficulty, &c.Category, &c.CreatedAt); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("requirements", reqJSON, &c.Requirements); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListChallenges returns every challenge definition ordered by end time
func (s *Store) ListChallenges(ctx context.Context) ([]domain.Challenge, error) {
	rows, err := s.db.Query(ctx, `SELECT `+challengeColumns+` FROM challenges ORDER BY end_time, code`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChallenges, err)
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChallenges, err)
		}
		challenges = append(challenges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChallenges, err)
	}
	return challenges, nil
}

// GetChallenge loads one challenge with its current participant count
func (s *Store) GetChallenge(ctx context.Context, code string) (*domain.Challenge, error) {
	c, err := scanChallenge(s.db.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE code = $1`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChallengeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetChallenge, err)
	}
	return c, nil
}

// UpsertChallenge inserts or replaces a definition by code. The participant
// count of an existing row is kept while its window is unchanged and reset
// when a new window starts.
func (s *Store) UpsertChallenge(ctx context.Context, c domain.Challenge) error {
	reqJSON, err := marshalJSON("requirements", c.Requirements)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO challenges (code, title, description, start_time, end_time, requirements,
		                        reward_currency, reward_experience, max_participants, current_participants,
		                        is_active, difficulty, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10, $11, $12, $13)
		ON CONFLICT (code) DO UPDATE SET
			current_participants = CASE
				WHEN challenges.start_time = EXCLUDED.start_time THEN challenges.current_participants
				ELSE 0
			END,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			requirements = EXCLUDED.requirements,
			reward_currency = EXCLUDED.reward_currency,
			reward_experience = EXCLUDED.reward_experience,
			max_participants = EXCLUDED.max_participants,
			is_active = EXCLUDED.is_active,
			difficulty = EXCLUDED.difficulty,
			category = EXCLUDED.category`,
		c.Code, c.Title, c.Description, c.StartTime, c.EndTime, reqJSON,
		c.Reward.Currency, c.Reward.Experience, c.MaxParticipants,
		c.IsActive, c.Difficulty, c.Category, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertChallenge, c.Code, err)
	}
	return nil
}
