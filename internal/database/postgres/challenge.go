package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

const participationColumns = `account_id, challenge_code, period_start, progress, is_completed, joined_at, completed_at, reward_claimed, version`

func scanParticipation(row pgx.Row) (*domain.Participation, error) {
	var (
		p            domain.Participation
		progressJSON []byte
	)
	if err := row.Scan(&p.AccountID, &p.ChallengeCode, &p.PeriodStart, &progressJSON, &p.IsCompleted,
		&p.JoinedAt, &p.CompletedAt, &p.RewardClaimed, &p.Version); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("progress", progressJSON, &p.Progress); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetParticipation loads one participation
func (s *Store) GetParticipation(ctx context.Context, accountID, challengeCode string, periodStart time.Time) (*domain.Participation, error) {
	p, err := scanParticipation(s.db.QueryRow(ctx,
		`SELECT `+participationColumns+` FROM challenge_participations
		 WHERE account_id = $1 AND challenge_code = $2 AND period_start = $3`,
		accountID, challengeCode, periodStart))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrParticipationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipation, err)
	}
	return p, nil
}

// ListParticipations returns all of an account's participations
func (s *Store) ListParticipations(ctx context.Context, accountID string) ([]domain.Participation, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+participationColumns+` FROM challenge_participations WHERE account_id = $1 ORDER BY joined_at, period_start`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipations, err)
	}
	defer rows.Close()

	var out []domain.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipations, err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipations, err)
	}
	return out, nil
}

// Enroll inserts the participation and reserves a seat in one transaction.
// The insert runs first so a duplicate enrollment reports ErrAlreadyParticipating
// even when the challenge is also full.
func (s *Store) Enroll(ctx context.Context, p *domain.Participation) (*domain.Challenge, error) {
	progressJSON, err := marshalJSON("progress", p.Progress)
	if err != nil {
		return nil, err
	}

	tx, err := beginTx(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO challenge_participations (account_id, challenge_code, period_start, progress, is_completed, joined_at, reward_claimed, version)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, 1)
		ON CONFLICT (account_id, challenge_code, period_start) DO NOTHING`,
		p.AccountID, p.ChallengeCode, p.PeriodStart, progressJSON, p.IsCompleted, p.JoinedAt)
	if err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertParticipation, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrAlreadyParticipating
	}

	challenge, err := scanChallenge(tx.QueryRow(ctx, `
		UPDATE challenges
		SET current_participants = current_participants + 1
		WHERE code = $1 AND start_time = $2 AND (max_participants < 0 OR current_participants < max_participants)
		RETURNING `+challengeColumns,
		p.ChallengeCode, p.PeriodStart))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.seatUnavailable(ctx, tx, p)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReserveSeat, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	p.Version = 1
	return challenge, nil
}

// UpdateParticipation writes progress, completion and claim state guarded by version
func (s *Store) UpdateParticipation(ctx context.Context, p *domain.Participation) error {
	progressJSON, err := marshalJSON("progress", p.Progress)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `
		UPDATE challenge_participations
		SET progress = $3, is_completed = $4, completed_at = $5, reward_claimed = $6, version = version + 1
		WHERE account_id = $1 AND challenge_code = $2 AND period_start = $8 AND version = $7`,
		p.AccountID, p.ChallengeCode, progressJSON, p.IsCompleted, p.CompletedAt, p.RewardClaimed, p.Version, p.PeriodStart)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateParticipation, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := s.GetParticipation(ctx, p.AccountID, p.ChallengeCode, p.PeriodStart); err != nil {
			return err
		}
		return domain.ErrConcurrentUpdate
	}

	p.Version++
	return nil
}

// seatUnavailable tells a full challenge apart from a window that moved on
// since the participation was built.
func (s *Store) seatUnavailable(ctx context.Context, tx pgx.Tx, p *domain.Participation) error {
	var start time.Time
	err := tx.QueryRow(ctx, `SELECT start_time FROM challenges WHERE code = $1`, p.ChallengeCode).Scan(&start)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReserveSeat, err)
	}
	if !start.Equal(p.PeriodStart) {
		return domain.ErrChallengeInactive
	}
	return domain.ErrChallengeFull
}
