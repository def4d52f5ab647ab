package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

const gardenColumns = `account_id, plants, currency, total_level, action_counts, version, created_at, updated_at`

func scanGarden(row pgx.Row) (*domain.Garden, error) {
	var (
		g          domain.Garden
		plantsJSON []byte
		countsJSON []byte
	)
	if err := row.Scan(&g.AccountID, &plantsJSON, &g.Currency, &g.TotalLevel, &countsJSON, &g.Version, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("plants", plantsJSON, &g.Plants); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("action counts", countsJSON, &g.ActionCounts); err != nil {
		return nil, err
	}
	if g.Plants == nil {
		g.Plants = []domain.Plant{}
	}
	if g.ActionCounts == nil {
		g.ActionCounts = map[domain.ActionType]int{}
	}
	return &g, nil
}

// GetGarden loads the account's garden
func (s *Store) GetGarden(ctx context.Context, accountID string) (*domain.Garden, error) {
	row := s.db.QueryRow(ctx, `SELECT `+gardenColumns+` FROM gardens WHERE account_id = $1`, accountID)
	g, err := scanGarden(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGardenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGarden, err)
	}
	return g, nil
}

// CreateGarden inserts a new garden; when a concurrent request created it first the stored row wins
func (s *Store) CreateGarden(ctx context.Context, garden *domain.Garden) (*domain.Garden, error) {
	plantsJSON, err := marshalJSON("plants", garden.Plants)
	if err != nil {
		return nil, err
	}
	countsJSON, err := marshalJSON("action counts", garden.ActionCounts)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO gardens (account_id, plants, currency, total_level, action_counts, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 1, $6, $6)
		ON CONFLICT (account_id) DO NOTHING
		RETURNING `+gardenColumns,
		garden.AccountID, plantsJSON, garden.Currency, garden.TotalLevel, countsJSON, garden.CreatedAt)

	created, err := scanGarden(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.GetGarden(ctx, garden.AccountID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateGarden, err)
	}
	return created, nil
}

// UpdateGarden writes the garden guarded by its version
func (s *Store) UpdateGarden(ctx context.Context, garden *domain.Garden) error {
	plantsJSON, err := marshalJSON("plants", garden.Plants)
	if err != nil {
		return err
	}
	countsJSON, err := marshalJSON("action counts", garden.ActionCounts)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `
		UPDATE gardens
		SET plants = $2, currency = $3, total_level = $4, action_counts = $5,
		    version = version + 1, updated_at = $6
		WHERE account_id = $1 AND version = $7`,
		garden.AccountID, plantsJSON, garden.Currency, garden.TotalLevel, countsJSON, garden.UpdatedAt, garden.Version)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGarden, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := s.GetGarden(ctx, garden.AccountID); err != nil {
			return err
		}
		return domain.ErrConcurrentUpdate
	}

	garden.Version++
	return nil
}
