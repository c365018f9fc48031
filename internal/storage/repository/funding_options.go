package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/finher/internal/models"
)

// ListFundingOptions возвращает все программы финансирования в алфавитном порядке.
func (s *Storage) ListFundingOptions(ctx context.Context) ([]*models.FundingOption, error) {
	const op = "storage.ListFundingOptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, eligibility, application_link, created_at, updated_at
			  FROM funding_options
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.FundingOption, 0)
	for rows.Next() {
		var o models.FundingOption
		if err = rows.Scan(&o.ID, &o.Name, &o.Description, &o.Eligibility,
			&o.ApplicationLink, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpsertFundingOption вставляет программу или обновляет существующую с тем же названием.
func (s *Storage) UpsertFundingOption(ctx context.Context, o models.FundingOption) error {
	const op = "storage.UpsertFundingOption"
	query := `INSERT INTO funding_options (id, name, description, eligibility, application_link)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (name) DO UPDATE
			  SET description = EXCLUDED.description,
			      eligibility = EXCLUDED.eligibility,
			      application_link = EXCLUDED.application_link,
			      updated_at = NOW()`
	if _, err := s.DB.ExecContext(ctx, query,
		uuid.NewString(), o.Name, o.Description, o.Eligibility, o.ApplicationLink); err != nil {
		return wrapErr(op, err)
	}
	return nil
}
