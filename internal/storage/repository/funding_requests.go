package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/finher/internal/models"
)

const fundingColumns = `id, entrepreneur_name, amount_requested, purpose, description,
	contact_phone, contact_address, created_by, created_at, updated_at`

func scanFundingRequest(row scanner) (*models.FundingRequest, error) {
	f := &models.FundingRequest{}
	if err := row.Scan(&f.ID, &f.EntrepreneurName, &f.AmountRequested, &f.Purpose, &f.Description,
		&f.ContactPhone, &f.ContactAddress, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFundingRequest сохраняет заявку от имени ownerID.
func (s *Storage) CreateFundingRequest(ctx context.Context, in models.FundingRequestInput, ownerID string) (*models.FundingRequest, error) {
	const op = "storage.CreateFundingRequest"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO funding_requests (id, entrepreneur_name, amount_requested, purpose,
			      description, contact_phone, contact_address, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + fundingColumns
	f, err := scanFundingRequest(s.DB.QueryRowContext(ctx, query,
		uuid.NewString(), in.EntrepreneurName, in.AmountRequested, in.Purpose,
		in.Description, in.ContactPhone, in.ContactAddress, ownerID))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return f, nil
}

// GetFundingRequest возвращает заявку по ID или models.ErrNotFound.
func (s *Storage) GetFundingRequest(ctx context.Context, id string) (*models.FundingRequest, error) {
	const op = "storage.GetFundingRequest"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + fundingColumns + ` FROM funding_requests WHERE id = $1`
	f, err := scanFundingRequest(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return f, nil
}

// ListFundingRequests возвращает все заявки, новые первыми.
func (s *Storage) ListFundingRequests(ctx context.Context) ([]*models.FundingRequest, error) {
	const op = "storage.ListFundingRequests"
	query := `SELECT ` + fundingColumns + ` FROM funding_requests ORDER BY created_at DESC`
	return s.queryFundingRequests(ctx, op, query)
}

// ListFundingRequestsByOwner возвращает заявки пользователя ownerID, новые первыми.
func (s *Storage) ListFundingRequestsByOwner(ctx context.Context, ownerID string) ([]*models.FundingRequest, error) {
	const op = "storage.ListFundingRequestsByOwner"
	query := `SELECT ` + fundingColumns + ` FROM funding_requests
			  WHERE created_by = $1
			  ORDER BY created_at DESC`
	return s.queryFundingRequests(ctx, op, query, ownerID)
}

func (s *Storage) queryFundingRequests(ctx context.Context, op, query string, args ...any) ([]*models.FundingRequest, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.FundingRequest, 0)
	for rows.Next() {
		f, err := scanFundingRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateFundingRequest перезаписывает изменяемые поля заявки. Владелец не меняется.
func (s *Storage) UpdateFundingRequest(ctx context.Context, id string, in models.FundingRequestInput) (*models.FundingRequest, error) {
	const op = "storage.UpdateFundingRequest"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE funding_requests
			  SET entrepreneur_name = $1, amount_requested = $2, purpose = $3, description = $4,
			      contact_phone = $5, contact_address = $6, updated_at = NOW()
			  WHERE id = $7
			  RETURNING ` + fundingColumns
	f, err := scanFundingRequest(s.DB.QueryRowContext(ctx, query,
		in.EntrepreneurName, in.AmountRequested, in.Purpose, in.Description,
		in.ContactPhone, in.ContactAddress, id))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return f, nil
}

// DeleteFundingRequest удаляет заявку. Отсутствующая заявка возвращает models.ErrNotFound.
func (s *Storage) DeleteFundingRequest(ctx context.Context, id string) error {
	const op = "storage.DeleteFundingRequest"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM funding_requests WHERE id = $1`, id)
	if err != nil {
		return wrapErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}
