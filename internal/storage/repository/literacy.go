package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/finher/internal/models"
)

const literacyColumns = `id, title, description, resource_type, url, created_by, created_at, updated_at`

func scanLiteracyResource(row scanner) (*models.LiteracyResource, error) {
	l := &models.LiteracyResource{}
	var createdBy sql.NullString
	if err := row.Scan(&l.ID, &l.Title, &l.Description, &l.ResourceType, &l.URL,
		&createdBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.CreatedBy = createdBy.String
	return l, nil
}

// CreateLiteracyResource сохраняет материал. Пустой ownerID сохраняется как NULL.
func (s *Storage) CreateLiteracyResource(ctx context.Context, in models.LiteracyResourceInput, ownerID string) (*models.LiteracyResource, error) {
	const op = "storage.CreateLiteracyResource"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO literacy_resources (id, title, description, resource_type, url, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + literacyColumns
	l, err := scanLiteracyResource(s.DB.QueryRowContext(ctx, query,
		uuid.NewString(), in.Title, in.Description, in.ResourceType, in.URL, nullString(ownerID)))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return l, nil
}

// SearchLiteracyResources ищет подстроку search в заголовке и описании без учёта регистра.
// Пустой search возвращает все материалы. Новые материалы идут первыми.
func (s *Storage) SearchLiteracyResources(ctx context.Context, search string) ([]*models.LiteracyResource, error) {
	const op = "storage.SearchLiteracyResources"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var (
		rows *sql.Rows
		err  error
	)
	if search == "" {
		rows, err = s.DB.QueryContext(ctx,
			`SELECT `+literacyColumns+` FROM literacy_resources ORDER BY created_at DESC`)
	} else {
		pattern := "%" + escapeLike(search) + "%"
		rows, err = s.DB.QueryContext(ctx,
			`SELECT `+literacyColumns+` FROM literacy_resources
			 WHERE title ILIKE $1 OR description ILIKE $1
			 ORDER BY created_at DESC`, pattern)
	}
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.LiteracyResource, 0)
	for rows.Next() {
		l, err := scanLiteracyResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetLiteracyResource возвращает материал по ID или models.ErrNotFound.
func (s *Storage) GetLiteracyResource(ctx context.Context, id string) (*models.LiteracyResource, error) {
	const op = "storage.GetLiteracyResource"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + literacyColumns + ` FROM literacy_resources WHERE id = $1`
	l, err := scanLiteracyResource(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return l, nil
}

// UpdateLiteracyResource перезаписывает изменяемые поля материала.
func (s *Storage) UpdateLiteracyResource(ctx context.Context, id string, in models.LiteracyResourceInput) (*models.LiteracyResource, error) {
	const op = "storage.UpdateLiteracyResource"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE literacy_resources
			  SET title = $1, description = $2, resource_type = $3, url = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING ` + literacyColumns
	l, err := scanLiteracyResource(s.DB.QueryRowContext(ctx, query,
		in.Title, in.Description, in.ResourceType, in.URL, id))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return l, nil
}

// DeleteLiteracyResource удаляет материал. Отсутствующий материал возвращает models.ErrNotFound.
func (s *Storage) DeleteLiteracyResource(ctx context.Context, id string) error {
	const op = "storage.DeleteLiteracyResource"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM literacy_resources WHERE id = $1`, id)
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

// SeedLiteracyResource добавляет материал без владельца, если материала с таким заголовком ещё нет.
// Возвращает true, если запись была вставлена.
func (s *Storage) SeedLiteracyResource(ctx context.Context, in models.LiteracyResourceInput) (bool, error) {
	const op = "storage.SeedLiteracyResource"
	query := `INSERT INTO literacy_resources (id, title, description, resource_type, url)
			  SELECT $1, $2, $3, $4, $5
			  WHERE NOT EXISTS (SELECT 1 FROM literacy_resources WHERE title = $2)`
	res, err := s.DB.ExecContext(ctx, query,
		uuid.NewString(), in.Title, in.Description, in.ResourceType, in.URL)
	if err != nil {
		return false, wrapErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}
