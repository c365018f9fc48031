package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/finher/internal/models"
)

const userColumns = `id, name, email, password_hash, role, otp_code, otp_expires, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	var otpCode sql.NullString
	var otpExpires sql.NullTime
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&otpCode, &otpExpires, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if otpCode.Valid {
		u.OTPCode = &otpCode.String
	}
	if otpExpires.Valid {
		u.OTPExpires = &otpExpires.Time
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя. Повтор email возвращает models.ErrDuplicateEmail.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (id, name, email, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query,
		uuid.NewString(), user.Name, user.Email, user.PasswordHash, user.Role))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по email (в нижнем регистре).
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// SetPasscode сохраняет код сброса пароля, заменяя ранее выданный.
func (s *Storage) SetPasscode(ctx context.Context, userID, code string, expires time.Time) error {
	const op = "storage.SetPasscode"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET otp_code = $1, otp_expires = $2, updated_at = NOW()
			  WHERE id = $3`
	res, err := s.DB.ExecContext(ctx, query, code, expires, userID)
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

// ResetPassword заменяет хэш пароля и очищает код, только если код всё ещё равен code.
// Если код уже использован или заменён, возвращает models.ErrInvalidPasscode.
func (s *Storage) ResetPassword(ctx context.Context, userID, code, passwordHash string) error {
	const op = "storage.ResetPassword"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET password_hash = $1, otp_code = NULL, otp_expires = NULL, updated_at = NOW()
			  WHERE id = $2 AND otp_code = $3`
	res, err := s.DB.ExecContext(ctx, query, passwordHash, userID, code)
	if err != nil {
		return wrapErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrInvalidPasscode)
	}
	return nil
}

// SetRole меняет роль пользователя с указанным email.
func (s *Storage) SetRole(ctx context.Context, email, role string) error {
	const op = "storage.SetRole"
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = NOW() WHERE email = $2`, role, email)
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
