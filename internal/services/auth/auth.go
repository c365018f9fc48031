// Package auth содержит логику регистрации, входа, проверки токенов
// и сброса пароля по одноразовому коду.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/finher/internal/config"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/lib/jwt"
	"github.com/magabrotheeeer/finher/internal/lib/otp"
	"github.com/magabrotheeeer/finher/internal/lib/password"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email или models.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// SetPasscode сохраняет код сброса пароля и срок его действия.
	SetPasscode(ctx context.Context, userID, code string, expires time.Time) error
	// ResetPassword меняет хэш пароля, если сохранённый код всё ещё равен code.
	ResetPassword(ctx context.Context, userID, code, passwordHash string) error
}

// PasswordHasher хеширует и проверяет пароли.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Throttle ограничивает частоту повторной отправки кода.
type Throttle interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Notifier доставляет код сброса пароля пользователю.
type Notifier interface {
	SendPasscode(ctx context.Context, msg models.PasscodeMessage) error
}

// AuthService отвечает за регистрацию, вход, валидацию JWT и сброс пароля.
type AuthService struct {
	users    UserRepository
	hasher   PasswordHasher
	jwtMaker jwt.Maker
	throttle Throttle
	notifier Notifier
	cfg      config.Auth
	log      *slog.Logger

	now      func() time.Time
	passcode func() (string, error)
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(
	users UserRepository,
	hasher PasswordHasher,
	jwtMaker jwt.Maker,
	throttle Throttle,
	notifier Notifier,
	cfg config.Auth,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		jwtMaker: jwtMaker,
		throttle: throttle,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		passcode: otp.Generate,
	}
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создает нового пользователя с ролью user.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.PublicUser, error) {
	const op = "services.auth.Register"
	email = NormalizeEmail(email)

	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, models.ErrDuplicateEmail)
	case !errors.Is(err, models.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("user_id", user.ID))
	pub := user.Public()
	return &pub, nil
}

// Login проверяет пароль пользователя и выпускает JWT.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.PublicUser, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	pub := user.Public()
	return token, &pub, nil
}

// VerifyToken проверяет JWT и возвращает пользователя, от имени которого выполняется запрос.
func (s *AuthService) VerifyToken(token string) (access.Actor, error) {
	const op = "services.auth.VerifyToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		s.log.Debug("token rejected", sl.Err(err))
		return access.Actor{}, fmt.Errorf("%s: %w", op, models.ErrInvalidToken)
	}
	return access.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}

func throttleKey(email string) string {
	return "passcode:" + email
}

// RequestPasswordReset выдает новый код сброса пароля и передает его Notifier.
// Предыдущий неиспользованный код перестает действовать.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "services.auth.RequestPasswordReset"
	email = NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, models.ErrUnknownEmail)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.throttle != nil && s.cfg.ResendWindow > 0 {
		ok, err := s.throttle.Acquire(ctx, throttleKey(email), s.cfg.ResendWindow)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return fmt.Errorf("%s: %w", op, models.ErrPasscodeThrottled)
		}
	}

	if err := s.issuePasscode(ctx, user); err != nil {
		// код не доставлен, повторный запрос не должен упираться в ограничение
		if s.throttle != nil && s.cfg.ResendWindow > 0 {
			if relErr := s.throttle.Release(ctx, throttleKey(email)); relErr != nil {
				s.log.Warn("failed to release passcode throttle", sl.Err(relErr))
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *AuthService) issuePasscode(ctx context.Context, user *models.User) error {
	code, err := s.passcode()
	if err != nil {
		return err
	}
	expires := s.now().Add(s.passcodeTTL())
	if err := s.users.SetPasscode(ctx, user.ID, code, expires); err != nil {
		return err
	}
	if err := s.notifier.SendPasscode(ctx, models.PasscodeMessage{
		Email:     user.Email,
		Name:      user.Name,
		Code:      code,
		ExpiresAt: expires,
	}); err != nil {
		return err
	}
	s.log.Info("passcode issued", slog.String("user_id", user.ID))
	return nil
}

func (s *AuthService) passcodeTTL() time.Duration {
	if s.cfg.PasscodeTTL <= 0 {
		return 10 * time.Minute
	}
	return s.cfg.PasscodeTTL
}

// ConfirmPasswordReset меняет пароль, если код совпадает и не истёк. Код одноразовый.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, email, passcode, newPassword string) error {
	const op = "services.auth.ConfirmPasswordReset"

	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, models.ErrInvalidPasscode)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if user.OTPCode == nil || passcode == "" || *user.OTPCode != passcode {
		return fmt.Errorf("%s: %w", op, models.ErrInvalidPasscode)
	}
	if user.OTPExpires == nil || s.now().After(*user.OTPExpires) {
		return fmt.Errorf("%s: %w", op, models.ErrPasscodeExpired)
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.users.ResetPassword(ctx, user.ID, passcode, hashed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("password reset", slog.String("user_id", user.ID))
	return nil
}
