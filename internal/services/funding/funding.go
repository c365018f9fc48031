// Package funding содержит бизнес-логику заявок на финансирование и их кеширование.
package funding

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Repository определяет методы для работы с заявками в хранилище.
type Repository interface {
	CreateFundingRequest(ctx context.Context, in models.FundingRequestInput, ownerID string) (*models.FundingRequest, error)
	GetFundingRequest(ctx context.Context, id string) (*models.FundingRequest, error)
	ListFundingRequests(ctx context.Context) ([]*models.FundingRequest, error)
	ListFundingRequestsByOwner(ctx context.Context, ownerID string) ([]*models.FundingRequest, error)
	UpdateFundingRequest(ctx context.Context, id string, in models.FundingRequestInput) (*models.FundingRequest, error)
	DeleteFundingRequest(ctx context.Context, id string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// FundingService реализует бизнес-логику работы с заявками.
// Ошибки кеша не прерывают запрос: данные читаются из хранилища.
type FundingService struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

// NewFundingService создает новый экземпляр FundingService.
func NewFundingService(repo Repository, cache Cache, cacheTTL time.Duration, log *slog.Logger) *FundingService {
	return &FundingService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func cacheKey(id string) string {
	return "funding_request:" + id
}

// Create сохраняет заявку от имени actor.
func (s *FundingService) Create(ctx context.Context, in models.FundingRequestInput, actor access.Actor) (*models.FundingRequest, error) {
	const op = "services.funding.Create"
	f, err := s.repo.CreateFundingRequest(ctx, in, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created funding request", slog.String("id", f.ID), slog.String("owner", actor.UserID))
	return f, nil
}

// List возвращает все заявки.
func (s *FundingService) List(ctx context.Context) ([]*models.FundingRequest, error) {
	const op = "services.funding.List"
	list, err := s.repo.ListFundingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// ListMine возвращает заявки пользователя actor.
func (s *FundingService) ListMine(ctx context.Context, actor access.Actor) ([]*models.FundingRequest, error) {
	const op = "services.funding.ListMine"
	list, err := s.repo.ListFundingRequestsByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// Read возвращает заявку по ID, используя кеш или репозиторий.
func (s *FundingService) Read(ctx context.Context, id string) (*models.FundingRequest, error) {
	const op = "services.funding.Read"
	key := cacheKey(id)

	var cached models.FundingRequest
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	f, err := s.repo.GetFundingRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, f, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return f, nil
}

// Update перезаписывает заявку, если actor её владелец или администратор.
func (s *FundingService) Update(ctx context.Context, id string, in models.FundingRequestInput, actor access.Actor) (*models.FundingRequest, error) {
	const op = "services.funding.Update"
	current, err := s.repo.GetFundingRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := access.Authorize(current, actor); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateFundingRequest(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// Delete удаляет заявку, если actor её владелец или администратор.
func (s *FundingService) Delete(ctx context.Context, id string, actor access.Actor) error {
	const op = "services.funding.Delete"
	current, err := s.repo.GetFundingRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := access.Authorize(current, actor); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteFundingRequest(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, id)
	s.log.Info("deleted funding request", slog.String("id", id), slog.String("by", actor.UserID))
	return nil
}

func (s *FundingService) invalidate(ctx context.Context, id string) {
	key := cacheKey(id)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), sl.Err(err))
	}
}
