// Package literacy содержит бизнес-логику обучающих материалов по финансовой грамотности.
package literacy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Repository определяет методы для работы с материалами в хранилище.
type Repository interface {
	CreateLiteracyResource(ctx context.Context, in models.LiteracyResourceInput, ownerID string) (*models.LiteracyResource, error)
	SearchLiteracyResources(ctx context.Context, search string) ([]*models.LiteracyResource, error)
	GetLiteracyResource(ctx context.Context, id string) (*models.LiteracyResource, error)
	UpdateLiteracyResource(ctx context.Context, id string, in models.LiteracyResourceInput) (*models.LiteracyResource, error)
	DeleteLiteracyResource(ctx context.Context, id string) error
}

type LiteracyService struct {
	repo Repository
	log  *slog.Logger
}

func NewLiteracyService(repo Repository, log *slog.Logger) *LiteracyService {
	return &LiteracyService{repo: repo, log: log}
}

// Normalize подставляет тип article, если он не указан.
func Normalize(in models.LiteracyResourceInput) models.LiteracyResourceInput {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	if in.ResourceType == "" {
		in.ResourceType = models.ResourceArticle
	}
	return in
}

// Search ищет материалы по подстроке в заголовке или описании. Пустой запрос возвращает все.
func (s *LiteracyService) Search(ctx context.Context, search string) ([]*models.LiteracyResource, error) {
	const op = "services.literacy.Search"
	list, err := s.repo.SearchLiteracyResources(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s *LiteracyService) Create(ctx context.Context, in models.LiteracyResourceInput, actor access.Actor) (*models.LiteracyResource, error) {
	const op = "services.literacy.Create"
	res, err := s.repo.CreateLiteracyResource(ctx, Normalize(in), actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created literacy resource", slog.String("id", res.ID))
	return res, nil
}

// Update перезаписывает материал, если actor его автор или администратор.
func (s *LiteracyService) Update(ctx context.Context, id string, in models.LiteracyResourceInput, actor access.Actor) (*models.LiteracyResource, error) {
	const op = "services.literacy.Update"
	current, err := s.repo.GetLiteracyResource(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := access.Authorize(current, actor); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res, err := s.repo.UpdateLiteracyResource(ctx, id, Normalize(in))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Delete удаляет материал, если actor его автор или администратор.
func (s *LiteracyService) Delete(ctx context.Context, id string, actor access.Actor) error {
	const op = "services.literacy.Delete"
	current, err := s.repo.GetLiteracyResource(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := access.Authorize(current, actor); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.DeleteLiteracyResource(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted literacy resource", slog.String("id", id), slog.String("by", actor.UserID))
	return nil
}
