// Package options отдает программы альтернативного финансирования.
package options

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/finher/internal/models"
)

type Repository interface {
	ListFundingOptions(ctx context.Context) ([]*models.FundingOption, error)
}

type OptionsService struct {
	repo Repository
}

func NewOptionsService(repo Repository) *OptionsService {
	return &OptionsService{repo: repo}
}

func (s *OptionsService) List(ctx context.Context) ([]*models.FundingOption, error) {
	const op = "services.options.List"
	list, err := s.repo.ListFundingOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}
