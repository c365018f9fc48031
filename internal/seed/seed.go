package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/finher/internal/models"
)

// Store описывает операции хранилища, нужные сидеру.
type Store interface {
	UpsertFundingOption(ctx context.Context, o models.FundingOption) error
	SeedLiteracyResource(ctx context.Context, in models.LiteracyResourceInput) (bool, error)
	SetRole(ctx context.Context, email, role string) error
}

// Result сводка выполненного сидирования.
type Result struct {
	Options  int
	Inserted int
	Skipped  int
}

// Run загружает справочные данные. Повторный запуск не создаёт дублей:
// программы обновляются по имени, материалы пропускаются по заголовку.
func Run(ctx context.Context, store Store, log *slog.Logger) (Result, error) {
	const op = "seed.Run"
	var res Result

	for _, o := range fundingOptions {
		if err := store.UpsertFundingOption(ctx, o); err != nil {
			return res, fmt.Errorf("%s: option %q: %w", op, o.Name, err)
		}
		res.Options++
	}

	for _, r := range literacyResources {
		inserted, err := store.SeedLiteracyResource(ctx, r)
		if err != nil {
			return res, fmt.Errorf("%s: resource %q: %w", op, r.Title, err)
		}
		if inserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	log.Info("seeding complete",
		slog.Int("funding_options", res.Options),
		slog.Int("resources_inserted", res.Inserted),
		slog.Int("resources_skipped", res.Skipped),
	)
	return res, nil
}

// PromoteAdmin выдаёт пользователю с адресом email роль администратора.
func PromoteAdmin(ctx context.Context, store Store, email string, log *slog.Logger) error {
	const op = "seed.PromoteAdmin"
	if err := store.SetRole(ctx, email, models.RoleAdmin); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("user promoted to admin", slog.String("email", email))
	return nil
}
