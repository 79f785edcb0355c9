package postgres

import (
	"context"
	"log/slog"

	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.ContactModel{},
	}
}

// Migrate brings the schema up to date with the persistence models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// MigrateParams holds dependencies for RegisterMigration, injected by Fx
type MigrateParams struct {
	fx.In

	Lc     fx.Lifecycle
	DB     *gorm.DB
	Logger *slog.Logger
}

// RegisterMigration runs Migrate once the connection has been verified.
func RegisterMigration(params MigrateParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Database schema is up to date")

			return nil
		},
	})
}
