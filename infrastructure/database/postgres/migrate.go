package postgres

import (
	"context"
	"embed"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

func setupGoose() error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(logrus.StandardLogger())
	return goose.SetDialect("postgres")
}

// Migrate aplica todas as migrações pendentes
func (c *Connection) Migrate(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, c.DB, migrationsDir); err != nil {
		return err
	}

	version, err := goose.GetDBVersionContext(ctx, c.DB)
	if err != nil {
		return err
	}

	logrus.WithField("version", version).Info("database: migrations applied")
	return nil
}

// Rollback desfaz a última migração aplicada
func (c *Connection) Rollback(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}
	return goose.DownContext(ctx, c.DB, migrationsDir)
}

// MigrationStatus registra no log o estado de cada migração
func (c *Connection) MigrationStatus(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, c.DB, migrationsDir)
}
