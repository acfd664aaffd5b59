package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const usage = `uso: migrate <comando> [opções]

comandos:
  up          aplica as migrações pendentes
  down        desfaz a última migração
  status      mostra o estado das migrações
  seed-admin  cria o primeiro administrador (-name, -email, -password)`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warn("Nível de log inválido, usando 'info'")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := run(ctx, conn, os.Args[1], os.Args[2:]); err != nil {
		logrus.WithError(err).Fatal("Comando de migração falhou")
	}
}

func run(ctx context.Context, conn *postgres.Connection, command string, args []string) error {
	switch command {
	case "up":
		return conn.Migrate(ctx)
	case "down":
		return conn.Rollback(ctx)
	case "status":
		return conn.MigrationStatus(ctx)
	case "seed-admin":
		fs := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
		name := fs.String("name", "Administrador", "nome do administrador")
		email := fs.String("email", "", "e-mail do administrador")
		password := fs.String("password", os.Getenv("ADMIN_PASSWORD"), "senha (padrão: ADMIN_PASSWORD)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return seedAdmin(ctx, repository.NewUserRepository(conn), *name, *email, *password)
	default:
		return errors.Errorf("comando desconhecido %q\n%s", command, usage)
	}
}

// seedAdmin é idempotente: um e-mail já cadastrado não é alterado
func seedAdmin(ctx context.Context, users repository.UserRepository, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return errors.New("e-mail e senha são obrigatórios")
	}
	if err := authenticating.ValidatePasswordStrength(password); err != nil {
		return err
	}

	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "consultar administrador")
	}
	if existing != nil {
		logrus.WithField("user_id", existing.ID).Info("Administrador já cadastrado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "gerar hash da senha")
	}

	created, err := users.CreateUser(ctx, &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	})
	if err != nil {
		return errors.Wrap(err, "criar administrador")
	}

	logrus.WithField("user_id", created.ID).Info("Administrador criado")
	return nil
}
