package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	// Formato padrão até a configuração ser lida
	_ = log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.Migrate {
		if err := pgConn.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	accountRepo := repository.NewAdAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	appMetrics := metrics.New(cfg.Metrics.Namespace)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	accountService := account.NewService(accountRepo, userRepo)
	reportingService := reporting.NewService(
		accountService,
		reporting.NewGoogleAdsFactory(cfg.GoogleAds),
		reporting.NewMetaAdsFactory(cfg.Meta),
		appMetrics,
	)

	server, err := api.New(cfg, authenticator, accountService, reportingService, appMetrics, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria a conexão com o banco e encerra o processo se ela falhar
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
