package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/shreyanithin/marketing-intelligence-api/infrastructure/datasource/csvsource"
	"github.com/shreyanithin/marketing-intelligence-api/internal/api"
	"github.com/shreyanithin/marketing-intelligence-api/internal/config"
	"github.com/shreyanithin/marketing-intelligence-api/internal/scheduler"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/dashboarding"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/exporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := csvsource.New(cfg.Datasets)

	dashboardService := dashboarding.NewService(source)

	// A carga inicial é obrigatória: sem snapshot o serviço não tem o que servir
	snapshot, err := dashboardService.Reload()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os datasets do dashboard")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":    snapshot.ID,
		"marketing_rows": len(snapshot.Marketing),
		"daily_rows":     len(snapshot.Daily),
	}).Info("Snapshot inicial carregado com sucesso")

	exportService := exporting.NewService()

	// Inicializa o agendador de recarga dos datasets
	reloadService := scheduler.NewDatasetReloadService(dashboardService, cfg)

	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de datasets")
	} else {
		logrus.Info("Agendador de recarga de datasets iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		exportService,
		reloadService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
