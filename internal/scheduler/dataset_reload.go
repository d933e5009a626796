// Package scheduler contém o serviço de agendamento de recarga dos datasets
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shreyanithin/marketing-intelligence-api/internal/config"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/dashboarding"
	"github.com/sirupsen/logrus"
)

// DatasetReloadConfig representa a configuração do agendador de recarga
type DatasetReloadConfig struct {
	CronSchedule  string
	ReloadEnabled bool
}

// DatasetReloadService gerencia a recarga agendada e manual do snapshot de
// dados. A recarga agendada chama a mesma operação Reload do endpoint HTTP;
// o cache nunca é invalidado implicitamente.
type DatasetReloadService struct {
	scheduler             *gocron.Scheduler
	config                DatasetReloadConfig
	reloader              dashboarding.Reloader
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastSnapshotID        string
}

// NewDatasetReloadService cria uma nova instância do serviço de recarga
func NewDatasetReloadService(reloader dashboarding.Reloader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule:  appConfig.DatasetReload.CronSchedule,
		ReloadEnabled: appConfig.DatasetReload.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
	}).Info("Configuração do agendador de recarga de datasets carregada")

	return &DatasetReloadService{
		scheduler:     scheduler,
		config:        reloadConfig,
		reloader:      reloader,
		reloadRunning: false,
	}
}

// Start inicia o agendador
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.ReloadEnabled {
		logrus.Info("Recarga agendada de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reloadDatasets()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de datasets: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadDatasets executa a recarga completa, ignorando execuções sobrepostas
func (s *DatasetReloadService) reloadDatasets() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de datasets já em andamento, ignorando")
		return
	}
	s.reloadRunning = true
	s.reloadMutex.Unlock()

	startTime := time.Now()
	s.lastReloadStartedAt = startTime

	defer func() {
		s.reloadMutex.Lock()
		s.reloadRunning = false
		s.reloadMutex.Unlock()
	}()

	logrus.Info("Iniciando recarga dos datasets do dashboard")

	snapshot, err := s.reloader.Reload()
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar os datasets do dashboard")
		return
	}

	s.lastReloadCompletedAt = time.Now()
	s.lastSnapshotID = snapshot.ID

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"duration":    time.Since(startTime).String(),
	}).Info("Recarga dos datasets concluída")
}

// TriggerManualReload inicia manualmente uma recarga dos datasets
func (s *DatasetReloadService) TriggerManualReload() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de datasets já em andamento, ignorando solicitação manual")
		return
	}
	s.reloadMutex.Unlock()

	logrus.Info("Iniciando recarga manual dos datasets")
	go s.reloadDatasets()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	return map[string]any{
		"reload_enabled":           s.config.ReloadEnabled,
		"reload_cron":              s.config.CronSchedule,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_snapshot_id":         s.lastSnapshotID,
	}
}
