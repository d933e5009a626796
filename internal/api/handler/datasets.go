package handler

import (
	"net/http"

	"github.com/shreyanithin/marketing-intelligence-api/internal/scheduler"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/dashboarding"
	"github.com/sirupsen/logrus"
)

// ReloadDatasets dispara a recarga manual dos arquivos de origem
func ReloadDatasets(reloadService *scheduler.DatasetReloadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReloadDatasets")

		reloadService.TriggerManualReload()

		response := map[string]any{
			"message": "Recarga dos datasets iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetDatasetStatus retorna o estado do snapshot corrente e do agendador de recarga
func GetDatasetStatus(dashboardService *dashboarding.Service, reloadService *scheduler.DatasetReloadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDatasetStatus")

		response := map[string]any{
			"snapshot": dashboardService.Status(),
			"reload":   reloadService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
