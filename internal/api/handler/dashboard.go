package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/dashboarding"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/apiErrors"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/log"
)

// GetDashboard retorna as tabelas de marketing e diária filtradas de forma consistente
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(filters)
		if err != nil {
			writeDashboardError(w, logger, err, "dashboard: failed to build filtered dashboard")
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id":    dashboard.SnapshotID,
			"range":          formatRange(dashboard.Filters),
			"marketing_rows": len(dashboard.Marketing),
			"daily_rows":     len(dashboard.Daily),
		}).Info("dashboard: filtered dashboard built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetOverallKPIs retorna o bloco de indicadores gerais do dashboard
func GetOverallKPIs(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		kpis, err := service.GetOverallKPIs(filters)
		if err != nil {
			writeDashboardError(w, logger, err, "dashboard: failed to compute overall KPIs")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(kpis); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetPerformance retorna o agrupamento por dimensão (platform|tactic|state|campaign)
func GetPerformance(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimension := httprouter.ParamsFromContext(r.Context()).ByName("dimension")

		filters, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		groups, err := service.GetPerformance(dimension, filters)
		if err != nil {
			if errors.Is(err, dashboarding.ErrUnknownDimension) {
				logger.WithField("dimension", dimension).Warn("dashboard: unknown grouping dimension")
				apiErrors.WriteError(w, apiErrors.ErrInvalidDimension, err.Error(), nil)
				return
			}

			writeDashboardError(w, logger, err, "dashboard: failed to group performance")
			return
		}

		logger.WithFields(log.Fields{
			"dimension": dimension,
			"groups":    len(groups),
		}).Info("dashboard: performance groups built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeDashboardError mapeia erros do serviço de dashboard para a resposta da API
func writeDashboardError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	logger.WithError(err).Error(message)

	if errors.Is(err, dashboarding.ErrSnapshotNotLoaded) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
