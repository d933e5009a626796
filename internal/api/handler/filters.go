package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/utils"
)

// parseDashboardFilters monta os filtros do dashboard a partir da query
// string. Parâmetros ausentes ficam nulos e recebem os padrões do snapshot
// (intervalo completo, todas as dimensões).
func parseDashboardFilters(r *http.Request) (*domain.DashboardFilters, error) {
	filters := &domain.DashboardFilters{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	filters.Platforms = splitParam(r.URL.Query().Get("platforms"))
	filters.States = splitParam(r.URL.Query().Get("states"))
	filters.Tactics = splitParam(r.URL.Query().Get("tactics"))

	return filters, nil
}

// splitParam divide um parâmetro separado por vírgulas, ignorando entradas vazias
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	values := make([]string, 0)
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

// formatRange formata o intervalo aplicado para os logs
func formatRange(filters *domain.DashboardFilters) string {
	format := func(date *time.Time) string {
		if date == nil {
			return "-"
		}
		return date.Format(time.DateOnly)
	}
	return format(filters.StartDate) + ".." + format(filters.EndDate)
}
