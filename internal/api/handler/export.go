package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/dashboarding"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/exporting"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/apiErrors"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDailyReport exporta a tabela diária filtrada como planilha .xlsx
func ExportDailyReport(dashboardService dashboarding.Dashboarder, exportService exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseDashboardFilters(r)
		if err != nil {
			logger.WithError(err).Warn("export: invalid filter parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		daily, err := dashboardService.GetDailyTable(filters)
		if err != nil {
			writeDashboardError(w, logger, err, "export: failed to build daily table")
			return
		}

		report, err := exportService.ExportDailyReport(daily)
		if err != nil {
			logger.WithError(err).Error("export: failed to generate workbook")
			apiErrors.WriteError(w, apiErrors.ErrReportExport, err.Error(), nil)
			return
		}

		fileName := exporting.ReportFileName(time.Now())

		logger.WithFields(log.Fields{
			"daily_rows": len(daily),
			"file_name":  fileName,
		}).Info("export: daily report generated")

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if _, err := w.Write(report); err != nil {
			logger.WithError(err).Error("export: failed to write response")
		}
	})
}
