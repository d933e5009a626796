// Package exporting gera a planilha de dados diários detalhados do dashboard
package exporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Daily"

// Cabeçalhos da planilha, na ordem das colunas canônicas da tabela diária
var reportHeaders = []string{
	"date",
	"total_revenue",
	"gross_profit",
	"new_customers",
	"spend",
	"impressions",
	"clicks",
	"attributed_revenue",
	"roas",
	"mer",
	"cpc",
	"ctr",
	"cac",
}

// Exporter gera o relatório diário em formato de planilha
type Exporter interface {
	ExportDailyReport(daily []*domain.JoinedDay) ([]byte, error)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ExportDailyReport monta uma pasta de trabalho .xlsx com uma linha por dia,
// valores arredondados a duas casas como na tabela detalhada do dashboard
func (s *Service) ExportDailyReport(daily []*domain.JoinedDay) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "erro ao renomear a aba do relatório")
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao montar o cabeçalho do relatório")
		}
		if err := file.SetCellValue(sheetName, cell, header); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever o cabeçalho do relatório")
		}
	}

	for i, row := range daily {
		values := []any{
			row.Date.Format(time.DateOnly),
			utils.RoundWithTwoDecimalPlace(row.TotalRevenue),
			utils.RoundWithTwoDecimalPlace(row.GrossProfit),
			row.NewCustomers,
			utils.RoundWithTwoDecimalPlace(row.Spend),
			row.Impressions,
			row.Clicks,
			utils.RoundWithTwoDecimalPlace(row.AttributedRevenue),
			utils.RoundWithTwoDecimalPlace(row.ROAS),
			utils.RoundWithTwoDecimalPlace(row.MER),
			utils.RoundWithTwoDecimalPlace(row.CPC),
			utils.RoundWithTwoDecimalPlace(row.CTR),
			utils.RoundWithTwoDecimalPlace(row.CAC),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, errors.Wrap(err, "erro ao montar a linha do relatório")
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, errors.Wrapf(err, "erro ao escrever a linha %d do relatório", i+2)
			}
		}
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o relatório")
	}

	return buffer.Bytes(), nil
}

// ReportFileName gera o nome do arquivo exportado com a data corrente
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("daily-report-%s.xlsx", now.Format(time.DateOnly))
}
