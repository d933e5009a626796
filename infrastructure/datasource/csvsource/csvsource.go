// Package csvsource implementa a ingestão dos arquivos CSV do dashboard
package csvsource

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shreyanithin/marketing-intelligence-api/internal/config"
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/log"
)

// Formatos de data aceitos nos arquivos de origem
var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
}

// Source lê os quatro arquivos CSV configurados e produz as tabelas
// normalizadas do domínio
type Source struct {
	cfg config.Datasets
}

func New(cfg config.Datasets) *Source {
	return &Source{cfg: cfg}
}

// LoadMarketing carrega os três canais, etiqueta cada registro com sua
// plataforma e concatena na ordem fixa Facebook, Google, TikTok
func (s *Source) LoadMarketing() ([]*domain.MarketingRecord, error) {
	channels := []struct {
		platform string
		path     string
	}{
		{domain.PlatformFacebook, s.cfg.FacebookPath()},
		{domain.PlatformGoogle, s.cfg.GooglePath()},
		{domain.PlatformTikTok, s.cfg.TikTokPath()},
	}

	unified := make([]*domain.MarketingRecord, 0)

	for _, channel := range channels {
		records, err := s.loadChannel(channel.path, channel.platform)
		if err != nil {
			return nil, err
		}

		unified = append(unified, records...)
	}

	return unified, nil
}

// loadChannel carrega um arquivo de canal e atribui a plataforma a cada registro
func (s *Source) loadChannel(path string, platform string) ([]*domain.MarketingRecord, error) {
	table, err := readTable(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar o arquivo do canal %s", platform)
	}

	records := make([]*domain.MarketingRecord, 0, len(table.rows))

	for i := range table.rows {
		date, ok := table.dateValue(i, "date")
		if !ok {
			log.L.WithFields(log.Fields{
				"dataset_file": path,
				"dataset_row":  i + 2,
			}).Warn("Linha com data inválida descartada na ingestão")
			continue
		}

		records = append(records, &domain.MarketingRecord{
			Date:              date,
			Platform:          platform,
			State:             table.stringValue(i, "state"),
			Tactic:            table.stringValue(i, "tactic"),
			Campaign:          table.stringValue(i, "campaign"),
			Spend:             table.floatValue(i, "spend"),
			Impressions:       table.intValue(i, "impressions"),
			Clicks:            table.intValue(i, "clicks"),
			AttributedRevenue: table.floatValue(i, "attributed_revenue"),
		})
	}

	return records, nil
}

// LoadBusiness carrega a tabela diária de resultados do negócio
func (s *Source) LoadBusiness() ([]*domain.BusinessDay, error) {
	table, err := readTable(s.cfg.BusinessPath())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar o arquivo do negócio")
	}

	days := make([]*domain.BusinessDay, 0, len(table.rows))

	for i := range table.rows {
		date, ok := table.dateValue(i, "date")
		if !ok {
			log.L.WithFields(log.Fields{
				"dataset_file": s.cfg.BusinessPath(),
				"dataset_row":  i + 2,
			}).Warn("Linha com data inválida descartada na ingestão")
			continue
		}

		days = append(days, &domain.BusinessDay{
			Date:         date,
			TotalRevenue: table.floatValue(i, "total_revenue"),
			GrossProfit:  table.floatValue(i, "gross_profit"),
			NewCustomers: table.intValue(i, "new_customers"),
		})
	}

	return days, nil
}

// table é uma tabela CSV com cabeçalhos já canonizados
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable lê um arquivo CSV completo. A ausência do arquivo é fatal para a
// carga; colunas extras são toleradas e colunas esperadas ausentes são
// tratadas como zero pelos acessores.
func readTable(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	if len(raw) == 0 {
		return nil, errors.Errorf("arquivo %s não possui cabeçalho", path)
	}

	// A primeira ocorrência de cada nome canônico vence em caso de colisão
	columns := make(map[string]int, len(raw[0]))
	for idx, header := range raw[0] {
		name := canonicalColumn(header)
		if _, exists := columns[name]; !exists {
			columns[name] = idx
		}
	}

	return &table{columns: columns, rows: raw[1:]}, nil
}

// cell retorna o valor cru de uma célula, ou vazio se a coluna não existe
func (t *table) cell(row int, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][idx])
}

func (t *table) stringValue(row int, column string) string {
	return t.cell(row, column)
}

// floatValue converte a célula para float64, coagindo valores não numéricos a zero
func (t *table) floatValue(row int, column string) float64 {
	value, err := strconv.ParseFloat(t.cell(row, column), 64)
	if err != nil {
		return 0
	}
	return value
}

// intValue converte a célula para int64, aceitando notação decimal e
// coagindo valores não numéricos a zero
func (t *table) intValue(row int, column string) int64 {
	raw := t.cell(row, column)

	value, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return value
	}

	asFloat, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int64(asFloat)
}

// dateValue converte a célula para uma data de calendário em UTC, sem componente de hora
func (t *table) dateValue(row int, column string) (time.Time, bool) {
	raw := t.cell(row, column)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}
