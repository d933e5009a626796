// Package dashboarding orquestra o pipeline de preparação de dados do
// dashboard: carga, consolidação, junção, derivação de métricas e filtragem
package dashboarding

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shreyanithin/marketing-intelligence-api/infrastructure/datasource"
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ErrSnapshotNotLoaded indica que nenhum snapshot foi carregado ainda
var ErrSnapshotNotLoaded = errors.New("nenhum snapshot de dados carregado")

// Snapshot é o resultado imutável de uma execução completa do pipeline.
// Depois de construído, apenas o ponteiro para o snapshot é trocado; as
// tabelas nunca são alteradas, então as leituras não precisam de cópia.
type Snapshot struct {
	ID        string                    `json:"id"`
	LoadedAt  time.Time                 `json:"loaded_at"`
	Marketing []*domain.MarketingRecord `json:"-"`
	Daily     []*domain.JoinedDay       `json:"-"`
	Domains   domain.FilterDomains      `json:"domains"`
}

// DashboardResponse é a resposta principal do dashboard: as duas tabelas
// filtradas de forma consistente mais os domínios para os controles de filtro
type DashboardResponse struct {
	SnapshotID string                    `json:"snapshot_id"`
	Filters    *domain.DashboardFilters  `json:"filters"`
	Domains    domain.FilterDomains      `json:"domains"`
	Marketing  []*domain.MarketingRecord `json:"marketing"`
	Daily      []*domain.JoinedDay       `json:"daily"`
}

// Service implementa Dashboarder e Reloader sobre um snapshot em memória
type Service struct {
	source datasource.Source

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewService cria o serviço de dashboard. O snapshot inicial é construído
// com Reload na inicialização da aplicação.
func NewService(source datasource.Source) *Service {
	return &Service{source: source}
}

// Reload executa o pipeline completo e troca o snapshot corrente.
// Falha de leitura de qualquer arquivo de origem aborta a carga inteira;
// anomalias de linha ou coluna já foram normalizadas na ingestão.
func (s *Service) Reload() (*Snapshot, error) {
	startTime := time.Now()

	marketing, err := s.source.LoadMarketing()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar os dados de marketing")
	}

	business, err := s.source.LoadBusiness()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar os dados do negócio")
	}

	dailyTotals := domain.AggregateDaily(marketing)
	daily := domain.LeftJoinBusiness(business, dailyTotals)
	domain.DeriveMetrics(daily)

	snapshotID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do snapshot")
	}

	snapshot := &Snapshot{
		ID:        snapshotID,
		LoadedAt:  time.Now(),
		Marketing: marketing,
		Daily:     daily,
		Domains:   domain.ExtractFilterDomains(marketing, daily),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id":    snapshot.ID,
		"marketing_rows": len(marketing),
		"daily_rows":     len(daily),
		"duration":       time.Since(startTime).String(),
	}).Info("Snapshot de dados do dashboard reconstruído")

	return snapshot, nil
}

// Snapshot retorna o snapshot corrente, ou nil se nenhum foi carregado
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// GetDashboard aplica os filtros sobre o snapshot corrente e retorna as duas
// tabelas filtradas. A tabela de marketing é filtrada por todas as dimensões;
// a tabela diária apenas pelo intervalo de datas, já que as métricas do
// negócio não têm canal. Resultados vazios são um estado válido.
func (s *Service) GetDashboard(filters *domain.DashboardFilters) (*DashboardResponse, error) {
	snapshot := s.Snapshot()
	if snapshot == nil {
		return nil, ErrSnapshotNotLoaded
	}

	filters = withDefaultRange(filters, snapshot)

	return &DashboardResponse{
		SnapshotID: snapshot.ID,
		Filters:    filters,
		Domains:    snapshot.Domains,
		Marketing:  filterMarketing(snapshot.Marketing, filters),
		Daily:      filterDaily(snapshot.Daily, filters),
	}, nil
}

// GetDailyTable retorna apenas a tabela diária filtrada por data
func (s *Service) GetDailyTable(filters *domain.DashboardFilters) ([]*domain.JoinedDay, error) {
	snapshot := s.Snapshot()
	if snapshot == nil {
		return nil, ErrSnapshotNotLoaded
	}

	filters = withDefaultRange(filters, snapshot)

	return filterDaily(snapshot.Daily, filters), nil
}

// Status retorna o estado corrente do snapshot para diagnóstico
func (s *Service) Status() map[string]any {
	snapshot := s.Snapshot()
	if snapshot == nil {
		return map[string]any{
			"loaded": false,
		}
	}

	return map[string]any{
		"loaded":         true,
		"snapshot_id":    snapshot.ID,
		"loaded_at":      snapshot.LoadedAt,
		"marketing_rows": len(snapshot.Marketing),
		"daily_rows":     len(snapshot.Daily),
	}
}

// withDefaultRange completa as datas ausentes do filtro com os limites da
// tabela do negócio, como o dashboard original faz com o seletor de datas
func withDefaultRange(filters *domain.DashboardFilters, snapshot *Snapshot) *domain.DashboardFilters {
	if filters == nil {
		filters = &domain.DashboardFilters{}
	}

	applied := *filters
	if applied.StartDate == nil {
		applied.StartDate = snapshot.Domains.MinDate
	}
	if applied.EndDate == nil {
		applied.EndDate = snapshot.Domains.MaxDate
	}

	return &applied
}

// filterMarketing produz um novo slice com os registros que passam por todos
// os filtros, sem tocar na tabela base
func filterMarketing(records []*domain.MarketingRecord, filters *domain.DashboardFilters) []*domain.MarketingRecord {
	filtered := make([]*domain.MarketingRecord, 0)

	for _, record := range records {
		if filters.MatchesMarketing(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// filterDaily produz um novo slice com as linhas diárias dentro do intervalo
func filterDaily(daily []*domain.JoinedDay, filters *domain.DashboardFilters) []*domain.JoinedDay {
	filtered := make([]*domain.JoinedDay, 0)

	for _, row := range daily {
		if filters.InRange(row.Date) {
			filtered = append(filtered, row)
		}
	}

	return filtered
}
