package dashboarding

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
	"github.com/shreyanithin/marketing-intelligence-api/pkg/utils"
)

// Dimensões de agrupamento aceitas pelo endpoint de performance
const (
	DimensionPlatform = "platform"
	DimensionTactic   = "tactic"
	DimensionState    = "state"
	DimensionCampaign = "campaign"
)

// topStatesBySpend limita o ranking de estados, como no gráfico original
const topStatesBySpend = 10

// ErrUnknownDimension indica uma dimensão de agrupamento não suportada
var ErrUnknownDimension = errors.New("dimensão de agrupamento desconhecida")

// OverallKPIs é o bloco de indicadores gerais do dashboard. O investimento
// vem da tabela de marketing filtrada por todas as dimensões; receita, lucro
// e novos clientes vêm da tabela diária filtrada apenas por data.
type OverallKPIs struct {
	TotalRevenue  float64 `json:"total_revenue"`
	FilteredSpend float64 `json:"filtered_spend"`
	GrossProfit   float64 `json:"gross_profit"`
	NewCustomers  int64   `json:"new_customers"`
	MER           float64 `json:"mer"`
	CAC           float64 `json:"cac"`
}

// PerformanceGroup é uma linha do agrupamento por dimensão
type PerformanceGroup struct {
	Key               string  `json:"key"`
	Tactic            string  `json:"tactic,omitempty"`
	Spend             float64 `json:"spend"`
	AttributedRevenue float64 `json:"attributed_revenue"`
	Impressions       int64   `json:"impressions,omitempty"`
	ROAS              float64 `json:"roas"`
}

// GetOverallKPIs calcula os indicadores gerais sobre os dados filtrados
func (s *Service) GetOverallKPIs(filters *domain.DashboardFilters) (*OverallKPIs, error) {
	dashboard, err := s.GetDashboard(filters)
	if err != nil {
		return nil, err
	}

	kpis := &OverallKPIs{}

	for _, record := range dashboard.Marketing {
		kpis.FilteredSpend += record.Spend
	}

	for _, row := range dashboard.Daily {
		kpis.TotalRevenue += row.TotalRevenue
		kpis.GrossProfit += row.GrossProfit
		kpis.NewCustomers += row.NewCustomers
	}

	if kpis.FilteredSpend > 0 {
		kpis.MER = utils.RoundWithTwoDecimalPlace(kpis.TotalRevenue / kpis.FilteredSpend)
	}
	if kpis.NewCustomers > 0 {
		kpis.CAC = utils.RoundWithTwoDecimalPlace(kpis.FilteredSpend / float64(kpis.NewCustomers))
	}

	return kpis, nil
}

// GetPerformance agrupa a tabela de marketing filtrada pela dimensão pedida.
// Plataforma e tática são ordenadas por ROAS crescente; estados por
// investimento decrescente, limitados ao top 10; campanhas agrupam pelo par
// campanha/tática.
func (s *Service) GetPerformance(dimension string, filters *domain.DashboardFilters) ([]*PerformanceGroup, error) {
	dashboard, err := s.GetDashboard(filters)
	if err != nil {
		return nil, err
	}

	switch dimension {
	case DimensionPlatform:
		return groupByROASAsc(dashboard.Marketing, func(r *domain.MarketingRecord) string { return r.Platform }), nil
	case DimensionTactic:
		return groupByROASAsc(dashboard.Marketing, func(r *domain.MarketingRecord) string { return r.Tactic }), nil
	case DimensionState:
		groups := groupBy(dashboard.Marketing, func(r *domain.MarketingRecord) string { return r.State })
		sort.Slice(groups, func(i, j int) bool { return groups[i].Spend > groups[j].Spend })
		if len(groups) > topStatesBySpend {
			groups = groups[:topStatesBySpend]
		}
		return groups, nil
	case DimensionCampaign:
		return groupCampaigns(dashboard.Marketing), nil
	}

	return nil, errors.Wrap(ErrUnknownDimension, dimension)
}

// groupBy soma investimento e receita atribuída por chave e calcula o ROAS do grupo
func groupBy(records []*domain.MarketingRecord, key func(*domain.MarketingRecord) string) []*PerformanceGroup {
	byKey := make(map[string]*PerformanceGroup)
	order := make([]string, 0)

	for _, record := range records {
		k := key(record)
		group, ok := byKey[k]
		if !ok {
			group = &PerformanceGroup{Key: k}
			byKey[k] = group
			order = append(order, k)
		}

		group.Spend += record.Spend
		group.AttributedRevenue += record.AttributedRevenue
	}

	groups := make([]*PerformanceGroup, 0, len(order))
	for _, k := range order {
		group := byKey[k]
		group.ROAS = utils.RoundWithTwoDecimalPlace(domain.RatioOrZero(group.AttributedRevenue, group.Spend))
		groups = append(groups, group)
	}

	return groups
}

func groupByROASAsc(records []*domain.MarketingRecord, key func(*domain.MarketingRecord) string) []*PerformanceGroup {
	groups := groupBy(records, key)
	sort.Slice(groups, func(i, j int) bool { return groups[i].ROAS < groups[j].ROAS })
	return groups
}

// groupCampaigns agrupa pelo par campanha/tática e soma também impressões,
// que dimensionam as bolhas do gráfico de eficiência de campanhas
func groupCampaigns(records []*domain.MarketingRecord) []*PerformanceGroup {
	type campaignKey struct {
		campaign string
		tactic   string
	}

	byKey := make(map[campaignKey]*PerformanceGroup)
	order := make([]campaignKey, 0)

	for _, record := range records {
		k := campaignKey{campaign: record.Campaign, tactic: record.Tactic}
		group, ok := byKey[k]
		if !ok {
			group = &PerformanceGroup{Key: k.campaign, Tactic: k.tactic}
			byKey[k] = group
			order = append(order, k)
		}

		group.Spend += record.Spend
		group.AttributedRevenue += record.AttributedRevenue
		group.Impressions += record.Impressions
	}

	groups := make([]*PerformanceGroup, 0, len(order))
	for _, k := range order {
		group := byKey[k]
		group.ROAS = utils.RoundWithTwoDecimalPlace(domain.RatioOrZero(group.AttributedRevenue, group.Spend))
		groups = append(groups, group)
	}

	return groups
}
