package domain

import (
	"sort"
	"time"
)

// DashboardFilters representa os filtros aplicáveis ao dashboard: intervalo
// de datas (inclusivo nas duas pontas) e conjuntos opcionais de plataformas,
// estados e táticas. Um conjunto vazio não restringe a dimensão.
type DashboardFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Platforms []string   `json:"platforms,omitempty"`
	States    []string   `json:"states,omitempty"`
	Tactics   []string   `json:"tactics,omitempty"`
}

// InRange verifica se a data está dentro do intervalo do filtro
func (f *DashboardFilters) InRange(date time.Time) bool {
	if f.StartDate != nil && date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && date.After(*f.EndDate) {
		return false
	}
	return true
}

// MatchesMarketing verifica se o registro de marketing passa por todos os
// filtros: intervalo de datas e os três conjuntos de dimensões
func (f *DashboardFilters) MatchesMarketing(record *MarketingRecord) bool {
	if !f.InRange(record.Date) {
		return false
	}
	if !inSet(f.Platforms, record.Platform) {
		return false
	}
	if !inSet(f.States, record.State) {
		return false
	}
	return inSet(f.Tactics, record.Tactic)
}

// inSet retorna verdadeiro quando o conjunto não restringe (vazio) ou contém o valor
func inSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, allowed := range set {
		if allowed == value {
			return true
		}
	}
	return false
}

// FilterDomains descreve os valores disponíveis para os controles de filtro
// do dashboard, extraídos dos dados carregados
type FilterDomains struct {
	Platforms []string   `json:"platforms"`
	States    []string   `json:"states"`
	Tactics   []string   `json:"tactics"`
	MinDate   *time.Time `json:"min_date,omitempty"`
	MaxDate   *time.Time `json:"max_date,omitempty"`
}

// ExtractFilterDomains calcula os domínios de filtro a partir da tabela
// unificada de marketing e da tabela diária do negócio. Os limites de data
// vêm da tabela do negócio, como no dashboard original.
func ExtractFilterDomains(marketing []*MarketingRecord, daily []*JoinedDay) FilterDomains {
	platforms := make(map[string]bool)
	states := make(map[string]bool)
	tactics := make(map[string]bool)

	for _, record := range marketing {
		platforms[record.Platform] = true
		states[record.State] = true
		tactics[record.Tactic] = true
	}

	domains := FilterDomains{
		Platforms: sortedKeys(platforms),
		States:    sortedKeys(states),
		Tactics:   sortedKeys(tactics),
	}

	for _, row := range daily {
		date := row.Date
		if domains.MinDate == nil || date.Before(*domains.MinDate) {
			minDate := date
			domains.MinDate = &minDate
		}
		if domains.MaxDate == nil || date.After(*domains.MaxDate) {
			maxDate := date
			domains.MaxDate = &maxDate
		}
	}

	return domains
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
