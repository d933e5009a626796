package domain

import (
	"math"
	"time"
)

// epsilon evita divisão por zero no cálculo das métricas derivadas
const epsilon = 1e-9

// JoinedDay representa um dia do negócio com os totais de marketing do mesmo
// dia e as cinco métricas derivadas
type JoinedDay struct {
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"total_revenue"`
	GrossProfit  float64   `json:"gross_profit"`
	NewCustomers int64     `json:"new_customers"`

	Spend             float64 `json:"spend"`
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	AttributedRevenue float64 `json:"attributed_revenue"`

	ROAS float64 `json:"roas"`
	MER  float64 `json:"mer"`
	CPC  float64 `json:"cpc"`
	CTR  float64 `json:"ctr"`
	CAC  float64 `json:"cac"`
}

// LeftJoinBusiness junta os totais diários de marketing à tabela do negócio
// pela data. Toda linha do negócio é mantida, com as medidas de marketing
// zeradas quando não há atividade no dia. Datas de marketing fora da
// cobertura do negócio são descartadas.
func LeftJoinBusiness(business []*BusinessDay, dailyTotals map[time.Time]*DailyMarketing) []*JoinedDay {
	joined := make([]*JoinedDay, 0, len(business))

	for _, day := range business {
		row := &JoinedDay{
			Date:         day.Date,
			TotalRevenue: day.TotalRevenue,
			GrossProfit:  day.GrossProfit,
			NewCustomers: day.NewCustomers,
		}

		if totals, ok := dailyTotals[day.Date]; ok {
			row.Spend = totals.Spend
			row.Impressions = totals.Impressions
			row.Clicks = totals.Clicks
			row.AttributedRevenue = totals.AttributedRevenue
		}

		joined = append(joined, row)
	}

	return joined
}

// DeriveMetrics calcula as cinco métricas derivadas de cada linha, no lugar.
// O cálculo parte sempre das medidas base, então aplicar duas vezes produz o
// mesmo resultado.
func DeriveMetrics(joined []*JoinedDay) {
	for _, row := range joined {
		row.ROAS = RatioOrZero(row.AttributedRevenue, row.Spend)
		row.MER = RatioOrZero(row.TotalRevenue, row.Spend)
		row.CPC = RatioOrZero(row.Spend, float64(row.Clicks))
		row.CTR = RatioOrZero(float64(row.Clicks), float64(row.Impressions)) * 100
		row.CAC = RatioOrZero(row.Spend, float64(row.NewCustomers))
	}
}

// RatioOrZero divide com proteção de divisão por zero: denominador
// genuinamente zero resulta em zero, nunca em infinito, e o epsilon cobre
// apenas ruído de ponto flutuante
func RatioOrZero(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return sanitizeRatio(numerator / (denominator + epsilon))
}

// sanitizeRatio zera resultados infinitos ou inválidos em vez de propagá-los
func sanitizeRatio(value float64) float64 {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}
