package domain

import (
	"time"
)

// Plataformas de mídia suportadas pelo dashboard
const (
	PlatformFacebook = "Facebook"
	PlatformGoogle   = "Google"
	PlatformTikTok   = "TikTok"
)

// AllPlatforms lista as plataformas na ordem fixa de consolidação
var AllPlatforms = []string{PlatformFacebook, PlatformGoogle, PlatformTikTok}

// MarketingRecord representa uma linha normalizada de investimento em mídia
type MarketingRecord struct {
	Date              time.Time `json:"date"`
	Platform          string    `json:"platform"`
	State             string    `json:"state"`
	Tactic            string    `json:"tactic"`
	Campaign          string    `json:"campaign"`
	Spend             float64   `json:"spend"`
	Impressions       int64     `json:"impressions"`
	Clicks            int64     `json:"clicks"`
	AttributedRevenue float64   `json:"attributed_revenue"`
}

// DailyMarketing agrega os totais de marketing de um dia, somados entre
// plataformas, estados, táticas e campanhas
type DailyMarketing struct {
	Date              time.Time `json:"date"`
	Spend             float64   `json:"spend"`
	Impressions       int64     `json:"impressions"`
	Clicks            int64     `json:"clicks"`
	AttributedRevenue float64   `json:"attributed_revenue"`
}

// AggregateDaily agrupa os registros de marketing por data, somando as quatro
// medidas. O resultado tem uma entrada por data distinta presente nos registros.
func AggregateDaily(records []*MarketingRecord) map[time.Time]*DailyMarketing {
	totals := make(map[time.Time]*DailyMarketing)

	for _, record := range records {
		day, ok := totals[record.Date]
		if !ok {
			day = &DailyMarketing{Date: record.Date}
			totals[record.Date] = day
		}

		day.Spend += record.Spend
		day.Impressions += record.Impressions
		day.Clicks += record.Clicks
		day.AttributedRevenue += record.AttributedRevenue
	}

	return totals
}
