package domain

import "time"

// BusinessDay representa uma linha de resultados do negócio para um dia,
// independente de canal de marketing
type BusinessDay struct {
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"total_revenue"`
	GrossProfit  float64   `json:"gross_profit"`
	NewCustomers int64     `json:"new_customers"`
}
