package dto

import "time"

type CurrencyRatesResponse struct {
	Reference string             `json:"reference"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}
