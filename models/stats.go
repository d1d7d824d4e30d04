// models/stats.go
package models

// ProductStats is the per-product rollup inside a day's aggregate.
type ProductStats struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
}

// DayStats aggregates every checkout on one calendar day.
type DayStats struct {
	Revenue      float64              `json:"revenue"`
	Transactions int                  `json:"transactions"`
	ItemsSold    int                  `json:"itemsSold"`
	Profit       float64              `json:"profit"`
	Items        map[int]ProductStats `json:"items"`
}

// DailyStats maps "2006-01-02" date strings to their aggregates.
type DailyStats map[string]DayStats
