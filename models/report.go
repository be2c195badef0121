package models

import "github.com/shopspring/decimal"

// MonthSummary aggregates the wash records of one calendar month.
type MonthSummary struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Count          int             `json:"count"`
	Total          decimal.Decimal `json:"total"`
	ByWasher       []SummaryLine   `json:"by_washer"`
	ByBusinessArea []SummaryLine   `json:"by_business_area"`
	ByVehicleType  []SummaryLine   `json:"by_vehicle_type"`
	ByCompany      []SummaryLine   `json:"by_company"`
}

type SummaryLine struct {
	Key   string          `json:"key"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}
