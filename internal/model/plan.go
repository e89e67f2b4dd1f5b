package model

import "time"

// Plan is a monthly target sum for one category. Period is always the
// first calendar day of the month.
type Plan struct {
	ID         int64
	Period     time.Time
	Sum        float64
	CategoryID int64
}

type PlanPerformance struct {
	PlanMonth          Date    `json:"plan_month"`
	Category           string  `json:"category"`
	PlanSum            float64 `json:"plan_sum"`
	ActualSum          float64 `json:"actual_sum"`
	PerformancePercent float64 `json:"performance_percent"`
}

type MonthPerformance struct {
	MonthYear           Date    `json:"month_year"`
	IssuanceCount       int     `json:"issuance_count"`
	IssuancePlan        float64 `json:"issuance_plan"`
	IssuanceSum         float64 `json:"issuance_sum"`
	IssuancePerformance float64 `json:"issuance_performance"`
	PaymentCount        int     `json:"payment_count"`
	PaymentPlan         float64 `json:"payment_plan"`
	PaymentSum          float64 `json:"payment_sum"`
	PaymentPerformance  float64 `json:"payment_performance"`
	IssuanceYearPercent float64 `json:"issuance_year_percent"`
	PaymentYearPercent  float64 `json:"payment_year_percent"`
}

type YearPerformance struct {
	Performance []MonthPerformance `json:"performance"`
}
