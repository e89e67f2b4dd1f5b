package model

import "time"

// Credit is a loan disbursed to a user. A credit with no actual return
// date is open regardless of how far past ReturnDate it is.
type Credit struct {
	ID               int64
	UserID           int64
	IssuanceDate     time.Time
	ReturnDate       time.Time
	ActualReturnDate *time.Time
	Body             float64
	Percent          float64
}

func (c *Credit) Closed() bool {
	return c.ActualReturnDate != nil
}

// CreditSummary is the per-credit entry of the user_credits response.
// It is a closed set: OpenCredit or ClosedCredit, discriminated by the
// is_closed field of the shared base.
type CreditSummary interface {
	creditSummary()
}

type CreditBase struct {
	IssuanceDate Date    `json:"issuance_date"`
	IsClosed     bool    `json:"is_closed"`
	Body         float64 `json:"body"`
	Percent      float64 `json:"percent"`
}

type OpenCredit struct {
	CreditBase
	ReturnDate      Date    `json:"return_date"`
	OverdueDays     int     `json:"overdue_days"`
	BodyPayments    float64 `json:"body_payments"`
	PercentPayments float64 `json:"percent_payments"`
}

func (OpenCredit) creditSummary() {}

type ClosedCredit struct {
	CreditBase
	ActualReturnDate Date    `json:"actual_return_date"`
	TotalPayments    float64 `json:"total_payments"`
}

func (ClosedCredit) creditSummary() {}

type UserCredits struct {
	Credits []CreditSummary `json:"credits"`
}
