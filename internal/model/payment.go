package model

import "time"

// Payment type ids come from the dictionary table and are fixed by the
// seed migration.
const (
	PaymentTypeBody    int64 = 1
	PaymentTypePercent int64 = 2
)

type Payment struct {
	ID          int64
	Sum         float64
	PaymentDate time.Time
	CreditID    int64
	TypeID      int64
}
