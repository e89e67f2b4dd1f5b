package core

import (
	"context"
	"io"
	"time"

	"github.com/obondar/creditflow/internal/model"
)

type (
	CreditService interface {
		GetUserCredits(ctx context.Context, userID int64) (*model.UserCredits, error)
	}

	PlanService interface {
		// InsertPlans validates and stores every row of the uploaded
		// spreadsheet, all-or-nothing. It returns the number of plans
		// inserted.
		InsertPlans(ctx context.Context, filename string, file io.Reader) (int, error)
	}

	PerformanceService interface {
		PlansPerformance(ctx context.Context, checkDate time.Time) ([]model.PlanPerformance, error)
		YearPerformance(ctx context.Context, year int) (*model.YearPerformance, error)
	}
)
