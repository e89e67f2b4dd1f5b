package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/core"
	"github.com/obondar/creditflow/internal/model"
	"github.com/obondar/creditflow/internal/repository"
)

type performanceService struct {
	creditRepo   repository.CreditRepository
	paymentRepo  repository.PaymentRepository
	planRepo     repository.PlanRepository
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewPerformanceService(
	creditRepo repository.CreditRepository,
	paymentRepo repository.PaymentRepository,
	planRepo repository.PlanRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) core.PerformanceService {
	return &performanceService{
		creditRepo:   creditRepo,
		paymentRepo:  paymentRepo,
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// PlansPerformance compares each plan against actuals accumulated from
// the plan's period start through checkDate inclusive. Records come back
// in storage order.
func (s *performanceService) PlansPerformance(ctx context.Context, checkDate time.Time) ([]model.PlanPerformance, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	result := make([]model.PlanPerformance, 0, len(plans))
	for _, plan := range plans {
		category, err := s.categoryRepo.GetByID(ctx, plan.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category %d: %w", plan.CategoryID, err)
		}
		if category == nil {
			return nil, fmt.Errorf("plan %d references unknown category %d", plan.ID, plan.CategoryID)
		}

		var actualSum float64
		if category.Name == model.CategoryIssuance {
			actualSum, err = s.creditRepo.SumBodyIssuedBetween(ctx, plan.Period, checkDate)
		} else {
			actualSum, err = s.paymentRepo.SumPaidBetween(ctx, plan.Period, checkDate)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to sum actuals for plan %d: %w", plan.ID, err)
		}

		result = append(result, model.PlanPerformance{
			PlanMonth:          model.DateOf(plan.Period),
			Category:           category.Name,
			PlanSum:            plan.Sum,
			ActualSum:          actualSum,
			PerformancePercent: percentOf(actualSum, plan.Sum),
		})
	}

	return result, nil
}

// YearPerformance always yields twelve month records, zero-filled when
// the store holds no data for a month.
func (s *performanceService) YearPerformance(ctx context.Context, year int) (*model.YearPerformance, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	totalIssuance, err := s.creditRepo.SumBodyIssuedBetween(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum year issuance: %w", err)
	}
	totalPayments, err := s.paymentRepo.SumPaidBetween(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum year payments: %w", err)
	}

	result := &model.YearPerformance{Performance: make([]model.MonthPerformance, 0, 12)}
	for month := time.January; month <= time.December; month++ {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0)

		issuanceCount, issuanceSum, err := s.creditRepo.CountAndSumIssuedIn(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate issuance for %s: %w", monthStart.Format("2006-01"), err)
		}
		paymentCount, paymentSum, err := s.paymentRepo.CountAndSumPaidIn(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate payments for %s: %w", monthStart.Format("2006-01"), err)
		}

		issuancePlan, err := s.planRepo.SumForPeriodCategory(ctx, monthStart, model.CategoryIssuance)
		if err != nil {
			return nil, fmt.Errorf("failed to get issuance plan for %s: %w", monthStart.Format("2006-01"), err)
		}
		paymentPlan, err := s.planRepo.SumForPeriodCategory(ctx, monthStart, model.CategoryCollection)
		if err != nil {
			return nil, fmt.Errorf("failed to get collection plan for %s: %w", monthStart.Format("2006-01"), err)
		}

		result.Performance = append(result.Performance, model.MonthPerformance{
			MonthYear:           model.DateOf(monthStart),
			IssuanceCount:       issuanceCount,
			IssuancePlan:        issuancePlan,
			IssuanceSum:         issuanceSum,
			IssuancePerformance: percentOf(issuanceSum, issuancePlan),
			PaymentCount:        paymentCount,
			PaymentPlan:         paymentPlan,
			PaymentSum:          paymentSum,
			PaymentPerformance:  percentOf(paymentSum, paymentPlan),
			IssuanceYearPercent: percentOf(issuanceSum, totalIssuance),
			PaymentYearPercent:  percentOf(paymentSum, totalPayments),
		})
	}

	s.logger.Debug("Computed year performance",
		zap.Int("year", year),
		zap.Float64("total_issuance", totalIssuance),
		zap.Float64("total_payments", totalPayments))

	return result, nil
}

// percentOf guards division by zero: a non-positive base yields 0.
func percentOf(actual, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return actual / base * 100
}
