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

type creditService struct {
	creditRepo  repository.CreditRepository
	paymentRepo repository.PaymentRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewCreditService(
	creditRepo repository.CreditRepository,
	paymentRepo repository.PaymentRepository,
	logger *zap.Logger,
) core.CreditService {
	return &creditService{
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *creditService) GetUserCredits(ctx context.Context, userID int64) (*model.UserCredits, error) {
	credits, err := s.creditRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get credits: %w", err)
	}
	if len(credits) == 0 {
		return nil, ErrUserCreditsNotFound
	}

	result := &model.UserCredits{Credits: make([]model.CreditSummary, 0, len(credits))}
	for _, credit := range credits {
		payments, err := s.paymentRepo.GetByCreditID(ctx, credit.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get payments for credit %d: %w", credit.ID, err)
		}
		result.Credits = append(result.Credits, s.summarize(credit, payments))
	}

	s.logger.Debug("Summarized user credits",
		zap.Int64("user_id", userID),
		zap.Int("count", len(result.Credits)))

	return result, nil
}

func (s *creditService) summarize(credit *model.Credit, payments []*model.Payment) model.CreditSummary {
	base := model.CreditBase{
		IssuanceDate: model.DateOf(credit.IssuanceDate),
		IsClosed:     credit.Closed(),
		Body:         credit.Body,
		Percent:      credit.Percent,
	}

	if credit.Closed() {
		var total float64
		for _, payment := range payments {
			total += payment.Sum
		}
		return model.ClosedCredit{
			CreditBase:       base,
			ActualReturnDate: model.DateOf(*credit.ActualReturnDate),
			TotalPayments:    total,
		}
	}

	var bodyPayments, percentPayments float64
	for _, payment := range payments {
		switch payment.TypeID {
		case model.PaymentTypeBody:
			bodyPayments += payment.Sum
		case model.PaymentTypePercent:
			percentPayments += payment.Sum
		}
	}

	return model.OpenCredit{
		CreditBase:      base,
		ReturnDate:      model.DateOf(credit.ReturnDate),
		OverdueDays:     overdueDays(s.now(), credit.ReturnDate),
		BodyPayments:    bodyPayments,
		PercentPayments: percentPayments,
	}
}

// overdueDays counts whole days between the contractual return date and
// today; 0 when the credit is not yet due.
func overdueDays(now, returnDate time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(returnDate.Year(), returnDate.Month(), returnDate.Day(), 0, 0, 0, 0, time.UTC)
	if !today.After(due) {
		return 0
	}
	return int(today.Sub(due).Hours() / 24)
}
