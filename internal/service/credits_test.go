package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/model"
)

func newTestCreditService(creditRepo *fakeCreditRepo, paymentRepo *fakePaymentRepo, now time.Time) *creditService {
	return &creditService{
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
		logger:      zap.NewNop(),
		now:         func() time.Time { return now },
	}
}

func TestGetUserCredits_NotFound(t *testing.T) {
	s := newTestCreditService(
		&fakeCreditRepo{creditsByUser: map[int64][]*model.Credit{}},
		&fakePaymentRepo{},
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	)

	_, err := s.GetUserCredits(context.Background(), 42)
	if !errors.Is(err, ErrUserCreditsNotFound) {
		t.Fatalf("expected ErrUserCreditsNotFound, got %v", err)
	}
}

func TestGetUserCredits_ClosedCredit(t *testing.T) {
	closedAt := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	creditRepo := &fakeCreditRepo{creditsByUser: map[int64][]*model.Credit{
		1: {{
			ID:               10,
			UserID:           1,
			IssuanceDate:     time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			ReturnDate:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ActualReturnDate: &closedAt,
			Body:             10000,
			Percent:          12.5,
		}},
	}}
	paymentRepo := &fakePaymentRepo{paymentsByCredit: map[int64][]*model.Payment{
		10: {
			{Sum: 3000, TypeID: model.PaymentTypeBody},
			{Sum: 500, TypeID: model.PaymentTypePercent},
			{Sum: 250, TypeID: 7}, // unknown type still counts for closed credits
		},
	}}

	s := newTestCreditService(creditRepo, paymentRepo, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	result, err := s.GetUserCredits(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Credits) != 1 {
		t.Fatalf("expected 1 credit, got %d", len(result.Credits))
	}

	closed, ok := result.Credits[0].(model.ClosedCredit)
	if !ok {
		t.Fatalf("expected ClosedCredit, got %T", result.Credits[0])
	}
	if !closed.IsClosed {
		t.Error("IsClosed should be true")
	}
	if closed.TotalPayments != 3750 {
		t.Errorf("TotalPayments = %v, want 3750", closed.TotalPayments)
	}
	if closed.ActualReturnDate.String() != "2024-02-10" {
		t.Errorf("ActualReturnDate = %s, want 2024-02-10", closed.ActualReturnDate)
	}
}

func TestGetUserCredits_OpenCredit(t *testing.T) {
	creditRepo := &fakeCreditRepo{creditsByUser: map[int64][]*model.Credit{
		1: {{
			ID:           11,
			UserID:       1,
			IssuanceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ReturnDate:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			Body:         20000,
			Percent:      15,
		}},
	}}
	paymentRepo := &fakePaymentRepo{paymentsByCredit: map[int64][]*model.Payment{
		11: {
			{Sum: 4000, TypeID: model.PaymentTypeBody},
			{Sum: 1000, TypeID: model.PaymentTypeBody},
			{Sum: 600, TypeID: model.PaymentTypePercent},
			{Sum: 300, TypeID: 9}, // neither body nor percent
		},
	}}

	s := newTestCreditService(creditRepo, paymentRepo, time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC))
	result, err := s.GetUserCredits(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	open, ok := result.Credits[0].(model.OpenCredit)
	if !ok {
		t.Fatalf("expected OpenCredit, got %T", result.Credits[0])
	}
	if open.IsClosed {
		t.Error("IsClosed should be false")
	}
	if open.BodyPayments != 5000 {
		t.Errorf("BodyPayments = %v, want 5000", open.BodyPayments)
	}
	if open.PercentPayments != 600 {
		t.Errorf("PercentPayments = %v, want 600", open.PercentPayments)
	}
	if open.OverdueDays != 10 {
		t.Errorf("OverdueDays = %d, want 10", open.OverdueDays)
	}
}

func TestOverdueDays(t *testing.T) {
	cases := []struct {
		name       string
		now        time.Time
		returnDate time.Time
		want       int
	}{
		{
			name:       "not yet due",
			now:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			returnDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want:       0,
		},
		{
			name:       "due today",
			now:        time.Date(2024, 5, 20, 23, 59, 0, 0, time.UTC),
			returnDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want:       0,
		},
		{
			name:       "one day overdue",
			now:        time.Date(2024, 5, 21, 0, 1, 0, 0, time.UTC),
			returnDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want:       1,
		},
		{
			name:       "long overdue across months",
			now:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			returnDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want:       42,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overdueDays(tc.now, tc.returnDate); got != tc.want {
				t.Fatalf("overdueDays = %d, want %d", got, tc.want)
			}
		})
	}
}
