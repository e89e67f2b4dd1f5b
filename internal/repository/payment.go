package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/obondar/creditflow/internal/model"
)

type PaymentRepository interface {
	GetByCreditID(ctx context.Context, creditID int64) ([]*model.Payment, error)
	// SumPaidBetween sums payment amounts made in the inclusive window
	// [from, to].
	SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error)
	// CountAndSumPaidIn counts and sums payments made in the half-open
	// window [from, to).
	CountAndSumPaidIn(ctx context.Context, from, to time.Time) (int, float64, error)
}

type paymentRepository struct {
	db *Database
}

func NewPaymentRepository(db *Database) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetByCreditID(ctx context.Context, creditID int64) ([]*model.Payment, error) {
	query := `SELECT id, sum, payment_date, credit_id, type_id
              FROM payments
              WHERE credit_id = $1
              ORDER BY payment_date`

	rows, err := r.db.db.QueryContext(ctx, query, creditID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		var payment model.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.Sum,
			&payment.PaymentDate,
			&payment.CreditID,
			&payment.TypeID,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(sum), 0) FROM payments
              WHERE payment_date >= $1 AND payment_date <= $2`

	var sum float64
	if err := r.db.db.QueryRowContext(ctx, query, from, to).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return sum, nil
}

func (r *paymentRepository) CountAndSumPaidIn(ctx context.Context, from, to time.Time) (int, float64, error) {
	query := `SELECT COUNT(id), COALESCE(SUM(sum), 0) FROM payments
              WHERE payment_date >= $1 AND payment_date < $2`

	var count int
	var sum float64
	if err := r.db.db.QueryRowContext(ctx, query, from, to).Scan(&count, &sum); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	return count, sum, nil
}
