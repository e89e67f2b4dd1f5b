package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/obondar/creditflow/internal/model"
)

type CreditRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*model.Credit, error)
	// SumBodyIssuedBetween sums credit bodies issued in the inclusive
	// window [from, to].
	SumBodyIssuedBetween(ctx context.Context, from, to time.Time) (float64, error)
	// CountAndSumIssuedIn counts and sums credits issued in the
	// half-open window [from, to).
	CountAndSumIssuedIn(ctx context.Context, from, to time.Time) (int, float64, error)
}

type creditRepository struct {
	db *Database
}

func NewCreditRepository(db *Database) CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.Credit, error) {
	query := `SELECT id, user_id, issuance_date, return_date, actual_return_date, body, percent
              FROM credits
              WHERE user_id = $1
              ORDER BY id`

	rows, err := r.db.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var credits []*model.Credit
	for rows.Next() {
		var credit model.Credit
		var actualReturn sql.NullTime

		if err := rows.Scan(
			&credit.ID,
			&credit.UserID,
			&credit.IssuanceDate,
			&credit.ReturnDate,
			&actualReturn,
			&credit.Body,
			&credit.Percent,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		if actualReturn.Valid {
			t := actualReturn.Time
			credit.ActualReturnDate = &t
		}

		credits = append(credits, &credit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return credits, nil
}

func (r *creditRepository) SumBodyIssuedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(body), 0) FROM credits
              WHERE issuance_date >= $1 AND issuance_date <= $2`

	var sum float64
	if err := r.db.db.QueryRowContext(ctx, query, from, to).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum issued credits: %w", err)
	}
	return sum, nil
}

func (r *creditRepository) CountAndSumIssuedIn(ctx context.Context, from, to time.Time) (int, float64, error) {
	query := `SELECT COUNT(id), COALESCE(SUM(body), 0) FROM credits
              WHERE issuance_date >= $1 AND issuance_date < $2`

	var count int
	var sum float64
	if err := r.db.db.QueryRowContext(ctx, query, from, to).Scan(&count, &sum); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate issued credits: %w", err)
	}
	return count, sum, nil
}
