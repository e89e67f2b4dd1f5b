package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/obondar/creditflow/internal/model"
)

type PlanRepository interface {
	GetAll(ctx context.Context) ([]*model.Plan, error)
	ExistsForPeriod(ctx context.Context, period time.Time, categoryID int64) (bool, error)
	// SumForPeriodCategory returns the planned sum for the month that
	// starts at period, 0 if no such plan exists.
	SumForPeriodCategory(ctx context.Context, period time.Time, categoryName string) (float64, error)
	// CreateBatch inserts all plans inside a single transaction; either
	// every plan persists or none does.
	CreateBatch(ctx context.Context, plans []*model.Plan) error
}

type planRepository struct {
	db *Database
}

func NewPlanRepository(db *Database) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetAll(ctx context.Context) ([]*model.Plan, error) {
	query := `SELECT id, period, sum, category_id FROM plans ORDER BY id`

	rows, err := r.db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var plans []*model.Plan
	for rows.Next() {
		var plan model.Plan
		if err := rows.Scan(&plan.ID, &plan.Period, &plan.Sum, &plan.CategoryID); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return plans, nil
}

func (r *planRepository) ExistsForPeriod(ctx context.Context, period time.Time, categoryID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM plans WHERE period = $1 AND category_id = $2)`

	var exists bool
	if err := r.db.db.QueryRowContext(ctx, query, period, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check plan existence: %w", err)
	}
	return exists, nil
}

func (r *planRepository) SumForPeriodCategory(ctx context.Context, period time.Time, categoryName string) (float64, error) {
	query := `SELECT p.sum FROM plans p
              JOIN dictionary d ON d.id = p.category_id
              WHERE p.period = $1 AND d.name = $2`

	var sum float64
	err := r.db.db.QueryRowContext(ctx, query, period, categoryName).Scan(&sum)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get plan sum: %w", err)
	}
	return sum, nil
}

func (r *planRepository) CreateBatch(ctx context.Context, plans []*model.Plan) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `INSERT INTO plans (period, sum, category_id) VALUES ($1, $2, $3)`
	for _, plan := range plans {
		if _, err := tx.ExecContext(ctx, query, plan.Period, plan.Sum, plan.CategoryID); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("failed to insert plan: %w (rollback failed: %v)", err, rbErr)
			}
			return fmt.Errorf("failed to insert plan: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plans: %w", err)
	}

	return nil
}
