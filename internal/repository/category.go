package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/obondar/creditflow/internal/model"
)

type CategoryRepository interface {
	GetByName(ctx context.Context, name string) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
}

type categoryRepository struct {
	db *Database
}

func NewCategoryRepository(db *Database) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT id, name FROM dictionary WHERE name = $1`
	err := r.db.db.QueryRowContext(ctx, query, name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT id, name FROM dictionary WHERE id = $1`
	err := r.db.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}
