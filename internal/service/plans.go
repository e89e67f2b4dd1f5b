package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/core"
	"github.com/obondar/creditflow/internal/metrics"
	"github.com/obondar/creditflow/internal/model"
	"github.com/obondar/creditflow/internal/repository"
)

// Accepted spellings of the month column. The day-first form is tried
// before the generic fallbacks.
var planDateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/06",
	"1/2/2006",
}

type planRow struct {
	Month    string  `validate:"required"`
	Category string  `validate:"required"`
	Sum      float64 `validate:"gte=0"`

	line int
}

type planService struct {
	categoryRepo repository.CategoryRepository
	planRepo     repository.PlanRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewPlanService(
	categoryRepo repository.CategoryRepository,
	planRepo repository.PlanRepository,
	logger *zap.Logger,
) core.PlanService {
	return &planService{
		categoryRepo: categoryRepo,
		planRepo:     planRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (s *planService) InsertPlans(ctx context.Context, filename string, file io.Reader) (int, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return 0, validationErrorf("Only Excel files are allowed")
	}

	rows, err := readPlanRows(file)
	if err != nil {
		return 0, err
	}

	type periodCategory struct {
		period   time.Time
		category int64
	}
	seen := make(map[periodCategory]bool)

	var staged []*model.Plan
	for _, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			return 0, validationErrorf("Error processing row %d (month=%s, category=%s, sum=%v): %v",
				row.line, row.Month, row.Category, row.Sum, err)
		}

		period, err := parsePlanDate(row.Month)
		if err != nil {
			return 0, validationErrorf("Error processing row %d: %v", row.line, err)
		}
		if period.Day() != 1 {
			return 0, validationErrorf("Plan date must be the first day of month. Got: %s",
				period.Format("2006-01-02"))
		}

		category, err := s.categoryRepo.GetByName(ctx, row.Category)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve category: %w", err)
		}
		if category == nil {
			return 0, validationErrorf("Category %s not found", row.Category)
		}

		key := periodCategory{period: period, category: category.ID}
		exists, err := s.planRepo.ExistsForPeriod(ctx, period, category.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to check existing plan: %w", err)
		}
		if exists || seen[key] {
			return 0, validationErrorf("Plan for %s and category %s already exists",
				period.Format("2006-01-02"), row.Category)
		}
		seen[key] = true

		staged = append(staged, &model.Plan{
			Period:     period,
			Sum:        row.Sum,
			CategoryID: category.ID,
		})
	}

	if len(staged) > 0 {
		if err := s.planRepo.CreateBatch(ctx, staged); err != nil {
			return 0, fmt.Errorf("failed to insert plans: %w", err)
		}
	}

	metrics.PlanRowsInserted.Add(float64(len(staged)))
	s.logger.Info("Plans inserted",
		zap.String("file", filename),
		zap.Int("count", len(staged)))

	return len(staged), nil
}

// readPlanRows opens the workbook and extracts the month/category/sum
// columns of the first sheet. Rows that are entirely blank are skipped;
// a blank sum on an otherwise filled row is a client error.
func readPlanRows(file io.Reader) ([]planRow, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, validationErrorf("Invalid file format")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, validationErrorf("Invalid file format")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(cells) == 0 {
		return nil, validationErrorf("Invalid file format")
	}

	header := make(map[string]int)
	for i, name := range cells[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	monthIdx, okMonth := header["month"]
	categoryIdx, okCategory := header["category"]
	sumIdx, okSum := header["sum"]
	if !okMonth || !okCategory || !okSum {
		return nil, validationErrorf("Invalid file format")
	}

	cell := func(cols []string, idx int) string {
		if idx < len(cols) {
			return strings.TrimSpace(cols[idx])
		}
		return ""
	}

	var rows []planRow
	for i, cols := range cells[1:] {
		month := cell(cols, monthIdx)
		category := cell(cols, categoryIdx)
		sumRaw := cell(cols, sumIdx)

		if month == "" && category == "" && sumRaw == "" {
			continue
		}
		if sumRaw == "" {
			return nil, validationErrorf("Sum column contains empty values")
		}

		sum, err := strconv.ParseFloat(sumRaw, 64)
		if err != nil {
			return nil, validationErrorf("Error processing row %d: invalid sum %q", i+2, sumRaw)
		}

		rows = append(rows, planRow{
			Month:    month,
			Category: category,
			Sum:      sum,
			line:     i + 2,
		})
	}

	return rows, nil
}

func parsePlanDate(raw string) (time.Time, error) {
	for _, layout := range planDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
