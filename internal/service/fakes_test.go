package service

import (
	"context"
	"fmt"
	"time"

	"github.com/obondar/creditflow/internal/model"
)

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

type fakeCreditRepo struct {
	creditsByUser map[int64][]*model.Credit
	sumBetween    func(from, to time.Time) float64
	countSumIn    func(from, to time.Time) (int, float64)
}

func (f *fakeCreditRepo) GetByUserID(_ context.Context, userID int64) ([]*model.Credit, error) {
	return f.creditsByUser[userID], nil
}

func (f *fakeCreditRepo) SumBodyIssuedBetween(_ context.Context, from, to time.Time) (float64, error) {
	if f.sumBetween == nil {
		return 0, nil
	}
	return f.sumBetween(from, to), nil
}

func (f *fakeCreditRepo) CountAndSumIssuedIn(_ context.Context, from, to time.Time) (int, float64, error) {
	if f.countSumIn == nil {
		return 0, 0, nil
	}
	count, sum := f.countSumIn(from, to)
	return count, sum, nil
}

type fakePaymentRepo struct {
	paymentsByCredit map[int64][]*model.Payment
	sumBetween       func(from, to time.Time) float64
	countSumIn       func(from, to time.Time) (int, float64)
}

func (f *fakePaymentRepo) GetByCreditID(_ context.Context, creditID int64) ([]*model.Payment, error) {
	return f.paymentsByCredit[creditID], nil
}

func (f *fakePaymentRepo) SumPaidBetween(_ context.Context, from, to time.Time) (float64, error) {
	if f.sumBetween == nil {
		return 0, nil
	}
	return f.sumBetween(from, to), nil
}

func (f *fakePaymentRepo) CountAndSumPaidIn(_ context.Context, from, to time.Time) (int, float64, error) {
	if f.countSumIn == nil {
		return 0, 0, nil
	}
	count, sum := f.countSumIn(from, to)
	return count, sum, nil
}

type fakeCategoryRepo struct {
	byName map[string]*model.Category
	byID   map[int64]*model.Category
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*model.Category, error) {
	return f.byName[name], nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*model.Category, error) {
	return f.byID[id], nil
}

type fakePlanRepo struct {
	plans    []*model.Plan
	existing map[string]bool
	planSums map[string]float64

	batches   [][]*model.Plan
	createErr error
}

func existsKey(period time.Time, categoryID int64) string {
	return fmt.Sprintf("%s|%d", dateKey(period), categoryID)
}

func (f *fakePlanRepo) GetAll(_ context.Context) ([]*model.Plan, error) {
	return f.plans, nil
}

func (f *fakePlanRepo) ExistsForPeriod(_ context.Context, period time.Time, categoryID int64) (bool, error) {
	return f.existing[existsKey(period, categoryID)], nil
}

func (f *fakePlanRepo) SumForPeriodCategory(_ context.Context, period time.Time, categoryName string) (float64, error) {
	return f.planSums[dateKey(period)+"|"+categoryName], nil
}

func (f *fakePlanRepo) CreateBatch(_ context.Context, plans []*model.Plan) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.batches = append(f.batches, plans)
	return nil
}
