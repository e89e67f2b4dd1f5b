package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/core"
)

type PerformanceController struct {
	performanceService core.PerformanceService
	logger             *zap.Logger
}

func NewPerformanceController(performanceService core.PerformanceService, logger *zap.Logger) *PerformanceController {
	return &PerformanceController{
		performanceService: performanceService,
		logger:             logger,
	}
}

func (c *PerformanceController) GetPlansPerformance(w http.ResponseWriter, r *http.Request) {
	checkDate, err := time.Parse("2006-01-02", chi.URLParam(r, "check_date"))
	if err != nil {
		http.Error(w, "Invalid check date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	performance, err := c.performanceService.PlansPerformance(r.Context(), checkDate)
	if err != nil {
		c.logger.Error("Failed to compute plans performance",
			zap.Time("check_date", checkDate),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, performance)
}

func (c *PerformanceController) GetYearPerformance(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}

	performance, err := c.performanceService.YearPerformance(r.Context(), year)
	if err != nil {
		c.logger.Error("Failed to compute year performance",
			zap.Int("year", year),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, performance)
}
