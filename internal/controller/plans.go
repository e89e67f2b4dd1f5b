package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/core"
	"github.com/obondar/creditflow/internal/service"
)

// uploads are small monthly plan sheets; 10 MiB is generous
const maxUploadSize = 10 << 20

type PlanController struct {
	planService core.PlanService
	logger      *zap.Logger
}

func NewPlanController(planService core.PlanService, logger *zap.Logger) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      logger,
	}
}

func (c *PlanController) InsertPlans(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	count, err := c.planService.InsertPlans(r.Context(), header.Filename, file)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		c.logger.Error("Failed to insert plans",
			zap.String("file", header.Filename),
			zap.Error(err))
		http.Error(w, "Error inserting plans: "+err.Error(), http.StatusInternalServerError)
		return
	}

	c.logger.Info("Plan upload accepted",
		zap.String("file", header.Filename),
		zap.Int("count", count))

	render.JSON(w, r, map[string]string{"message": "Plans successfully inserted"})
}
