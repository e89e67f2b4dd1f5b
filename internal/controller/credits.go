package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/core"
	"github.com/obondar/creditflow/internal/service"
)

type CreditController struct {
	creditService core.CreditService
	logger        *zap.Logger
}

func NewCreditController(creditService core.CreditService, logger *zap.Logger) *CreditController {
	return &CreditController{
		creditService: creditService,
		logger:        logger,
	}
}

func (c *CreditController) GetUserCredits(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	credits, err := c.creditService.GetUserCredits(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserCreditsNotFound) {
			http.Error(w, "User credits not found", http.StatusNotFound)
			return
		}
		c.logger.Error("Failed to get user credits",
			zap.Int64("user_id", userID),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, credits)
}
