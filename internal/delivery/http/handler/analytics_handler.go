package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-queue-api/internal/usecase"
	"clinic-queue-api/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute analytics summary")
		return
	}

	response.Success(w, http.StatusOK, "Analytics summary retrieved successfully", summary)
}

func (h *AnalyticsHandler) GetByDay(w http.ResponseWriter, r *http.Request) {
	days := usecase.DefaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid days parameter", nil)
			return
		}
		days = parsed
	}

	buckets, err := h.analyticsUsecase.ByDay(r.Context(), days)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDaysRange) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to compute by-day analytics")
		return
	}

	response.Success(w, http.StatusOK, "By-day analytics retrieved successfully", buckets)
}
