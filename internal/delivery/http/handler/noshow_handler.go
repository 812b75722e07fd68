package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-queue-api/internal/usecase"
	"clinic-queue-api/pkg/response"

	"github.com/gorilla/mux"
)

type NoShowHandler struct {
	noShowUsecase usecase.NoShowUsecase
}

func NewNoShowHandler(noShowUsecase usecase.NoShowUsecase) *NoShowHandler {
	return &NoShowHandler{
		noShowUsecase: noShowUsecase,
	}
}

func (h *NoShowHandler) PredictNoShow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	prediction, err := h.noShowUsecase.Predict(r.Context(), appointmentID)
	if err != nil {
		var notFound *usecase.NotFoundError
		if errors.As(err, &notFound) {
			response.NotFound(w, notFound.Error())
			return
		}
		response.InternalServerError(w, "Failed to predict no-show")
		return
	}

	response.Success(w, http.StatusOK, "No-show prediction computed successfully", prediction)
}
