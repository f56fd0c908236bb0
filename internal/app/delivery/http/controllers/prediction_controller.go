package controllers

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PredictionController struct {
	Log               *zap.Logger
	PredictionUsecase contracts.PredictionUsecase
}

func NewPredictionController(logger *zap.Logger, predictionUsecase contracts.PredictionUsecase) *PredictionController {
	return &PredictionController{
		Log:               logger,
		PredictionUsecase: predictionUsecase,
	}
}

func (ctrl *PredictionController) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.ListSymptoms(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSymptomsSuccessMessage, result)
}

func (ctrl *PredictionController) Predict(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Predict)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizePredictRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.Predict(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictSuccessMessage, result)
}
