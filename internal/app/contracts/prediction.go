package contracts

import (
	"context"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type PredictionUsecase interface {
	ListSymptoms(ctx context.Context) (*responses.Symptoms, error)
	RefreshSymptoms(ctx context.Context) error
	Predict(ctx context.Context, request *requests.Predict) (*responses.Prediction, error)
}

// PredictionClient talks to the disease classifier service.
type PredictionClient interface {
	FetchSymptoms(ctx context.Context) ([]string, error)
	Predict(ctx context.Context, symptoms []string) (string, error)
}
