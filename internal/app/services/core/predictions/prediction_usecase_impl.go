package predictions

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type predictionUsecase struct {
	PredictionClient contracts.PredictionClient
	RedisRepository  contracts.RedisRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	predictionUsecaseInstance contracts.PredictionUsecase
	oncePredictionUsecase     sync.Once
)

func NewPredictionUsecase(
	predictionClient contracts.PredictionClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PredictionUsecase {
	oncePredictionUsecase.Do(func() {
		predictionUsecaseInstance = &predictionUsecase{
			PredictionClient: predictionClient,
			RedisRepository:  redisRepository,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return predictionUsecaseInstance
}

// ListSymptoms reads through the vocabulary cache.
func (uc *predictionUsecase) ListSymptoms(ctx context.Context) (*responses.Symptoms, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("predictionUsecase.ListSymptoms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeySymptomVocabulary)
	if err != nil {
		uc.Log.Warn("predictionUsecase.ListSymptoms cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var symptoms []string
		if err := json.Unmarshal([]byte(cached), &symptoms); err == nil {
			return &responses.Symptoms{Symptoms: symptoms}, nil
		}
	}

	symptoms, err := uc.fetchAndCache(ctx)
	if err != nil {
		uc.Log.Error("predictionUsecase.ListSymptoms error calling PredictionClient.FetchSymptoms",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.Symptoms{Symptoms: symptoms}, nil
}

func (uc *predictionUsecase) RefreshSymptoms(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	symptoms, err := uc.fetchAndCache(ctx)
	if err != nil {
		return err
	}
	uc.Log.Info("predictionUsecase.RefreshSymptoms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(symptoms)),
	)
	return nil
}

func (uc *predictionUsecase) fetchAndCache(ctx context.Context) ([]string, error) {
	symptoms, err := uc.PredictionClient.FetchSymptoms(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.AIModelService.SymptomCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeySymptomVocabulary, symptoms, ttl); err != nil {
		uc.Log.Warn("predictionUsecase failed to cache symptom vocabulary",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeySymptomVocabulary),
			zap.Error(err),
		)
	}
	return symptoms, nil
}

func (uc *predictionUsecase) Predict(ctx context.Context, request *requests.Predict) (*responses.Prediction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("predictionUsecase.Predict called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(request.Symptoms)),
	)

	label, err := uc.PredictionClient.Predict(ctx, request.Symptoms)
	if err != nil {
		uc.Log.Error("predictionUsecase.Predict error calling PredictionClient.Predict",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("predictionUsecase.Predict succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("prediction", label),
	)
	return &responses.Prediction{Prediction: label}, nil
}
