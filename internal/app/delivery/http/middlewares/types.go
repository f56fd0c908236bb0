package middlewares

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/services/shared/ratelimiter"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	Enforcer       *casbin.Enforcer
	QuotaLimiter   *ratelimiter.ResourceLimiter
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	enforcer *casbin.Enforcer,
	quotaLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		Enforcer:       enforcer,
		QuotaLimiter:   quotaLimiter,
		InternalConfig: internalConfig,
	}
}
