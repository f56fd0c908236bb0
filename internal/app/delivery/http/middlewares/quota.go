package middlewares

import (
	"errors"
	"hospital-service/internal/app/services/shared/ratelimiter"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// IdentityQuota limits an authenticated identity to quota calls per minute
// within group. It must run after Authenticate.
func (m *Middlewares) IdentityQuota(group string, quota int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m.QuotaLimiter == nil || quota <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := utils.GetRequestID(ctx)

			session, err := utils.GetSessionData(ctx)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			out, err := m.QuotaLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
				ResourceName:      session.IdentityID,
				LimiterGroupName:  group,
				WindowDurationSec: 60,
				MaxQuota:          quota,
			})
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if !out.Allowed {
				utils.LogSecurityEvent(m.Log, "identity_quota_exceeded", requestID, constvars.SecuritySeverityLow,
					zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
					zap.String(constvars.LoggingOperationKey, group),
				)
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New(constvars.ErrClientTooManyRequests)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
