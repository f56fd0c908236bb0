package middlewares

import (
	"context"
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a session and stores it under
// CONTEXT_SESSION_DATA_KEY for the handlers below.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)

		token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if token == "" {
			utils.LogSecurityEvent(m.Log, "missing_bearer_token", requestID, constvars.SecuritySeverityLow,
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevAuthTokenMissing)))
			return
		}

		session, err := m.AuthUsecase.ParseSession(ctx, token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_bearer_token", requestID, constvars.SecuritySeverityMedium,
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the session role against the RBAC policy. Paths are
// matched with the endpoint prefix removed.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)

		session, err := utils.GetSessionData(ctx)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		path := m.policyPath(r.URL.Path)
		allowed, err := m.Enforcer.Enforce(session.Role, r.Method, path)
		if err != nil {
			m.Log.Error("Middlewares.Authorize error evaluating policy",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			return
		}

		if !allowed {
			utils.LogSecurityEvent(m.Log, "access_denied", requestID, constvars.SecuritySeverityMedium,
				zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
				zap.String(constvars.LoggingRoleKey, session.Role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			if strings.HasPrefix(path, "/admin") {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminOnly(nil))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnauthorizedRole(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) policyPath(path string) string {
	prefix := "/" + strings.Trim(m.InternalConfig.App.EndpointPrefix, "/")
	if prefix != "/" {
		path = strings.TrimPrefix(path, prefix)
	}
	if path == "" {
		return "/"
	}
	return strings.TrimSuffix(path, "/")
}
