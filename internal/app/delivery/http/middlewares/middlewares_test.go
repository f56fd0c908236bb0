package middlewares

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts/mocks"
	"hospital-service/internal/app/drivers/rbac"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/ratelimiter"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(t *testing.T, authUsecase *mocks.AuthUsecase) *Middlewares {
	t.Helper()
	logger := zap.NewNop()
	enforcer, err := rbac.NewEnforcer(logger)
	require.NoError(t, err)

	return &Middlewares{
		Log:         logger,
		AuthUsecase: authUsecase,
		Enforcer:    enforcer,
		InternalConfig: &config.InternalConfig{
			App: config.App{EndpointPrefix: "api"},
		},
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) exceptions.CustomError {
	t.Helper()
	var body exceptions.CustomError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
}

func TestAuthenticate(t *testing.T) {
	authUsecase := new(mocks.AuthUsecase)
	middlewares := newTestMiddlewares(t, authUsecase)

	t.Run("Missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		rr := httptest.NewRecorder()

		middlewares.Authenticate(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrClientTokenMissing, decodeError(t, rr).ClientMessage)
	})

	t.Run("Invalid token", func(t *testing.T) {
		authUsecase.On("ParseSession", mock.Anything, "bad-token").
			Return(nil, exceptions.ErrTokenInvalidOrExpired(nil)).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad-token")
		rr := httptest.NewRecorder()

		middlewares.Authenticate(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrClientTokenInvalidOrExpired, decodeError(t, rr).ClientMessage)
	})

	t.Run("Valid token stores session", func(t *testing.T) {
		session := &models.Session{IdentityID: "64b000000000000000000001", Role: constvars.RolePatient}
		authUsecase.On("ParseSession", mock.Anything, "good-token").Return(session, nil).Once()

		var seen *models.Session
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		middlewares.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, session, seen)
	})

	authUsecase.AssertExpectations(t)
}

func TestAuthorize(t *testing.T) {
	middlewares := newTestMiddlewares(t, new(mocks.AuthUsecase))

	tests := []struct {
		name       string
		role       string
		method     string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"patient lists services", constvars.RolePatient, http.MethodGet, "/api/services", http.StatusOK, ""},
		{"user reads a doctor", constvars.RoleUser, http.MethodGet, "/api/doctor/64b000000000000000000001", http.StatusOK, ""},
		{"doctor updates appointment", constvars.RoleDoctor, http.MethodPut, "/api/appointment/64b000000000000000000001", http.StatusOK, ""},
		{"patient updates appointment", constvars.RolePatient, http.MethodPut, "/api/appointment/64b000000000000000000001", http.StatusForbidden, constvars.ErrClientUnauthorizedRole},
		{"admin changes role", constvars.RoleAdmin, http.MethodPut, "/api/admin/users/64b000000000000000000001/role", http.StatusOK, ""},
		{"patient on admin route", constvars.RolePatient, http.MethodGet, "/api/admin/verify", http.StatusForbidden, constvars.ErrClientAdminOnly},
		{"doctor creates service", constvars.RoleDoctor, http.MethodPost, "/api/admin/services", http.StatusForbidden, constvars.ErrClientAdminOnly},
		{"user saves transaction", constvars.RoleUser, http.MethodPost, "/api/payment/save-transaction", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			ctx := req.Context()
			ctx = contextWithSession(ctx, &models.Session{IdentityID: "64b0000000000000000000ff", Role: tt.role})
			rr := httptest.NewRecorder()

			middlewares.Authorize(okHandler()).ServeHTTP(rr, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, rr).ClientMessage)
			}
		})
	}

	t.Run("No session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		rr := httptest.NewRecorder()

		middlewares.Authorize(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(t, new(mocks.AuthUsecase))

	t.Run("Keeps client request ID", func(t *testing.T) {
		var seen string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()

		middlewares.RequestIDMiddleware(handler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generates request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		middlewares.RequestIDMiddleware(okHandler()).ServeHTTP(rr, req)

		assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
	})

	t.Run("Replaces malformed client request ID", func(t *testing.T) {
		for _, clientID := range []string{"id with spaces", "id\r\ninjected", strings.Repeat("a", 65)} {
			var seen string
			var fromClient bool
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			})

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set(constvars.HeaderXRequestID, clientID)
			rr := httptest.NewRecorder()

			middlewares.RequestIDMiddleware(handler).ServeHTTP(rr, req)

			assert.NotEqual(t, clientID, seen)
			assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX), seen)
			assert.False(t, fromClient)
			assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
		}
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := newTestMiddlewares(t, new(mocks.AuthUsecase))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		middlewares.ErrorHandler(handler).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, decodeError(t, rr).ClientMessage)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, 15*time.Minute)
	current := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(okHandler())

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1234"))

	// other clients are unaffected
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1234"))

	// still blocked after the bucket would have refilled
	current = current.Add(5 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1234"))

	current = current.Add(11 * time.Minute)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1234"))
}

func contextWithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}

func TestIdentityQuota(t *testing.T) {
	redisRepo := new(mocks.RedisRepository)
	middlewares := newTestMiddlewares(t, new(mocks.AuthUsecase))
	middlewares.QuotaLimiter = ratelimiter.NewResourceLimiter(redisRepo, zap.NewNop())
	handler := middlewares.IdentityQuota("predict", 2)(okHandler())

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/disease/predict", nil)
		ctx := contextWithSession(req.Context(), &models.Session{IdentityID: "64b000000000000000000001", Role: constvars.RolePatient})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req.WithContext(ctx))
		return rr
	}

	redisRepo.On("IncrementWithTTL", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "ratelimit:predict:64b000000000000000000001:")
	}), 61*time.Second).Return(2, nil).Once()
	assert.Equal(t, http.StatusOK, call().Code)

	redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(3, nil).Once()
	rr := call()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderRetryAfter))

	redisRepo.AssertExpectations(t)
}

func TestIdentityQuotaDisabled(t *testing.T) {
	middlewares := newTestMiddlewares(t, new(mocks.AuthUsecase))

	req := httptest.NewRequest(http.MethodPost, "/api/disease/predict", nil)
	rr := httptest.NewRecorder()
	middlewares.IdentityQuota("predict", 5)(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
