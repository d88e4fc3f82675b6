package middlewares

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockJWTManager struct {
	mock.Mock
}

func (m *MockJWTManager) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockJWTManager) ParseToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UpdateAcknowledgement, error) {
	args := m.Called(ctx, request)
	ack, _ := args.Get(0).(*responses.UpdateAcknowledgement)
	return ack, args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserUsecase) MakeAdmin(ctx context.Context, userID string) (*responses.UpdateAcknowledgement, error) {
	args := m.Called(ctx, userID)
	ack, _ := args.Get(0).(*responses.UpdateAcknowledgement)
	return ack, args.Error(1)
}

func (m *MockUserUsecase) IssueAccessToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func newTestMiddlewares() (*Middlewares, *MockJWTManager, *MockUserUsecase) {
	jwtManager := new(MockJWTManager)
	userUsecase := new(MockUserUsecase)
	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:                1,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 1,
		},
	}
	return NewMiddlewares(zap.NewNop(), internalConfig, jwtManager, userUsecase), jwtManager, userUsecase
}

func okHandler(t *testing.T, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantEmail != "" {
			email, ok := r.Context().Value(constvars.CONTEXT_AUTH_EMAIL_KEY).(string)
			assert.True(t, ok, "auth email should be set in context")
			assert.Equal(t, wantEmail, email)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
}

func decodeErrorMessage(t *testing.T, body io.Reader) string {
	var payload exceptions.CustomError
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload.ClientMessage
}

func TestVerifyJWT(t *testing.T) {
	m, jwtManager, _ := newTestMiddlewares()
	jwtManager.On("ParseToken", "good-token").Return("jane@example.com", nil)
	jwtManager.On("ParseToken", "bad-token").Return("", errors.New("signature is invalid"))

	handler := m.VerifyJWT(okHandler(t, "jane@example.com"))

	t.Run("Missing Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings?email=jane@example.com", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrClientUnauthorizedAccess, rr.Body.String())
		assert.Contains(t, rr.Header().Get(constvars.HeaderContentType), constvars.MIMETextPlain)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, constvars.ErrClientForbiddenAccess, decodeErrorMessage(t, rr.Body))
	})

	t.Run("Valid Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
	})
}

func TestRequireEmailMatch(t *testing.T) {
	m, jwtManager, _ := newTestMiddlewares()
	jwtManager.On("ParseToken", "good-token").Return("jane@example.com", nil)

	handler := m.VerifyJWT(m.RequireEmailMatch(constvars.QueryParamEmail)(okHandler(t, "")))

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "Matching Email", query: "jane@example.com", wantStatus: http.StatusOK},
		{name: "Mixed Case Email", query: "Jane@Example.com", wantStatus: http.StatusOK},
		{name: "Padded Email", query: "%20jane@example.com%20", wantStatus: http.StatusOK},
		{name: "Other Patient Email", query: "john@example.com", wantStatus: http.StatusForbidden},
		{name: "Missing Email Query", query: "", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bookings?email="+tt.query, nil)
			req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, constvars.ErrClientForbiddenAccess, decodeErrorMessage(t, rr.Body))
			}
		})
	}
}

func TestVerifyAdmin(t *testing.T) {
	m, jwtManager, userUsecase := newTestMiddlewares()
	jwtManager.On("ParseToken", "admin-token").Return("admin@example.com", nil)
	jwtManager.On("ParseToken", "patient-token").Return("jane@example.com", nil)
	jwtManager.On("ParseToken", "broken-token").Return("broken@example.com", nil)
	userUsecase.On("IsAdmin", mock.Anything, "admin@example.com").Return(true, nil)
	userUsecase.On("IsAdmin", mock.Anything, "jane@example.com").Return(false, nil)
	userUsecase.On("IsAdmin", mock.Anything, "broken@example.com").
		Return(false, exceptions.ErrMongoDBFindDocument(errors.New("connection reset")))

	handler := m.VerifyJWT(m.VerifyAdmin(okHandler(t, "")))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "Admin", token: "admin-token", wantStatus: http.StatusOK},
		{name: "Not Admin", token: "patient-token", wantStatus: http.StatusForbidden},
		{name: "Role Lookup Failure", token: "broken-token", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set(constvars.HeaderAuthorization, "Bearer "+tt.token)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	t.Run("Without VerifyJWT", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rr := httptest.NewRecorder()
		m.VerifyAdmin(okHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _, _ := newTestMiddlewares()

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Client Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m, _, _ := newTestMiddlewares()

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() { handler.ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, decodeErrorMessage(t, rr.Body))
}

func TestBodyLimit(t *testing.T) {
	m, _, _ := newTestMiddlewares()

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(strings.Repeat("a", (1<<20)+1)))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Error(t, readErr)

	req = httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(`{"name":"Dr. Who"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.NoError(t, readErr)
}

func TestRateLimit(t *testing.T) {
	m, _, _ := newTestMiddlewares()
	handler := m.RateLimit()(okHandler(t, ""))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/appointmentOptions", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/appointmentOptions", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, constvars.ErrClientTooManyRequests, decodeErrorMessage(t, second.Body))
}
