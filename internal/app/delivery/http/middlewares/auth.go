package middlewares

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// VerifyJWT requires a bearer token and stores its email claim in the
// request context. A missing header is 401, any unusable token is 403.
func (m *Middlewares) VerifyJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.LogSecurityEvent(m.Log, "auth_header_missing", requestID, "low",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildPlainTextResponse(w, constvars.StatusUnauthorized, constvars.ErrClientUnauthorizedAccess)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		email, err := m.JWTManager.ParseToken(token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "auth_token_rejected", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyAdmin must run after VerifyJWT.
func (m *Middlewares) VerifyAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		email := utils.GetAuthEmail(r.Context())
		if email == "" {
			utils.BuildPlainTextResponse(w, constvars.StatusUnauthorized, constvars.ErrClientUnauthorizedAccess)
			return
		}

		isAdmin, err := m.UserUsecase.IsAdmin(r.Context(), email)
		if err != nil {
			m.Log.Error("Middlewares.VerifyAdmin error checking role",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, email),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if !isAdmin {
			utils.LogSecurityEvent(m.Log, "admin_access_denied", requestID, "medium",
				zap.String(constvars.LoggingEmailKey, email),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmailMatch rejects requests whose queryParam differs from the email
// carried by the token. It must run after VerifyJWT.
func (m *Middlewares) RequireEmailMatch(queryParam string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := utils.NormalizeEmail(r.URL.Query().Get(queryParam))
			decoded := utils.NormalizeEmail(utils.GetAuthEmail(r.Context()))

			if decoded == "" || requested != decoded {
				utils.LogSecurityEvent(m.Log, "email_mismatch", utils.GetRequestID(r.Context()), "medium",
					zap.String("requested_email", requested),
					zap.String("token_email", decoded),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrEmailMismatch(errors.New("token email differs from query")))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
