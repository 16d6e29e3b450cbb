package middlewares

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/exceptions"
	"dermref-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// sessionToken checks the cookie first, then a "token" field in a JSON
// body, then the bearer header. The body is restored so handlers can still
// decode it.
func (m *Middlewares) sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if token := m.bodyToken(r); token != "" {
		return token
	}

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
		return strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
	}
	return ""
}

func (m *Middlewares) bodyToken(r *http.Request) string {
	if r.Body == nil {
		return ""
	}
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Token
}

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.sessionToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		claims, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextDoctorID, claims.DoctorID)
		ctx = context.WithValue(ctx, constvars.ContextRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole re-reads the doctor document so a revoked or repurposed
// account cannot ride on a stale token.
func (m *Middlewares) RequireRole(role models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doctorID, ok := r.Context().Value(constvars.ContextDoctorID).(string)
			if !ok || doctorID == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
			defer cancel()

			doctor, err := m.DoctorRepository.FindDoctorByID(ctx, doctorID)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if doctor == nil || doctor.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
