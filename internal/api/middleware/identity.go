package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// UserIDHeader selects the acting user.
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// UserChecker reports apperrors.ErrUserNotFound for unknown users.
type UserChecker interface {
	EnsureUser(ctx context.Context, userID int64) error
}

// Identity resolves the acting user from X-User-ID. Requests without the
// header act as defaultUserID; a malformed value is rejected with 400 and an
// unknown user with 404. A nil users skips the existence check.
//
//	r.Use(middleware.Identity(cfg.Demo.UserID, svc.User))
func Identity(defaultUserID int64, users UserChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := defaultUserID

			if raw := r.Header.Get(UserIDHeader); raw != "" {
				id, err := validation.ParseID(raw)
				if err != nil {
					response.RespondError(w, http.StatusBadRequest, "invalid X-User-ID header", err.Error())
					return
				}
				userID = id
			}

			if users != nil {
				if err := users.EnsureUser(r.Context(), userID); err != nil {
					if errors.Is(err, apperrors.ErrUserNotFound) {
						response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), "")
						return
					}
					response.RespondError(w, http.StatusInternalServerError, "failed to resolve user", err.Error())
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
		})
	}
}

// ContextWithUserID returns a copy of ctx acting as userID.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the acting user set by Identity.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
