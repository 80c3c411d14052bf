package middleware

import (
	"net/http"
	"strings"

	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/service"
)

const authCookieName = "auth_token"

// AuthMiddleware checks for a JWT and adds user + profile + subscription to the context if
// valid. The token comes from the auth_token cookie or an Authorization: Bearer header.
// Requests without a usable token continue anonymously.
func AuthMiddleware(authService *service.AuthService, userService *service.UserService, profileService *service.ProfileService, subscriptionService *service.SubscriptionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromCookie := authToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Invalid session: drop the cookie and continue as a guest
			anonymous := func() {
				if fromCookie {
					clearAuthCookie(w)
				}
				next.ServeHTTP(w, r)
			}

			userID, err := authService.UserID(token)
			if err != nil {
				anonymous()
				return
			}

			ctx := r.Context()

			user, err := userService.ByID(ctx, userID)
			if err != nil {
				anonymous()
				return
			}

			profile, err := profileService.ByUserID(ctx, userID)
			if err != nil {
				// Profile not found - this shouldn't happen but handle gracefully
				anonymous()
				return
			}

			// Missing subscription records resolve to the free plan
			subscription, err := subscriptionService.Subscription(ctx, userID)
			if err != nil {
				anonymous()
				return
			}

			ctx = ctxkeys.WithUser(ctx, user)
			ctx = ctxkeys.WithProfile(ctx, profile)
			ctx = ctxkeys.WithSubscription(ctx, subscription)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authToken returns the request's JWT and whether it came from the cookie.
func authToken(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token), false
		}
	}

	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	}
}
