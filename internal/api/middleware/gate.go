package middleware

import (
	"context"
	"net/http"
	"strings"

	"student_portal_backend/internal/config"
	"student_portal_backend/internal/model"
	"student_portal_backend/pkg/token"
)

const (
	sessionCookieName = "token"
	loginPath         = "/login"
)

type claimsCtxKey struct{}

// NewSessionGate - request guard for page routes. Protection is the
// default: only configured public pages, static assets and API routes
// pass through without a valid session token. Everything else redirects
// to the login page when the token cookie is missing or invalid.
func NewSessionGate(gateCfg config.GateConfig, jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			for _, prefix := range gateCfg.SkipPrefixes() {
				if strings.HasPrefix(path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			for _, suffix := range gateCfg.SkipSuffixes() {
				if strings.HasSuffix(path, suffix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			for _, public := range gateCfg.PublicPaths() {
				if path == public || strings.HasPrefix(path, public+"/") {
					next.ServeHTTP(w, r)
					return
				}
			}

			c, err := r.Cookie(sessionCookieName)
			if err != nil || c.Value == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			claims := token.Verify(c.Value, jwtCfg.SecretKey())
			if claims == nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

func ContextWithClaims(ctx context.Context, claims *model.Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

// ClaimsFromContext - identity verified by the session gate, if any.
func ClaimsFromContext(ctx context.Context) (*model.Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*model.Claims)
	return claims, ok
}
