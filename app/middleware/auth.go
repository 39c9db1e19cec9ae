package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "github.com/ckoockiy/api-rest-dbz/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct{ Signer *jwtutil.Signer }

// RequireAuth gates a handler behind a valid bearer token. Missing header,
// malformed token, bad signature and expiry all answer 401 with the same
// generic body; the wrapped handler never runs.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			unauthorized(w)
			return
		}
		claims, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"respuesta":"token invalido o ausente"}`))
}
