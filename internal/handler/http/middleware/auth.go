package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/raminfosys/attendance-backend-go/internal/domain/auth"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/handler/http/response"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token and attaches the
// caller's auth.Identity to the request context. It runs after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: userID, Role: user.Role(role)})
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}
