package middleware

import (
	"context"
	"net/http"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/auth"
	"github.com/fleetworks/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type operatorIDKey struct{}

// OperatorID returns the authenticated operator's id stored by AuthRequired,
// or "" when the request was not authenticated.
func OperatorID(ctx context.Context) string {
	id, _ := ctx.Value(operatorIDKey{}).(string)
	return id
}

// AuthRequired admits only access tokens issued to an operator and puts the
// operator id on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			operatorID, ok := claims["operator_id"].(string)
			if !ok || operatorID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), operatorIDKey{}, operatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
