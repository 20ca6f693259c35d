package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T, ja *jwtauth.JWTAuth) http.Handler {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(OperatorID(r.Context())))
	})
	return jwtauth.Verifier(ja)(AuthRequired(ja)(handler))
}

func encodeToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	t.Helper()
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	return tokenString
}

func doAuthRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessTokenPasses(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	handler := newAuthTestServer(t, ja)

	token := encodeToken(t, ja, map[string]interface{}{
		"type":        "access",
		"operator_id": "op-7",
	})

	rec := doAuthRequest(handler, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "op-7", rec.Body.String(), "operator id must be on the request context")
}

func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	handler := newAuthTestServer(t, ja)

	rec := doAuthRequest(handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongTokenType(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	handler := newAuthTestServer(t, ja)

	token := encodeToken(t, ja, map[string]interface{}{
		"type":        "refresh",
		"operator_id": "op-7",
	})

	rec := doAuthRequest(handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MissingOperatorClaim(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	handler := newAuthTestServer(t, ja)

	token := encodeToken(t, ja, map[string]interface{}{
		"type": "access",
	})

	rec := doAuthRequest(handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
