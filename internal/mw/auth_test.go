package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func protected(t *testing.T) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return ServiceAuth(secret)(next)
}

func signedToken(t *testing.T, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "risk-panel",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestServiceAuthAcceptsSignedToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ml_result/1", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, secret))
	rr := httptest.NewRecorder()

	protected(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestServiceAuthRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ml_result/1", nil)
	rr := httptest.NewRecorder()

	protected(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestServiceAuthRejectsWrongKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ml_result/1", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret"))
	rr := httptest.NewRecorder()

	protected(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestServiceAuthRejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ml_result/1", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()

	protected(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
