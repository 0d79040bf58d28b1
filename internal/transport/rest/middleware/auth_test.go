package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecohome/internal/service"
)

func playerRouter(t *testing.T) (*mux.Router, *service.AuthService) {
	t.Helper()
	authSvc := service.NewAuthService("eco-home", "Shkola74", "test-secret")
	mw := NewAuthMiddleware(authSvc)

	r := mux.NewRouter()
	routes := r.PathPrefix("/v1").Subrouter()
	routes.Use(mw.RequirePlayer)
	routes.HandleFunc("/sessions/{code}/purchase", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("POST")
	return r, authSvc
}

func TestRequirePlayerScopesTokenToSession(t *testing.T) {
	router, authSvc := playerRouter(t)

	token, err := authSvc.GeneratePlayerToken("123456", "p_abc")
	require.NoError(t, err)

	// Token for the session in the path passes.
	req := httptest.NewRequest("POST", "/v1/sessions/123456/purchase", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The same token against another session's routes is rejected.
	req = httptest.NewRequest("POST", "/v1/sessions/654321/purchase", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePlayerRejectsMissingOrBadToken(t *testing.T) {
	router, _ := playerRouter(t)

	req := httptest.NewRequest("POST", "/v1/sessions/123456/purchase", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("POST", "/v1/sessions/123456/purchase", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
