package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/casino-api/internal/auth"
	"github.com/hongminglow/casino-api/internal/config"
	"github.com/hongminglow/casino-api/internal/storage/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	hasher, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.Config{Port: "3000", CORSOrigins: []string{"*"}}
	return Router(cfg, zap.NewNop().Sugar(), memory.New(), hasher)
}

func TestRouterServesAPI(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"All fields required"}`, rec.Body.String())
}

func TestRouterPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/user/1/balance", nil)
	req.Header.Set("Origin", "https://casino.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterUnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewUsesConfiguredAddress(t *testing.T) {
	hasher, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	srv := New(config.Config{Port: "4321"}, zap.NewNop().Sugar(), memory.New(), hasher)
	assert.Equal(t, ":4321", srv.inner.Addr)
}
