package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/persist"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pm, err := persist.NewManager(t.TempDir())
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := services.NewCoordinator(ledger.NewStore(), pm, nil, "admin", string(hash))

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), svc)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/api/v1/auth/register", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", data["username"])
	assert.NotEmpty(t, data["token"])
	assert.Regexp(t, `^1\d{10}$`, data["userNumber"])

	// Same username again conflicts.
	w = postJSON(t, router, "/api/v1/auth/register", gin.H{"username": "alice", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpointValidation(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing password", gin.H{"username": "alice"}},
		{"short username", gin.H{"username": "ab", "password": "secret1"}},
		{"short password", gin.H{"username": "alice", "password": "12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/api/v1/auth/register", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/login", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])

	w = postJSON(t, router, "/api/v1/auth/login", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(t, router, "/api/v1/auth/admin/login", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin", data["role"])
	assert.NotEmpty(t, data["token"])

	w = postJSON(t, router, "/api/v1/auth/admin/login", gin.H{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
