package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/persist"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthenticated(t *testing.T) (*gin.Engine, *services.Coordinator, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pm, err := persist.NewManager(t.TempDir())
	require.NoError(t, err)
	svc := services.NewCoordinator(ledger.NewStore(), pm, nil, "admin", "")

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set("user", u)
		c.Set("userID", u.ID)
	})
	RegisterRoutes(group, svc)
	return router, svc, u
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentUserEndpoint(t *testing.T) {
	router, svc, u := setupAuthenticated(t)

	// The handler reloads the latest snapshot, so a quota assigned after
	// authentication shows up.
	_, err := svc.SetQuota(u.ID, 100)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/v1/auth/user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Data.Username)
	assert.Equal(t, float64(100), resp.Data.Quota)
	assert.Len(t, resp.Data.Tasks, 25)
	assert.Equal(t, float64(10), resp.Data.NextReward)
	assert.Empty(t, resp.Data.Token)
}

func TestSubmitOrderEndpoint(t *testing.T) {
	router, svc, u := setupAuthenticated(t)
	_, err := svc.SetQuota(u.ID, 100)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{"orderType": "receive"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data OrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.User.TotalReceived)
	require.Len(t, resp.Data.NewCompletions, 1)
	assert.Equal(t, 1, resp.Data.NewCompletions[0].ID)
}

func TestSubmitOrderEndpointRejectsBadInput(t *testing.T) {
	router, _, _ := setupAuthenticated(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{"orderType": "swap"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOrderEndpointWithoutQuota(t *testing.T) {
	router, _, _ := setupAuthenticated(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{"orderType": "receive"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quota")
}

func TestCreateWithdrawalEndpoint(t *testing.T) {
	router, svc, u := setupAuthenticated(t)

	_, err := svc.AddBalance(u.ID, 500)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"amount":        150,
		"walletAddress": "bc1qtest",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/withdrawals", gin.H{
		"amount":        50,
		"walletAddress": "bc1qtest",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/withdrawals", gin.H{"amount": 150})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReceiptsEndpoint(t *testing.T) {
	router, svc, u := setupAuthenticated(t)

	_, err := svc.SubmitReceipt(u.ID, 189, "gate payment", "receipt-1.png", "proof.png")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/v1/receipts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []ReceiptResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "gate payment", resp.Data[0].Description)
	assert.Equal(t, models.ReceiptStatusPending, resp.Data[0].Status)
}
