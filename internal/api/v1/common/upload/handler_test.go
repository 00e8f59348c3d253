package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/persist"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, *services.Coordinator, *models.User, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pm, err := persist.NewManager(t.TempDir())
	require.NoError(t, err)
	svc := services.NewCoordinator(ledger.NewStore(), pm, nil, "admin", "")

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)

	uploadDir := t.TempDir()
	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) { c.Set("userID", u.ID) })
	RegisterRoutes(group, svc, uploadDir)
	return router, svc, u, uploadDir
}

func receiptForm(t *testing.T, fileName, contentType, amount string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="receiptFile"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("amount", amount))
	require.NoError(t, writer.WriteField("description", "gate payment"))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSubmitReceiptUpload(t *testing.T) {
	router, svc, u, uploadDir := setupUploadRouter(t)

	body, contentType := receiptForm(t, "proof.png", "image/png", "189")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	receipts := svc.ListUserReceipts(u.ID)
	require.Len(t, receipts, 1)
	assert.Equal(t, "proof.png", receipts[0].OriginalName)
	assert.Equal(t, "gate payment", receipts[0].Description)
	assert.Equal(t, float64(189), receipts[0].Amount)

	// The file lands under its opaque stored name.
	stored, err := os.ReadFile(filepath.Join(uploadDir, receipts[0].FileName))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), stored)
}

func TestSubmitReceiptUploadValidation(t *testing.T) {
	router, svc, u, _ := setupUploadRouter(t)

	tests := []struct {
		name        string
		fileName    string
		contentType string
		amount      string
	}{
		{"unsupported file type", "proof.exe", "application/octet-stream", "189"},
		{"missing amount", "proof.png", "image/png", ""},
		{"negative amount", "proof.png", "image/png", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := receiptForm(t, tt.fileName, tt.contentType, tt.amount)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Empty(t, svc.ListUserReceipts(u.ID))
}
