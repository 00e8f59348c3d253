package upload

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxReceiptSize = 10 << 20 // 10MB

type Handler struct {
	svc       *services.Coordinator
	uploadDir string
}

func NewHandler(svc *services.Coordinator, uploadDir string) *Handler {
	return &Handler{svc: svc, uploadDir: uploadDir}
}

// SubmitReceipt godoc
// @Summary Upload a payment receipt
// @Description Accepts an image or PDF proof of payment plus the paid amount
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param receiptFile formData file true "Receipt file (image or PDF, max 10MB)"
// @Param amount formData number true "Paid amount"
// @Param description formData string false "Description"
// @Success 201 {object} utils.Response{data=models.PaymentReceipt}
// @Failure 400 {object} utils.Response
// @Router /receipts [post]
func (h *Handler) SubmitReceipt(c *gin.Context) {
	userID := c.GetString("userID")

	file, err := c.FormFile("receiptFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Receipt file is required"))
		return
	}
	if file.Size > maxReceiptSize {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Receipt file exceeds the 10MB limit"))
		return
	}
	if !allowedReceiptType(file.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Only image or PDF receipts are accepted"))
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "A positive amount is required"))
		return
	}

	storedName := fmt.Sprintf("receipt-%d-%d%s",
		time.Now().UnixMilli(), rand.Int63n(1_000_000_000), filepath.Ext(file.Filename))
	dst := filepath.Join(h.uploadDir, storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		zap.L().Error("failed to store receipt file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store receipt file"))
		return
	}

	r, err := h.svc.SubmitReceipt(userID, amount, c.PostForm("description"), storedName, file.Filename)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Receipt submitted successfully", r))
}

func allowedReceiptType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}
