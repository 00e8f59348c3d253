package upload

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.Coordinator, uploadDir string) {
	h := NewHandler(svc, uploadDir)

	router.POST("/receipts", h.SubmitReceipt)
}
