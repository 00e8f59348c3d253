package receipt

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.Coordinator) {
	h := NewHandler(svc)

	receipts := router.Group("/receipts")
	receipts.GET("", h.List)
	receipts.POST("/:id", h.Review)
}
