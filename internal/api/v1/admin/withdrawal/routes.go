package withdrawal

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.Coordinator) {
	h := NewHandler(svc)

	withdrawals := router.Group("/withdrawals")
	withdrawals.GET("", h.List)
	withdrawals.POST("/:id", h.Process)
}
