package user

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.Coordinator) {
	h := NewHandler(svc)

	users := router.Group("/users")
	users.GET("", h.ListUsers)
	users.POST("/:id/quota", h.SetQuota)
	users.POST("/:id/balance", h.AddBalance)
	users.POST("/:id/paid", h.MarkPaid)
}
