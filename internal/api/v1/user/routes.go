package user

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.Coordinator) {
	h := NewHandler(svc)

	auth := router.Group("/auth")
	auth.GET("/user", h.CurrentUser)

	router.POST("/orders", h.SubmitOrder)
	router.POST("/withdrawals", h.CreateWithdrawal)
	router.GET("/receipts", h.ListReceipts)
}
