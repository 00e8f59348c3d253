package auth

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.Coordinator) {
	h := NewHandler(svc)

	auth := router.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/admin/login", h.AdminLogin)
}
