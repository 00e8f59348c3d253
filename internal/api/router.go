package api

import (
	"net/http"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/config"
	adminReceipt "github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api/v1/admin/receipt"
	adminUser "github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api/v1/admin/user"
	adminWithdrawal "github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api/v1/admin/withdrawal"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api/v1/auth"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api/v1/common/upload"
	userRoutes "github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api/v1/user"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/broadcast"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/middleware"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, svc *services.Coordinator, hub *broadcast.Hub) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          300,
	}))

	// Uploaded receipt files are served back by their stored names.
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/ws", hub.Handle)

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, svc)

		v1.GET("/wallet", func(c *gin.Context) {
			c.JSON(http.StatusOK, utils.NewSuccessResponse("Wallet address retrieved successfully", gin.H{
				"walletAddress": cfg.WalletAddress,
			}))
		})

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware(svc))
		{
			userRoutes.RegisterRoutes(authorized, svc)
			upload.RegisterRoutes(authorized, svc, cfg.UploadDir)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin, svc)
			adminWithdrawal.RegisterRoutes(admin, svc)
			adminReceipt.RegisterRoutes(admin, svc)
		}
	}

	return router
}
