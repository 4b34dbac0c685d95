package routes

import (
	coreport "github.com/votequest/coin-service/internal/domain/port/core"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/handler"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	userHandler *handler.UserHandler,
	auditHandler *handler.AuditHandler,
	medalHandler *handler.MedalHandler,
) {
	// User routes
	userRoutes := router.Group("/user")
	{
		// POST /user
		userRoutes.POST("", userHandler.CreateUser)

		// GET /user/:userId/balance
		userRoutes.GET("/:userId/balance", userHandler.GetBalance)

		// POST /user/:userId/transaction
		userRoutes.POST("/:userId/transaction", transactionHandler.ApplyTransaction)

		// GET /user/:userId/audit
		userRoutes.GET("/:userId/audit", auditHandler.AuditUser)

		// Medal store
		userRoutes.POST("/:userId/medal/:medalName/purchase", medalHandler.PurchaseMedal)
		userRoutes.POST("/:userId/medal/:medalName/gift", medalHandler.GiftMedal)
	}

	// GET /transaction/:transactionId/verify
	router.GET("/transaction/:transactionId/verify", transactionHandler.VerifyReceipt)

	// Internal routes, guarded by the shared scan secret inside the handler
	router.POST("/internal/scan", auditHandler.Scan)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
