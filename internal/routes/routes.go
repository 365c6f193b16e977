package routes

import (
	"wantly_backend/internal/config"
	"wantly_backend/internal/handlers"
	"wantly_backend/internal/logger"
	"wantly_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP and WebSocket routes onto the router.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
	cfg *config.Config,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Health.RegisterRoutes(api)
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Request.RegisterRoutes(api)
		appHandlers.Offer.RegisterRoutes(api)
		appHandlers.Comment.RegisterRoutes(api)
		appHandlers.Review.RegisterRoutes(api)
		appHandlers.Alert.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Chat.RegisterRoutes(api)
		appHandlers.Currency.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
	}

	// Token is passed as a query parameter, the handler authenticates
	// the handshake itself.
	ginRouter.GET("/ws", wsHandler.ServeWS)
	logger.Info("WebSocket route /ws registered")

	// Locally stored uploads are served straight from disk. S3 objects
	// resolve to absolute URLs, so no route is needed for them.
	if cfg.Storage.Type == "local" {
		ginRouter.Static("/files", cfg.Storage.BasePath)
		logger.Info("Serving local uploads", "path", cfg.Storage.BasePath)
	}
}
