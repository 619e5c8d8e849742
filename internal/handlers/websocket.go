package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
)

// ListingFeed upgrades the request to a WebSocket carrying listing events.
func ListingFeed(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		services.HandleWebSocket(hub, c.Writer, c.Request)
	}
}
