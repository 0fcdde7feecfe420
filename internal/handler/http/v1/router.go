package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления опасностями
	hazards := api.Group("/hazards")
	{
		hazards.POST("", h.createHazard)
		hazards.GET("", h.listHazards)
		hazards.GET("/stats", h.getStats)
		hazards.GET("/:id", h.getHazard)
		hazards.PATCH("/:id/claim", h.claimHazard)
		hazards.PATCH("/:id/complete", h.completeHazard)

		// Удаление дополнительно защищается API-ключом, если ключи заданы
		if len(h.cfg.APIKeys) > 0 {
			hazards.DELETE("/:id", APIKeyAuthMiddleware(h.cfg, h.logger), h.deleteHazard)
		} else {
			hazards.DELETE("/:id", h.deleteHazard)
		}
	}

	// Маршруты для управления пользователями
	users := api.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
	}

	// Маршрут Health-check
	api.GET("/health", h.healthCheck)
}
