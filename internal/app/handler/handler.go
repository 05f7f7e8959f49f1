package handler

import (
	"github.com/gin-gonic/gin"

	"ship_tracker/internal/app/handler/api"
	"ship_tracker/internal/app/repository"
)

type Handler struct {
	Repository     *repository.Repository
	ShipAPIHandler *api.ShipHandler
}

func NewHandler(rep *repository.Repository) *Handler {
	return &Handler{
		Repository:     rep,
		ShipAPIHandler: &api.ShipHandler{Repository: rep},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
	router.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
	router.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
	router.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
	router.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
	router.POST("/ships/:id/move", h.ShipAPIHandler.MoveShipAPI)
	router.POST("/ships/:id/destination", h.ShipAPIHandler.SetDestinationAPI)
	router.POST("/ships/:id/speed", h.ShipAPIHandler.SetSpeedAPI)
	router.GET("/health", h.ShipAPIHandler.HealthAPI)
}
