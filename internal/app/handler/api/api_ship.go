package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ship_tracker/internal/app/ds"
)

type ShipHandler struct {
	Repository interface {
		GetShips() []ds.Ship
		GetShip(id string) (ds.Ship, error)
		CreateShip(payload ds.ShipPayload) (ds.Ship, error)
		UpdateShip(id string, payload ds.ShipPayload) (ds.Ship, error)
		DeleteShip(id string) error
		MoveShip(id string, coords ds.CoordsPayload) (ds.Ship, error)
		SetDestination(id string, coords ds.CoordsPayload) (ds.Ship, error)
		SetSpeed(id string, payload ds.SpeedPayload) (ds.Ship, error)
		CountShips() int
	}
}

// errorResponse - NotFound maps to 404, rejected payloads to 400, anything
// else is a 500 and gets logged.
func (h *ShipHandler) errorResponse(c *gin.Context, err error) {
	var vErr *ds.ValidationError
	switch {
	case errors.Is(err, ds.ErrShipNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": vErr.Message,
		})
	default:
		logrus.Errorf("unexpected handler error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	}
}

// GetShipsAPI - GET /ships - all ships
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repository.GetShips())
}

// GetShipAPI - GET /ships/:id - one ship
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	ship, err := h.Repository.GetShip(c.Param("id"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// CreateShipAPI - POST /ships - create a ship
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var payload ds.ShipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid data format",
		})
		return
	}

	ship, err := h.Repository.CreateShip(payload)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, ship)
}

// UpdateShipAPI - PUT /ships/:id - update the provided fields only
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	var payload ds.ShipPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid data format",
		})
		return
	}

	ship, err := h.Repository.UpdateShip(c.Param("id"), payload)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// DeleteShipAPI - DELETE /ships/:id - remove a ship
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	if err := h.Repository.DeleteShip(c.Param("id")); err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship deleted successfully",
	})
}

// MoveShipAPI - POST /ships/:id/move - overwrite the current position
func (h *ShipHandler) MoveShipAPI(c *gin.Context) {
	var coords ds.CoordsPayload
	if err := c.ShouldBindJSON(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coordinate format",
		})
		return
	}

	ship, err := h.Repository.MoveShip(c.Param("id"), coords)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// SetDestinationAPI - POST /ships/:id/destination - overwrite the destination
func (h *ShipHandler) SetDestinationAPI(c *gin.Context) {
	var coords ds.CoordsPayload
	if err := c.ShouldBindJSON(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coordinate format",
		})
		return
	}

	ship, err := h.Repository.SetDestination(c.Param("id"), coords)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// SetSpeedAPI - POST /ships/:id/speed - overwrite the speed
func (h *ShipHandler) SetSpeedAPI(c *gin.Context) {
	var payload ds.SpeedPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid speed format",
		})
		return
	}

	ship, err := h.Repository.SetSpeed(c.Param("id"), payload)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// HealthAPI - GET /health - liveness plus the current ship count
func (h *ShipHandler) HealthAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"ships_count": h.Repository.CountShips(),
	})
}
