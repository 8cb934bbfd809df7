package controllers

import (
	"net/http"

	"ticket-booking-service/config"

	"github.com/gin-gonic/gin"
)

// Version is the semantic version reported by the status endpoint.
const Version = "1.0.0"

const statusMessage = "Ticket Booking Service is up and running!"

// StatusResponse is the payload returned by the root route.
type StatusResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// Status reports liveness and build metadata for container orchestrators.
// The response is composed from constants and the startup config snapshot,
// so the handler does no I/O and cannot fail.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Message:     statusMessage,
		Version:     Version,
		Environment: config.AppConfig.App.Environment,
	})
}
