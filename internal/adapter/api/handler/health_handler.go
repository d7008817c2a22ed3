package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	started time.Time
}

var healthHandler = NewHealthHandler()

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		started: time.Now(),
	}
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
