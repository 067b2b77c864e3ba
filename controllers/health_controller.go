package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/config"
)

// GET /health
// Vérifie que le serveur tourne et que l'API externe répond.
func HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"upstream":  "ok",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.UpstreamBaseURL+"/", nil)
	if err != nil {
		response["upstream"] = "error: invalid upstream URL"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	resp, err := config.HTTPClient.Do(req)
	if err != nil {
		response["upstream"] = "error: cannot reach tutoring API"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	resp.Body.Close()

	c.JSON(http.StatusOK, response)
}
