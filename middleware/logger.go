package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rochardEloi/genai-front-end/utils"
)

// RequestLogger trace chaque requête entrante avec le logger structuré.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.Logger.Infow("requête",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
