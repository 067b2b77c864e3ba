package middleware

import "github.com/gin-gonic/gin"

// NoCache interdit la mise en cache de la réponse. Appliqué aux routes qui
// relaient des données de session ou des appels mutateurs.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
