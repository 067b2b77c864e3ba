package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rochardEloi/genai-front-end/config"
	"github.com/rochardEloi/genai-front-end/routes"
	"github.com/rochardEloi/genai-front-end/utils"
)

func main() {
	// Charger .env
	if err := godotenv.Load(); err != nil {
		log.Println("Fichier .env introuvable")
	}

	utils.InitLogger()
	defer utils.Logger.Sync()

	config.InitUpstream()

	r := gin.Default()

	// CORS : le frontend tourne sur un autre port et envoie ses cookies
	frontend := os.Getenv("FRONTEND_ORIGIN")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Horizon BFF is running")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.Logger.Infow("serveur démarré", "port", port)
	if err := r.Run(":" + port); err != nil {
		utils.Logger.Fatalw("serveur arrêté", "error", err)
	}
}
