package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/controllers"
	"github.com/rochardEloi/genai-front-end/middleware"
)

// SetupRouter enregistre toutes les routes du BFF. Chaque route relaie
// exactement un endpoint de l'API de tutorat externe.
func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.RequestLogger())

	// Authentification
	api.POST("/login", controllers.Login)
	api.POST("/register", middleware.NoCache(), controllers.Register)
	api.POST("/verify", controllers.Verify)

	// Chat et conversations
	api.POST("/chat", controllers.Chat)
	api.GET("/conversations/load/:id", controllers.LoadConversation)
	api.GET("/history", middleware.NoCache(), controllers.GetHistory)

	// Matières
	api.GET("/subjects", controllers.GetSubjects)

	// Flash tests
	flashTest := api.Group("/flash-test")
	{
		flashTest.POST("/create", controllers.CreateFlashTest)
		flashTest.POST("/correct", controllers.CorrectFlashTest)
		flashTest.GET("/:id", middleware.NoCache(), controllers.GetFlashTest)
	}
	api.GET("/flash-tests", controllers.ListFlashTests)
	api.GET("/flash-tests/:id", middleware.NoCache(), controllers.GetFlashTestDetail)

	// Examens
	exams := api.Group("/exams", middleware.NoCache())
	{
		exams.POST("/create", controllers.CreateExam)
		exams.GET("/my-exams", controllers.GetMyExams)
	}

	// Profil
	users := api.Group("/users", middleware.NoCache())
	{
		users.GET("/me", controllers.GetMe)
		users.POST("/update", controllers.UpdateProfile)
	}

	return r
}
