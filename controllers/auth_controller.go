package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

// ====== INPUT STRUCTS ======
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyInput struct {
	Code string `json:"code"`
}

// ====== HANDLERS ======

// POST /api/login → POST /api/users/login
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email et mot de passe sont requis"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/users/login",
		forwardedCookie(c), gin.H{"email": input.Email, "password": input.Password})
	if err != nil {
		utils.Logger.Errorw("login: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError,
			gin.H{"message": "Erreur de connexion au serveur: " + err.Error()})
		return
	}

	data := resp.JSONBody()

	if !resp.OK() {
		message := services.FieldString(data, "message", "error")
		if message == "" {
			message = "Une erreur est survenue lors de la connexion"
		}
		c.JSON(resp.StatusCode, gin.H{"message": message})
		return
	}

	message := services.FieldString(data, "message")
	if message == "" {
		message = "Connexion réussie"
	}
	success, ok := data["success"].(bool)
	if !ok {
		success = true
	}

	relaySetCookies(c, resp.SetCookies)
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"token":   data["token"],
		"user":    data["user"],
		"success": success,
	})
}

// POST /api/register → POST /api/users/register
// Le corps est transmis tel quel ; pas de cookie entrant à ce stade.
func Register(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Données invalides"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/users/register", "", body)
	if err != nil {
		utils.Logger.Errorw("register: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur de connexion au serveur"})
		return
	}

	data := resp.JSONBody()

	if !resp.OK() {
		message := services.FieldString(data, "message")
		if message == "" {
			message = "Erreur lors de l'inscription"
		}
		c.JSON(resp.StatusCode, gin.H{"message": message})
		return
	}

	relaySetCookies(c, resp.SetCookies)
	c.JSON(http.StatusOK, gin.H{
		"message": "Compte créé avec succès",
		"user":    data,
		"cookies": resp.SetCookies,
	})
}

// POST /api/verify → POST /api/users/verify
func Verify(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Le code de vérification est requis"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/users/verify",
		forwardedCookie(c), gin.H{"code": input.Code})
	if err != nil {
		utils.Logger.Errorw("verify: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError,
			gin.H{"message": "Erreur de connexion au serveur: " + err.Error()})
		return
	}

	data := resp.JSONBody()

	if !resp.OK() {
		message := services.FieldString(data, "message")
		if message == "" {
			message = "Erreur lors de la vérification"
		}
		c.JSON(resp.StatusCode, gin.H{"message": message})
		return
	}

	// Cette route ne retransmet que le premier cookie. L'API externe n'a été
	// vue en poser qu'un seul ici ; ne pas changer sans l'avoir confirmé.
	if len(resp.SetCookies) > 0 {
		c.Writer.Header().Set("Set-Cookie", resp.SetCookies[0])
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Code vérifié avec succès",
		"user":    data["user"],
	})
}
