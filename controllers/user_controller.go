package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

// GET /api/users/me → GET /api/users/me
func GetMe(c *gin.Context) {
	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/users/me", forwardedCookie(c), nil)
	if err != nil {
		utils.Logger.Errorw("profil: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("profil: erreur API externe",
			"status", resp.StatusCode, "body", string(resp.Body))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Erreur %d", resp.StatusCode)})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}

// POST /api/users/update → POST /api/users/update
// Le corps (nom et/ou mot de passe) est transmis tel quel.
func UpdateProfile(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost,
		"/api/users/update", forwardedCookie(c), body)
	if err != nil {
		utils.Logger.Errorw("profil: mise à jour échouée", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("profil: mise à jour refusée",
			"status", resp.StatusCode, "body", string(resp.Body))
		c.JSON(resp.StatusCode, gin.H{
			"error":   fmt.Sprintf("Erreur %d", resp.StatusCode),
			"details": string(resp.Body),
		})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}
