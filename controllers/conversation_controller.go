package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

const jsonContentType = "application/json; charset=utf-8"

// GET /api/conversations/load/:id → GET /api/conversations/load/:id
func LoadConversation(c *gin.Context) {
	conversationID := c.Param("id")

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/conversations/load/"+conversationID, forwardedCookie(c), nil)
	if err != nil || !resp.OK() {
		utils.Logger.Errorw("conversation: chargement échoué",
			"conversation_id", conversationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation"})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}

// GET /api/history → GET /api/conversations/my-conversations
func GetHistory(c *gin.Context) {
	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/conversations/my-conversations", forwardedCookie(c), nil)
	if err != nil {
		utils.Logger.Errorw("historique: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   err.Error(),
			"details": "Impossible de récupérer les conversations",
		})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("historique: erreur API externe", "status", resp.StatusCode)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   fmt.Sprintf("Erreur %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"details": "Impossible de récupérer les conversations",
		})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}
