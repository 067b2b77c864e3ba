package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

type ChatInput struct {
	Message        string `json:"message"`
	SelectedBookID string `json:"selected_book_id"`
	ConversationID string `json:"conversation_id"`
	Timestamp      string `json:"timestamp"`
}

// POST /api/chat → POST /api/conversations/chat
func Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Données invalides - message requis"})
		return
	}

	// Seuls les champs attendus par l'API externe partent dans le corps ;
	// conversation_id est omis tant qu'il n'existe pas, pour que le serveur
	// crée un nouveau fil au premier message.
	payload := gin.H{"message": input.Message}
	if input.SelectedBookID != "" {
		payload["selected_book_id"] = input.SelectedBookID
	}
	if input.ConversationID != "" {
		payload["conversation_id"] = input.ConversationID
	}

	utils.Logger.Debugw("chat: envoi vers l'API externe",
		"selected_book_id", input.SelectedBookID,
		"conversation_id", input.ConversationID,
	)

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/conversations/chat",
		forwardedCookie(c), payload)
	if err != nil {
		utils.Logger.Errorw("chat: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erreur de connexion au serveur",
			"error":   err.Error(),
		})
		return
	}

	data := resp.JSONBody()

	if !resp.OK() {
		message := services.FieldString(data, "message")
		if message == "" {
			message = "Erreur lors de l'envoi du message"
		}
		c.JSON(resp.StatusCode, gin.H{
			"message": message,
			"details": data["details"],
			"status":  resp.StatusCode,
		})
		return
	}

	relaySetCookies(c, resp.SetCookies)
	c.JSON(http.StatusOK, gin.H{
		"message": "Message envoyé avec succès",
		"data":    data,
	})
}
