package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

// GET /api/subjects → GET /api/subjects/get-subjects
// L'API externe renvoie le catalogue sous forme de tableau ; on l'enveloppe
// dans la forme attendue par le frontend.
func GetSubjects(c *gin.Context) {
	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/subjects/get-subjects", forwardedCookie(c), nil)
	if err != nil {
		utils.Logger.Errorw("matières: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"details": "Impossible de récupérer les matières",
		})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("matières: erreur API externe", "status", resp.StatusCode)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Erreur %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"details": "Impossible de récupérer les matières",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"subjects": json.RawMessage(resp.Body),
	})
}
