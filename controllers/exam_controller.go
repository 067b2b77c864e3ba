package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

type CreateExamInput struct {
	Subject string `json:"subject"`
	Profile string `json:"profile"`
}

// POST /api/exams/create → POST /api/exams/create
func CreateExam(c *gin.Context) {
	var input CreateExamInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Subject == "" || input.Profile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subject et profile sont requis"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/exams/create",
		forwardedCookie(c), gin.H{
			"subject": input.Subject,
			"profile": input.Profile,
		})
	if err != nil {
		utils.Logger.Errorw("examens: génération échouée", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("examens: erreur API externe",
			"status", resp.StatusCode, "body", string(resp.Body))
		c.JSON(resp.StatusCode, gin.H{
			"error":   fmt.Sprintf("Erreur %d", resp.StatusCode),
			"details": string(resp.Body),
		})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}

// GET /api/exams/my-exams → GET /api/exams/my-exams
func GetMyExams(c *gin.Context) {
	cookie := forwardedCookie(c)
	if cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/exams/my-exams", cookie, nil)
	if err != nil {
		utils.Logger.Errorw("examens: liste échouée", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("examens: liste refusée",
			"status", resp.StatusCode, "body", string(resp.Body))
		c.JSON(resp.StatusCode, gin.H{
			"error":   fmt.Sprintf("Erreur %d", resp.StatusCode),
			"details": string(resp.Body),
		})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}
