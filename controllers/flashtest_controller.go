package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/services"
	"github.com/rochardEloi/genai-front-end/utils"
)

type CreateFlashTestInput struct {
	SelectedBookID string `json:"selected_book_id"`
}

type CorrectFlashTestInput struct {
	FlashTestID string           `json:"flash_test_id"`
	UserAnswers []map[string]any `json:"user_answers"`
}

// POST /api/flash-test/create → POST /api/flash-test/create
func CreateFlashTest(c *gin.Context) {
	var input CreateFlashTestInput
	if err := c.ShouldBindJSON(&input); err != nil || input.SelectedBookID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "selected_book_id est requis"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/flash-test/create",
		forwardedCookie(c), gin.H{"selected_book_id": input.SelectedBookID})
	if err != nil || !resp.OK() {
		if resp != nil {
			utils.Logger.Errorw("flash-test: création échouée",
				"status", resp.StatusCode, "body", string(resp.Body))
		} else {
			utils.Logger.Errorw("flash-test: création échouée", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du quiz"})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}

// GET /api/flash-test/:id → GET /api/flash-test/my-flash-test/:id
func GetFlashTest(c *gin.Context) {
	testID := c.Param("id")

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/flash-test/my-flash-test/"+testID, forwardedCookie(c), nil)
	if err != nil {
		utils.Logger.Errorw("flash-test: chargement échoué", "test_id", testID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("flash-test: erreur API externe",
			"test_id", testID, "status", resp.StatusCode, "body", string(resp.Body))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Erreur %d", resp.StatusCode)})
		return
	}

	c.Data(http.StatusOK, jsonContentType, resp.Body)
}

// POST /api/flash-test/correct → POST /api/flash-test/correct
func CorrectFlashTest(c *gin.Context) {
	var input CorrectFlashTestInput
	if err := c.ShouldBindJSON(&input); err != nil || input.FlashTestID == "" || input.UserAnswers == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "flash_test_id et user_answers sont requis"})
		return
	}

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodPost, "/api/flash-test/correct",
		forwardedCookie(c), gin.H{
			"flash_test_id": input.FlashTestID,
			"user_answers":  input.UserAnswers,
		})
	if err != nil {
		utils.Logger.Errorw("flash-test: correction échouée", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la correction du quiz"})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("flash-test: correction refusée",
			"status", resp.StatusCode, "body", string(resp.Body))
		if resp.StatusCode == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée. Veuillez vous reconnecter."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la correction du quiz"})
		return
	}

	// Format relayé : { total_user_points, total_points, user_answers: [...] }
	c.Data(http.StatusOK, jsonContentType, resp.Body)
}

// GET /api/flash-tests → GET /api/flash-test/my-flash-tests
func ListFlashTests(c *gin.Context) {
	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/flash-test/my-flash-tests", forwardedCookie(c), nil)
	if err != nil {
		utils.Logger.Errorw("flash-tests: appel externe échoué", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"details": "Impossible de récupérer les tests",
		})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("flash-tests: erreur API externe", "status", resp.StatusCode)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Erreur %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"details": "Impossible de récupérer les tests",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tests":   services.NormalizeFlashTestList(resp.Body),
	})
}

// GET /api/flash-tests/:id → GET /api/flash-test/my-flash-test/:id
func GetFlashTestDetail(c *gin.Context) {
	testID := c.Param("id")

	resp, err := services.CallUpstream(c.Request.Context(), http.MethodGet,
		"/api/flash-test/my-flash-test/"+testID, forwardedCookie(c), nil)
	if err != nil {
		utils.Logger.Errorw("flash-test: détail échoué", "test_id", testID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"details": "Impossible de récupérer le test",
		})
		return
	}
	if !resp.OK() {
		utils.Logger.Errorw("flash-test: détail refusé", "test_id", testID, "status", resp.StatusCode)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Erreur %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"details": "Impossible de récupérer le test",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"test":    json.RawMessage(resp.Body),
	})
}
