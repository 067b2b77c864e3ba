package services

import (
	"encoding/json"

	"github.com/rochardEloi/genai-front-end/models"
)

// NormalizeFlashTestList ramène la liste "mes flash tests" à une seule forme
// canonique. L'API externe a été vue renvoyer un tableau nu, un objet
// {flash_tests: [...]} ou un objet {tests: [...]} ; tout le reste du code ne
// connaît que []models.FlashTestSummary.
func NormalizeFlashTestList(body []byte) []models.FlashTestSummary {
	var direct []models.FlashTestSummary
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct
	}

	var wrapped struct {
		FlashTests []models.FlashTestSummary `json:"flash_tests"`
		Tests      []models.FlashTestSummary `json:"tests"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if wrapped.FlashTests != nil {
			return wrapped.FlashTests
		}
		if wrapped.Tests != nil {
			return wrapped.Tests
		}
	}

	return []models.FlashTestSummary{}
}
