package client

import "github.com/rochardEloi/genai-front-end/models"

// Progress résume la progression de l'élève à partir de ses flash tests.
type Progress struct {
	Total          int
	Completed      int
	AveragePercent int
	EarnedPoints   float64
	PossiblePoints float64
	BestTitle      string
	BestPercent    int
}

// BuildProgress agrège les flash tests de l'élève : un test est compté comme
// terminé dès qu'il a des points utilisateur, et la moyenne porte sur les
// tests terminés seulement.
func BuildProgress(tests []models.FlashTestSummary) Progress {
	p := Progress{Total: len(tests)}

	sum := 0
	for _, test := range tests {
		if test.TotalUserPoints <= 0 {
			continue
		}
		p.Completed++
		p.EarnedPoints += test.TotalUserPoints
		p.PossiblePoints += test.TotalPoints
		percent := scorePercent(test.TotalUserPoints, test.TotalPoints)
		sum += percent
		if percent > p.BestPercent {
			p.BestPercent = percent
			p.BestTitle = test.Title
		}
	}
	if p.Completed > 0 {
		p.AveragePercent = sum / p.Completed
	}
	return p
}
