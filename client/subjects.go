package client

import "github.com/rochardEloi/genai-front-end/models"

// SubjectOption est une matière prête à l'affichage dans le sélecteur.
type SubjectOption struct {
	Key   string
	Label string
	Emoji string
	Hint  string
}

var subjectEmojis = map[string]string{
	"Mathématiques": "📐",
	"Maths":         "📐",
	"Physique":      "⚡",
	"Chimie":        "🧪",
	"Français":      "📖",
	"Histoire":      "📜",
	"Géographie":    "🌍",
	"Anglais":       "🔠",
	"SVT":           "🔬",
	"Philosophie":   "💭",
}

var subjectHints = map[string]string{
	"Mathématiques": "Algèbre, géométrie et exercices guidés",
	"Physique":      "Mécanique, électricité et expériences",
	"Chimie":        "Réactions, équations et travaux pratiques",
	"Français":      "Grammaire, littérature et dissertation",
}

const defaultSubjectHint = "Cours et exercices personnalisés avec ton tuteur"

// BuildSubjectOptions filtre les matières actives et les enrichit pour le
// sélecteur : emoji et texte d'accroche par matière.
func BuildSubjectOptions(subjects []models.Subject) []SubjectOption {
	options := make([]SubjectOption, 0, len(subjects))
	for _, subject := range subjects {
		if subject.Status != models.SubjectStatusEnabled {
			continue
		}
		emoji, ok := subjectEmojis[subject.Name]
		if !ok {
			emoji = "📚"
		}
		hint, ok := subjectHints[subject.Name]
		if !ok {
			hint = defaultSubjectHint
		}
		options = append(options, SubjectOption{
			Key:   subject.ID,
			Label: subject.Name,
			Emoji: emoji,
			Hint:  hint,
		})
	}
	return options
}
