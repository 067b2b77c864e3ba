package models

// QuestionType distingue choix unique et choix multiples.
type QuestionType string

const (
	QuestionOneChoice      QuestionType = "ONE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

// Question est une question générée d'un flash test.
type Question struct {
	ID      string       `json:"_id,omitempty"`
	Text    string       `json:"question"`
	Type    QuestionType `json:"question_type"`
	Options []string     `json:"options"`
	Points  float64      `json:"points"`
}

// UserAnswer est la réponse enregistrée pour une question : indices des
// options choisies et points obtenus (fractionnaires possibles en
// choix multiples).
type UserAnswer struct {
	Question string  `json:"question,omitempty"`
	Answer   []int   `json:"answer"`
	Points   float64 `json:"points"`
}

// FlashTest est un quiz généré pour une matière. Dès que user_answers est
// non vide, le test est terminé et ne peut plus être refait.
type FlashTest struct {
	ID              string       `json:"_id"`
	Title           string       `json:"title"`
	SelectedBookID  string       `json:"selected_book_id,omitempty"`
	Questions       []Question   `json:"flash_test"`
	TotalPoints     float64      `json:"total_points"`
	TotalUserPoints float64      `json:"total_user_points"`
	UserAnswers     []UserAnswer `json:"user_answers"`
	CreatedAt       string       `json:"created_at,omitempty"`
}

// Done indique si le test a déjà été fait.
func (t *FlashTest) Done() bool {
	return len(t.UserAnswers) > 0
}

// FlashTestSummary est la forme canonique d'une entrée de la liste
// "mes flash tests", quelle que soit la forme renvoyée par l'API externe
// (voir services.NormalizeFlashTestList).
type FlashTestSummary struct {
	ID              string  `json:"_id"`
	Title           string  `json:"title"`
	SelectedBookID  string  `json:"selected_book_id,omitempty"`
	TotalPoints     float64 `json:"total_points"`
	TotalUserPoints float64 `json:"total_user_points"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// Correction est le résultat de la correction serveur d'un flash test.
type Correction struct {
	TotalUserPoints float64      `json:"total_user_points"`
	TotalPoints     float64      `json:"total_points"`
	UserAnswers     []UserAnswer `json:"user_answers"`
}
