package models

// Exam est un examen généré : un document texte, jamais modifié ensuite.
type Exam struct {
	Exam  string `json:"exam"`
	Title string `json:"title"`
}

// ExamSummary est une entrée de la liste "mes examens".
type ExamSummary struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Subject   string `json:"subject,omitempty"`
	Profile   string `json:"profile,omitempty"`
	Exam      string `json:"exam,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
