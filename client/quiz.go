package client

import (
	"context"
	"fmt"
	"math"

	"github.com/rochardEloi/genai-front-end/models"
)

// QuizState décrit où en est le passage d'un quiz.
type QuizState string

const (
	QuizLoading     QuizState = "loading"
	QuizAlreadyDone QuizState = "already_done"
	QuizAnswering   QuizState = "answering"
	QuizSubmitting  QuizState = "submitting"
	QuizResults     QuizState = "results"
	QuizError       QuizState = "error"
)

// QuestionResult associe une question à la réponse de l'élève et aux points
// obtenus après correction.
type QuestionResult struct {
	Question models.Question
	Answer   []int
	Points   float64
	Max      float64
}

// Quiz est la machine à états du passage d'un quiz : chargement, réponses,
// soumission, résultats.
type Quiz struct {
	api *API

	state   QuizState
	test    *models.FlashTest
	answers [][]int
	current int
	results []QuestionResult
	earned  float64
	err     error
}

func NewQuiz(api *API) *Quiz {
	return &Quiz{api: api, state: QuizLoading}
}

func (q *Quiz) State() QuizState          { return q.state }
func (q *Quiz) Test() *models.FlashTest   { return q.test }
func (q *Quiz) Current() int              { return q.current }
func (q *Quiz) Err() error                { return q.err }
func (q *Quiz) Results() []QuestionResult { return q.results }

// Load récupère le quiz et décide de l'état de départ : un quiz déjà corrigé
// passe directement aux résultats figés.
func (q *Quiz) Load(ctx context.Context, id string) error {
	if id == "" {
		return q.fail(fmt.Errorf("ID du quiz manquant"))
	}

	q.state = QuizLoading
	test, err := q.api.FlashTest(ctx, id)
	if err != nil {
		return q.fail(err)
	}
	if test == nil || len(test.Questions) == 0 {
		return q.fail(fmt.Errorf("Quiz invalide ou non trouve"))
	}

	q.test = test
	if test.Done() {
		q.state = QuizAlreadyDone
		return nil
	}

	q.answers = make([][]int, len(test.Questions))
	for i := range q.answers {
		q.answers[i] = []int{}
	}
	q.current = 0
	q.state = QuizAnswering
	return nil
}

func (q *Quiz) fail(err error) error {
	q.state = QuizError
	q.err = err
	return err
}

// Select enregistre un choix pour la question courante : remplacement pour
// une question à choix unique, bascule pour un choix multiple.
func (q *Quiz) Select(option int) {
	if q.state != QuizAnswering {
		return
	}
	if option < 0 || option >= len(q.test.Questions[q.current].Options) {
		return
	}

	current := q.answers[q.current]
	if q.test.Questions[q.current].Type == models.QuestionOneChoice {
		q.answers[q.current] = []int{option}
		return
	}
	for i, picked := range current {
		if picked == option {
			q.answers[q.current] = append(current[:i], current[i+1:]...)
			return
		}
	}
	q.answers[q.current] = append(current, option)
}

// Answer rend une copie des choix de la question d'indice i.
func (q *Quiz) Answer(i int) []int {
	if q.answers == nil || i < 0 || i >= len(q.answers) {
		return nil
	}
	out := make([]int, len(q.answers[i]))
	copy(out, q.answers[i])
	return out
}

func (q *Quiz) Next() {
	if q.state == QuizAnswering && q.current < len(q.test.Questions)-1 {
		q.current++
	}
}

func (q *Quiz) Prev() {
	if q.state == QuizAnswering && q.current > 0 {
		q.current--
	}
}

func (q *Quiz) GoTo(i int) {
	if q.state == QuizAnswering && i >= 0 && i < len(q.test.Questions) {
		q.current = i
	}
}

// Answered indique si la question d'indice i a au moins un choix.
func (q *Quiz) Answered(i int) bool {
	return i >= 0 && i < len(q.answers) && len(q.answers[i]) > 0
}

// Remaining compte les questions sans réponse.
func (q *Quiz) Remaining() int {
	remaining := 0
	for _, answer := range q.answers {
		if len(answer) == 0 {
			remaining++
		}
	}
	return remaining
}

func (q *Quiz) Complete() bool { return q.state == QuizAnswering && q.Remaining() == 0 }

// Submit envoie les réponses pour correction. Un quiz incomplet est refusé
// sans appel réseau.
func (q *Quiz) Submit(ctx context.Context) error {
	if q.state != QuizAnswering {
		return fmt.Errorf("aucun quiz en cours")
	}
	if remaining := q.Remaining(); remaining > 0 {
		return fmt.Errorf("Reponds a toutes les questions (%d restante(s))", remaining)
	}

	q.state = QuizSubmitting
	correction, err := q.api.CorrectFlashTest(ctx, q.test.ID, q.answers)
	if err != nil {
		return q.fail(err)
	}

	results := make([]QuestionResult, len(q.test.Questions))
	for i, question := range q.test.Questions {
		result := QuestionResult{
			Question: question,
			Answer:   q.answers[i],
			Max:      question.Points,
		}
		if i < len(correction.UserAnswers) {
			result.Points = correction.UserAnswers[i].Points
		}
		results[i] = result
	}

	q.results = results
	q.earned = correction.TotalUserPoints
	if correction.TotalPoints > 0 {
		q.test.TotalPoints = correction.TotalPoints
	}
	q.state = QuizResults
	return nil
}

// Percent rend le score en pourcentage arrondi, pour les résultats frais
// comme pour un quiz déjà corrigé.
func (q *Quiz) Percent() int {
	switch q.state {
	case QuizResults:
		return scorePercent(q.earned, q.test.TotalPoints)
	case QuizAlreadyDone:
		return scorePercent(q.test.TotalUserPoints, q.test.TotalPoints)
	}
	return 0
}

func scorePercent(earned, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(earned / total * 100))
}

// ScoreMessage rend le message d'encouragement selon le score.
func ScoreMessage(percent int) string {
	switch {
	case percent >= 80:
		return "Excellent travail! 🎉"
	case percent >= 60:
		return "Bon travail! 👍"
	case percent >= 40:
		return "Tu peux faire mieux 📚"
	default:
		return "Continue à réviser! 💪"
	}
}

// ScoreTier rend la couleur associée au score.
func ScoreTier(percent int) string {
	switch {
	case percent >= 80:
		return "green"
	case percent >= 60:
		return "blue"
	case percent >= 40:
		return "yellow"
	default:
		return "red"
	}
}
