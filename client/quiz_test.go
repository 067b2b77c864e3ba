package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func quizFixture() map[string]any {
	return map[string]any{
		"_id":   "ft1",
		"title": "Quiz Physique",
		"flash_test": []map[string]any{
			{
				"question":      "Unité de la force?",
				"question_type": "ONE_CHOICE",
				"options":       []string{"Newton", "Joule", "Watt"},
				"points":        1,
			},
			{
				"question":      "Grandeurs vectorielles?",
				"question_type": "MULTIPLE_CHOICE",
				"options":       []string{"Vitesse", "Masse", "Force"},
				"points":        1,
			},
		},
		"total_points":      2,
		"total_user_points": 0,
		"user_answers":      []any{},
	}
}

// quizServer sert le quiz sur GET et la correction sur POST.
func quizServer(t *testing.T, test map[string]any, correction string, corrected *bool) *API {
	t.Helper()
	return newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if corrected != nil {
				*corrected = true
			}
			w.Write([]byte(correction))
			return
		}
		_ = json.NewEncoder(w).Encode(test)
	})
}

func TestQuizLoadRequiresID(t *testing.T) {
	quiz := NewQuiz(NewAPI("http://localhost"))
	err := quiz.Load(context.Background(), "")
	if err == nil || err.Error() != "ID du quiz manquant" {
		t.Fatalf("err = %v", err)
	}
	if quiz.State() != QuizError {
		t.Errorf("état = %s", quiz.State())
	}
}

func TestQuizLoadRejectsEmptyTest(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id":"ft1","flash_test":[]}`))
	})
	quiz := NewQuiz(api)
	err := quiz.Load(context.Background(), "ft1")
	if err == nil || err.Error() != "Quiz invalide ou non trouve" {
		t.Fatalf("err = %v", err)
	}
}

func TestQuizAlreadyDoneIsFrozen(t *testing.T) {
	test := quizFixture()
	test["total_user_points"] = 1.5
	test["user_answers"] = []map[string]any{
		{"answer": []int{0}, "points": 1},
		{"answer": []int{0, 2}, "points": 0.5},
	}
	quiz := NewQuiz(quizServer(t, test, "", nil))

	if err := quiz.Load(context.Background(), "ft1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if quiz.State() != QuizAlreadyDone {
		t.Fatalf("état = %s, attendu already_done", quiz.State())
	}
	if got := quiz.Percent(); got != 75 {
		t.Errorf("Percent = %d, attendu 75", got)
	}
	if err := quiz.Submit(context.Background()); err == nil {
		t.Error("Submit accepté sur un quiz déjà fait")
	}
}

func TestQuizSelectSingleChoiceReplaces(t *testing.T) {
	quiz := NewQuiz(quizServer(t, quizFixture(), "", nil))
	if err := quiz.Load(context.Background(), "ft1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	quiz.Select(0)
	quiz.Select(2)
	if got := quiz.Answer(0); len(got) != 1 || got[0] != 2 {
		t.Errorf("réponse = %v, attendu [2]", got)
	}
}

func TestQuizSelectMultipleChoiceToggles(t *testing.T) {
	quiz := NewQuiz(quizServer(t, quizFixture(), "", nil))
	if err := quiz.Load(context.Background(), "ft1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	quiz.Next()
	quiz.Select(0)
	quiz.Select(2)
	if got := quiz.Answer(1); len(got) != 2 {
		t.Fatalf("réponse = %v, attendu deux choix", got)
	}
	quiz.Select(0)
	if got := quiz.Answer(1); len(got) != 1 || got[0] != 2 {
		t.Errorf("après bascule: réponse = %v, attendu [2]", got)
	}
}

func TestQuizSubmitRefusesIncompleteWithoutNetwork(t *testing.T) {
	var corrected bool
	quiz := NewQuiz(quizServer(t, quizFixture(), `{}`, &corrected))
	if err := quiz.Load(context.Background(), "ft1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	quiz.Select(0)
	err := quiz.Submit(context.Background())
	if err == nil {
		t.Fatal("Submit accepté avec une question sans réponse")
	}
	if !strings.Contains(err.Error(), "1 restante(s)") {
		t.Errorf("message = %q", err.Error())
	}
	if corrected {
		t.Error("la correction a été appelée malgré le refus")
	}
	if quiz.State() != QuizAnswering {
		t.Errorf("état = %s, attendu answering", quiz.State())
	}
}

func TestQuizSubmitZipsResults(t *testing.T) {
	correction := `{"total_user_points":1.5,"total_points":2,"user_answers":[{"points":1},{"points":0.5}]}`
	quiz := NewQuiz(quizServer(t, quizFixture(), correction, nil))
	if err := quiz.Load(context.Background(), "ft1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	quiz.Select(0)
	quiz.Next()
	quiz.Select(0)
	quiz.Select(2)
	if !quiz.Complete() {
		t.Fatalf("Complete = false, restantes: %d", quiz.Remaining())
	}

	if err := quiz.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if quiz.State() != QuizResults {
		t.Fatalf("état = %s", quiz.State())
	}

	results := quiz.Results()
	if len(results) != 2 {
		t.Fatalf("résultats = %d", len(results))
	}
	if results[0].Points != 1 || results[0].Max != 1 {
		t.Errorf("question 1: %.1f/%.1f", results[0].Points, results[0].Max)
	}
	if results[1].Points != 0.5 {
		t.Errorf("question 2: points = %.1f", results[1].Points)
	}
	if got := quiz.Percent(); got != 75 {
		t.Errorf("Percent = %d, attendu 75", got)
	}
}

func TestScorePercentRounds(t *testing.T) {
	tests := []struct {
		earned, total float64
		want          int
	}{
		{1.5, 2, 75},
		{2, 3, 67},
		{1, 3, 33},
		{0, 0, 0},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := scorePercent(tt.earned, tt.total); got != tt.want {
			t.Errorf("scorePercent(%.1f, %.1f) = %d, attendu %d", tt.earned, tt.total, got, tt.want)
		}
	}
}

func TestScoreBands(t *testing.T) {
	tests := []struct {
		percent int
		message string
		tier    string
	}{
		{95, "Excellent travail! 🎉", "green"},
		{80, "Excellent travail! 🎉", "green"},
		{79, "Bon travail! 👍", "blue"},
		{60, "Bon travail! 👍", "blue"},
		{59, "Tu peux faire mieux 📚", "yellow"},
		{40, "Tu peux faire mieux 📚", "yellow"},
		{39, "Continue à réviser! 💪", "red"},
		{0, "Continue à réviser! 💪", "red"},
	}
	for _, tt := range tests {
		if got := ScoreMessage(tt.percent); got != tt.message {
			t.Errorf("ScoreMessage(%d) = %q", tt.percent, got)
		}
		if got := ScoreTier(tt.percent); got != tt.tier {
			t.Errorf("ScoreTier(%d) = %q", tt.percent, got)
		}
	}
}

func TestQuizNavigationBounds(t *testing.T) {
	quiz := NewQuiz(quizServer(t, quizFixture(), "", nil))
	if err := quiz.Load(context.Background(), "ft1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	quiz.Prev()
	if quiz.Current() != 0 {
		t.Errorf("Prev au début: current = %d", quiz.Current())
	}
	quiz.Next()
	quiz.Next()
	if quiz.Current() != 1 {
		t.Errorf("Next à la fin: current = %d", quiz.Current())
	}
	quiz.GoTo(5)
	if quiz.Current() != 1 {
		t.Errorf("GoTo hors bornes: current = %d", quiz.Current())
	}
}
