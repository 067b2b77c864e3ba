package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rochardEloi/genai-front-end/models"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ChatRequest est le corps envoyé à POST /api/chat.
type ChatRequest struct {
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
	ConversationID string `json:"conversation_id,omitempty"`
	SelectedBookID string `json:"selected_book_id,omitempty"`
}

type ChatResponse struct {
	Message string          `json:"message"`
	Data    models.ChatData `json:"data"`
}

func (a *API) Login(ctx context.Context, email, password string) (*models.User, error) {
	var reply struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
		Success bool         `json:"success"`
	}
	payload := LoginInput{Email: email, Password: password}
	if err := a.do(ctx, http.MethodPost, "/api/login", payload, &reply); err != nil {
		return nil, err
	}
	return reply.User, nil
}

func (a *API) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var reply struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/register", in, &reply); err != nil {
		return nil, err
	}
	return reply.User, nil
}

func (a *API) Verify(ctx context.Context, code string) (*models.User, error) {
	var reply struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	payload := map[string]string{"code": code}
	if err := a.do(ctx, http.MethodPost, "/api/verify", payload, &reply); err != nil {
		return nil, err
	}
	return reply.User, nil
}

func (a *API) Subjects(ctx context.Context) ([]models.Subject, error) {
	var reply struct {
		Success  bool             `json:"success"`
		Subjects []models.Subject `json:"subjects"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/subjects", nil, &reply); err != nil {
		return nil, err
	}
	return reply.Subjects, nil
}

func (a *API) SendChat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var reply ChatResponse
	if err := a.do(ctx, http.MethodPost, "/api/chat", req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (a *API) LoadConversation(ctx context.Context, id string) (*models.Conversation, error) {
	var conv models.Conversation
	path := "/api/conversations/load/" + id
	if err := a.do(ctx, http.MethodGet, path, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *API) History(ctx context.Context) ([]models.ConversationSummary, error) {
	var conversations []models.ConversationSummary
	if err := a.do(ctx, http.MethodGet, "/api/history", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// CreateFlashTest demande la génération d'un quiz sur le livre donné et rend
// l'identifiant du quiz créé.
func (a *API) CreateFlashTest(ctx context.Context, selectedBookID string) (string, error) {
	var reply struct {
		FlashTestID string `json:"flash_test_id"`
		ID          string `json:"_id"`
	}
	payload := map[string]string{"selected_book_id": selectedBookID}
	if err := a.do(ctx, http.MethodPost, "/api/flash-test/create", payload, &reply); err != nil {
		return "", err
	}
	if reply.FlashTestID != "" {
		return reply.FlashTestID, nil
	}
	return reply.ID, nil
}

func (a *API) FlashTest(ctx context.Context, id string) (*models.FlashTest, error) {
	var test models.FlashTest
	if err := a.do(ctx, http.MethodGet, "/api/flash-test/"+id, nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

func (a *API) FlashTests(ctx context.Context) ([]models.FlashTestSummary, error) {
	var reply struct {
		Success bool                      `json:"success"`
		Tests   []models.FlashTestSummary `json:"tests"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/flash-tests", nil, &reply); err != nil {
		return nil, err
	}
	return reply.Tests, nil
}

// CorrectFlashTest soumet les réponses de l'élève, une liste d'indices
// d'options par question, et rend la correction notée.
func (a *API) CorrectFlashTest(ctx context.Context, id string, answers [][]int) (*models.Correction, error) {
	userAnswers := make([]map[string][]int, len(answers))
	for i, answer := range answers {
		if answer == nil {
			answer = []int{}
		}
		userAnswers[i] = map[string][]int{"answer": answer}
	}
	payload := map[string]any{
		"flash_test_id": id,
		"user_answers":  userAnswers,
	}

	var correction models.Correction
	if err := a.do(ctx, http.MethodPost, "/api/flash-test/correct", payload, &correction); err != nil {
		return nil, err
	}
	return &correction, nil
}

func (a *API) CreateExam(ctx context.Context, subject, profile string) (*models.Exam, error) {
	var exam models.Exam
	payload := map[string]string{"subject": subject, "profile": profile}
	if err := a.do(ctx, http.MethodPost, "/api/exams/create", payload, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (a *API) MyExams(ctx context.Context) ([]models.ExamSummary, error) {
	var raw json.RawMessage
	if err := a.do(ctx, http.MethodGet, "/api/exams/my-exams", nil, &raw); err != nil {
		return nil, err
	}

	var exams []models.ExamSummary
	if err := json.Unmarshal(raw, &exams); err == nil {
		return exams, nil
	}
	var wrapped struct {
		Exams []models.ExamSummary `json:"exams"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("décodage des examens: %w", err)
	}
	return wrapped.Exams, nil
}

func (a *API) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.do(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *API) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error) {
	var reply struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/users/update", in, &reply); err != nil {
		return nil, err
	}
	return reply.User, nil
}
