package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

// chatEndpoint rend un handler BFF de chat renvoyant response et conversation_id.
func chatEndpoint(t *testing.T, reply string, conversationID string, got *[]map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("corps illisible: %v", err)
		}
		if got != nil {
			*got = append(*got, payload)
		}
		resp := map[string]any{
			"message": "Message envoyé avec succès",
			"data": map[string]any{
				"response":        reply,
				"message":         "Message envoyé avec succès",
				"conversation_id": conversationID,
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func sendAndFinish(t *testing.T, chat *Chat, text string) {
	t.Helper()
	reveal, err := chat.Send(context.Background(), text)
	if err != nil {
		t.Fatalf("Send(%q): %v", text, err)
	}
	if reveal == nil {
		t.Fatalf("Send(%q): séquence nil", text)
	}
	for range reveal.Start() {
	}
}

func TestChatKeepsConversationIDAcrossSends(t *testing.T) {
	var payloads []map[string]any
	api := newTestAPI(t, chatEndpoint(t, "Réponse", "c42", &payloads))

	chat := NewChat(api, "s1")
	chat.SetRevealCadence(0)

	sendAndFinish(t, chat, "Premier message")
	sendAndFinish(t, chat, "Deuxième message")

	if len(payloads) != 2 {
		t.Fatalf("envois = %d", len(payloads))
	}
	if _, ok := payloads[0]["conversation_id"]; ok {
		t.Error("le premier envoi porte déjà un conversation_id")
	}
	if payloads[1]["conversation_id"] != "c42" {
		t.Errorf("deuxième envoi: conversation_id = %v", payloads[1]["conversation_id"])
	}
	if chat.ConversationID() != "c42" {
		t.Errorf("ConversationID = %q", chat.ConversationID())
	}
}

func TestChatSendAppendsUserAndAssistantMessages(t *testing.T) {
	api := newTestAPI(t, chatEndpoint(t, "La réponse du tuteur", "c1", nil))
	chat := NewChat(api, "s1")
	chat.SetRevealCadence(0)

	sendAndFinish(t, chat, "  Ma question  ")

	messages := chat.Messages()
	if len(messages) != 2 {
		t.Fatalf("messages = %d, attendu 2", len(messages))
	}
	if messages[0].Role != "user" || messages[0].Content != "Ma question" {
		t.Errorf("message utilisateur = %+v", messages[0])
	}
	if messages[1].Role != "assistant" || messages[1].Content != "La réponse du tuteur" {
		t.Errorf("message assistant = %+v", messages[1])
	}
	if !strings.HasPrefix(messages[0].ID, "msg-") {
		t.Errorf("identifiant de message = %q", messages[0].ID)
	}
}

func TestChatEmptyMessageIsNoOp(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("le BFF ne doit pas être appelé pour un message vide")
	})
	chat := NewChat(api, "s1")

	reveal, err := chat.Send(context.Background(), "   ")
	if err != nil || reveal != nil {
		t.Errorf("Send vide = (%v, %v), attendu (nil, nil)", reveal, err)
	}
	if len(chat.Messages()) != 0 {
		t.Error("un message vide a été ajouté à l'historique")
	}
}

func TestChatRejectsSecondSendWhileRevealing(t *testing.T) {
	api := newTestAPI(t, chatEndpoint(t, "Une réponse assez longue pour durer", "c1", nil))
	chat := NewChat(api, "s1")
	chat.SetRevealCadence(0)

	reveal, err := chat.Send(context.Background(), "Premier")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	// La séquence n'a pas encore été consommée : l'envoi est toujours en cours.
	if _, err := chat.Send(context.Background(), "Deuxième"); !errors.Is(err, ErrSendInFlight) {
		t.Errorf("deuxième Send: err = %v, attendu ErrSendInFlight", err)
	}

	for range reveal.Start() {
	}
	if chat.Sending() {
		t.Error("Sending() = true après la fin de la séquence")
	}
	sendAndFinish(t, chat, "Troisième")
}

func TestChatFallbackWhenResponseEmpty(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{
			name: "repli sur data.message",
			data: map[string]any{"response": "", "message": "Contenu utile", "conversation_id": "c1"},
			want: "Contenu utile",
		},
		{
			name: "le placeholder du relais ne passe jamais",
			data: map[string]any{"response": "", "message": "Message envoyé avec succès", "conversation_id": "c1"},
			want: "Désolé, je n'ai pas pu générer de réponse.",
		},
		{
			name: "tout vide",
			data: map[string]any{"response": "", "message": "", "conversation_id": "c1"},
			want: "Désolé, je n'ai pas pu générer de réponse.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"message": "Message envoyé avec succès",
					"data":    tt.data,
				})
			})
			chat := NewChat(api, "s1")
			chat.SetRevealCadence(0)

			sendAndFinish(t, chat, "Question")
			messages := chat.Messages()
			if got := messages[len(messages)-1].Content; got != tt.want {
				t.Errorf("réponse affichée = %q, attendu %q", got, tt.want)
			}
		})
	}
}

func TestChatErrorFillsPlaceholderAndUnlocks(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Erreur de connexion au serveur"}`))
	})
	chat := NewChat(api, "s1")
	chat.SetRevealCadence(0)

	if _, err := chat.Send(context.Background(), "Question"); err == nil {
		t.Fatal("erreur attendue")
	}

	messages := chat.Messages()
	if len(messages) != 2 {
		t.Fatalf("messages = %d", len(messages))
	}
	if !strings.HasPrefix(messages[1].Content, "Erreur: ") {
		t.Errorf("placeholder = %q", messages[1].Content)
	}
	if chat.Sending() {
		t.Error("le verrou d'envoi n'est pas levé après une erreur")
	}
}

func TestChatClearResetsEverything(t *testing.T) {
	api := newTestAPI(t, chatEndpoint(t, "Réponse", "c1", nil))
	chat := NewChat(api, "s1")
	chat.SetRevealCadence(0)

	sendAndFinish(t, chat, "Question")
	chat.Clear()

	if len(chat.Messages()) != 0 || chat.ConversationID() != "" || chat.Sending() {
		t.Error("Clear ne ramène pas le chat à l'état neuf")
	}

	// Après Clear, le prochain envoi repart sans conversation_id.
	var payloads []map[string]any
	api2 := newTestAPI(t, chatEndpoint(t, "Réponse", "c2", &payloads))
	chat2 := NewChat(api2, "s1")
	chat2.SetRevealCadence(0)
	sendAndFinish(t, chat2, "Nouveau fil")
	if _, ok := payloads[0]["conversation_id"]; ok {
		t.Error("un conversation_id a survécu au Clear")
	}
}

func TestChatLoadExistingOnlyOnce(t *testing.T) {
	var calls int
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"_id":              "c7",
			"title":            "Photosynthèse",
			"selected_book_id": "s1",
			"messages": []map[string]any{
				{"_id": "m1", "role": "user", "content": "Bonjour", "timestamp": "2026-05-01T10:00:00Z"},
				{"_id": "m2", "role": "assistant", "content": "Bonjour!", "timestamp": "2026-05-01T10:00:02Z"},
			},
		})
	})
	chat := NewChat(api, "")

	if err := chat.LoadExisting(context.Background(), "c7"); err != nil {
		t.Fatalf("LoadExisting: %v", err)
	}
	if err := chat.LoadExisting(context.Background(), "c7"); err != nil {
		t.Fatalf("deuxième LoadExisting: %v", err)
	}
	if calls != 1 {
		t.Errorf("chargements réseau = %d, attendu 1", calls)
	}

	messages := chat.Messages()
	if len(messages) != 2 {
		t.Fatalf("messages = %d", len(messages))
	}
	if messages[0].Timestamp.IsZero() {
		t.Error("timestamp non analysé")
	}
	if chat.ConversationID() != "c7" {
		t.Errorf("ConversationID = %q", chat.ConversationID())
	}
}
