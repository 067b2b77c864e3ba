package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// assistantFallback remplace une réponse vide du tuteur.
	assistantFallback = "Désolé, je n'ai pas pu générer de réponse."

	// relaySuccessPlaceholder est le message de statut du BFF, à ne jamais
	// afficher comme réponse du tuteur.
	relaySuccessPlaceholder = "Message envoyé avec succès"

	defaultRevealCadence = 20 * time.Millisecond
)

// ErrSendInFlight est rendu quand un envoi est encore en cours : un seul
// message à la fois.
var ErrSendInFlight = errors.New("un message est déjà en cours d'envoi")

type ChatMessage struct {
	ID        string
	Role      string
	Content   string
	Timestamp time.Time
}

// Chat tient la conversation courante : l'historique affiché, l'identifiant
// de conversation et le verrou d'envoi.
type Chat struct {
	api     *API
	bookID  string
	cadence time.Duration

	mu             sync.Mutex
	messages       []ChatMessage
	conversationID string
	loaded         bool
	sending        bool
}

func NewChat(api *API, selectedBookID string) *Chat {
	return &Chat{
		api:     api,
		bookID:  selectedBookID,
		cadence: defaultRevealCadence,
	}
}

// SetRevealCadence règle le rythme d'affichage progressif des réponses.
func (ch *Chat) SetRevealCadence(d time.Duration) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.cadence = d
}

func (ch *Chat) Messages() []ChatMessage {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	out := make([]ChatMessage, len(ch.messages))
	copy(out, ch.messages)
	return out
}

func (ch *Chat) ConversationID() string {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.conversationID
}

// LoadExisting recharge une conversation passée dans l'historique affiché.
// Un seul chargement par Chat : les appels suivants sont ignorés.
func (ch *Chat) LoadExisting(ctx context.Context, conversationID string) error {
	ch.mu.Lock()
	if ch.loaded || conversationID == "" {
		ch.mu.Unlock()
		return nil
	}
	ch.mu.Unlock()

	conv, err := ch.api.LoadConversation(ctx, conversationID)
	if err != nil {
		return err
	}

	messages := make([]ChatMessage, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		messages = append(messages, ChatMessage{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: parseTimestamp(m.Timestamp),
		})
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.messages = messages
	ch.conversationID = conv.ID
	if conv.SelectedBookID != "" {
		ch.bookID = conv.SelectedBookID
	}
	ch.loaded = true
	return nil
}

// Send envoie un message de l'élève et rend la séquence d'affichage de la
// réponse. Un message vide est ignoré sans erreur. Tant que la séquence n'est
// pas terminée, tout nouvel envoi est refusé avec ErrSendInFlight.
func (ch *Chat) Send(ctx context.Context, text string) (*Reveal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	ch.mu.Lock()
	if ch.sending {
		ch.mu.Unlock()
		return nil, ErrSendInFlight
	}
	ch.sending = true

	now := time.Now()
	ch.messages = append(ch.messages,
		ChatMessage{ID: newMessageID(), Role: "user", Content: text, Timestamp: now},
		ChatMessage{ID: newMessageID(), Role: "assistant", Content: "", Timestamp: now},
	)
	placeholder := len(ch.messages) - 1
	req := ChatRequest{
		Message:        text,
		Timestamp:      now.Format(time.RFC3339),
		ConversationID: ch.conversationID,
		SelectedBookID: ch.bookID,
	}
	cadence := ch.cadence
	ch.mu.Unlock()

	resp, err := ch.api.SendChat(ctx, req)
	if err != nil {
		ch.mu.Lock()
		if placeholder < len(ch.messages) {
			ch.messages[placeholder].Content = "Erreur: " + err.Error()
		}
		ch.sending = false
		ch.mu.Unlock()
		return nil, err
	}

	reply := extractReply(resp)

	ch.mu.Lock()
	if ch.conversationID == "" && resp.Data.ConversationID != "" {
		ch.conversationID = resp.Data.ConversationID
	}
	ch.mu.Unlock()

	reveal := NewReveal(reply, cadence,
		WithObserver(func(prefix string) {
			ch.mu.Lock()
			if placeholder < len(ch.messages) {
				ch.messages[placeholder].Content = prefix
			}
			ch.mu.Unlock()
		}),
		withDone(func() {
			ch.mu.Lock()
			if placeholder < len(ch.messages) {
				ch.messages[placeholder].Content = reply
			}
			ch.sending = false
			ch.mu.Unlock()
		}),
	)
	return reveal, nil
}

// Sending indique si un envoi est en cours, séquence d'affichage comprise.
func (ch *Chat) Sending() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.sending
}

// Clear ramène le Chat à l'état d'une conversation neuve.
func (ch *Chat) Clear() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.messages = nil
	ch.conversationID = ""
	ch.loaded = false
	ch.sending = false
}

func extractReply(resp *ChatResponse) string {
	if resp.Data.Response != "" {
		return resp.Data.Response
	}
	if resp.Data.Message != "" && resp.Data.Message != relaySuccessPlaceholder {
		return resp.Data.Message
	}
	return assistantFallback
}

func newMessageID() string {
	return "msg-" + uuid.NewString()
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
