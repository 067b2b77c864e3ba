package models

// ConversationMessage est un tour de conversation côté serveur.
type ConversationMessage struct {
	ID        string `json:"_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Conversation est un fil complet, chargé par identifiant.
type Conversation struct {
	ID             string                `json:"_id"`
	Title          string                `json:"title"`
	Status         string                `json:"status,omitempty"`
	UserID         string                `json:"user_id,omitempty"`
	SelectedBookID string                `json:"selected_book_id"`
	Messages       []ConversationMessage `json:"messages"`
	Memories       string                `json:"memories,omitempty"`
	CreatedAt      string                `json:"created_at,omitempty"`
	UpdatedAt      string                `json:"updated_at,omitempty"`
}

// ConversationSummary est une entrée de l'historique.
type ConversationSummary struct {
	ID             string `json:"_id"`
	Title          string `json:"title"`
	Date           string `json:"date,omitempty"`
	Duration       string `json:"duration,omitempty"`
	MessageCount   int    `json:"messageCount,omitempty"`
	Subject        string `json:"subject,omitempty"`
	Preview        string `json:"preview,omitempty"`
	SelectedBookID string `json:"selected_book_id"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// ChatData est le contenu utile d'une réponse de chat de l'API externe.
// Le champ response porte la réponse du tuteur ; message n'est utilisé
// qu'en repli (voir client.Chat).
type ChatData struct {
	Response       string `json:"response"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}
