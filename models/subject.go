package models

// SubjectStatusEnabled marque une matière visible dans le sélecteur du chat.
const SubjectStatusEnabled = "enable"

// Subject est une matière du catalogue, telle que renvoyée par l'API externe.
type Subject struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
