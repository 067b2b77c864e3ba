package models

// User est le profil renvoyé par l'API externe. La session elle-même est
// portée par le cookie, jamais par ce struct.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified,omitempty"`
}

// UpdateProfileInput porte les champs modifiables du profil.
type UpdateProfileInput struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}
