package client

import (
	"context"
	"sync"

	"github.com/rochardEloi/genai-front-end/models"
)

// SessionState décrit le cycle de vie de la session utilisateur.
type SessionState string

const (
	SessionInit      SessionState = "init"
	SessionReady     SessionState = "ready"
	SessionSignedOut SessionState = "signed_out"
)

// Session porte l'utilisateur connecté et ses cookies, pour toute la durée
// d'utilisation de l'application.
type Session struct {
	api *API

	mu    sync.Mutex
	state SessionState
	user  *models.User
}

func NewSession(api *API) *Session {
	return &Session{api: api, state: SessionInit}
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) API() *API { return s.api }

// Hydrate restaure une session depuis un header Cookie persisté et vérifie
// qu'elle est encore valable côté serveur.
func (s *Session) Hydrate(ctx context.Context, cookieHeader string) error {
	if cookieHeader != "" {
		s.api.SetCookieHeader(cookieHeader)
	}

	user, err := s.api.Me(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = SessionSignedOut
		s.user = nil
		return err
	}
	s.state = SessionReady
	s.user = user
	return nil
}

// SignIn connecte l'utilisateur et fait passer la session à ready.
func (s *Session) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionReady
	s.user = user
	return user, nil
}

// SignOut efface les cookies et fige la session. Une session déconnectée ne
// se reconnecte pas : on repart d'une Session neuve.
func (s *Session) SignOut() {
	s.api.ClearCookies()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionSignedOut
	s.user = nil
}
