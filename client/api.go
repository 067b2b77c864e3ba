// Package client implémente la partie "navigateur" de Horizon : le contrôleur
// de chat, la machine à états des quiz et la session utilisateur, au-dessus
// du BFF.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// API est le client HTTP du BFF. Il rejoue le comportement du navigateur :
// les cookies de session reçus sont renvoyés sur chaque appel suivant.
type API struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	cookies map[string]string
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		cookies: make(map[string]string),
	}
}

// APIError est une réponse non-2xx du BFF.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Erreur %d", e.Status)
}

// CookieHeader rend la session courante sous forme de header Cookie,
// persistable entre deux lancements.
func (a *API) CookieHeader() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, 0, len(a.cookies))
	for name := range a.cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+a.cookies[name])
	}
	return strings.Join(pairs, "; ")
}

// SetCookieHeader restaure une session depuis un header Cookie persisté.
func (a *API) SetCookieHeader(raw string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, pair := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && name != "" {
			a.cookies[name] = value
		}
	}
}

func (a *API) ClearCookies() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cookies = make(map[string]string)
}

func (a *API) absorbCookies(resp *http.Response) {
	received := resp.Cookies()
	if len(received) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, cookie := range received {
		a.cookies[cookie.Name] = cookie.Value
	}
}

// do envoie une requête JSON au BFF et décode la réponse dans out (si non nil).
func (a *API) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encodage de la requête: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("création de la requête: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie := a.CookieHeader(); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	a.absorbCookies(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("lecture de la réponse: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(data, &failure)
		message := failure.Message
		if message == "" {
			message = failure.Error
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("décodage de la réponse: %w", err)
	}
	return nil
}
