package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rochardEloi/genai-front-end/config"
	"github.com/rochardEloi/genai-front-end/utils"
)

// UpstreamResult est la réponse brute de l'API externe : statut, corps et
// cookies de session à retransmettre au navigateur.
type UpstreamResult struct {
	StatusCode int
	Body       []byte
	SetCookies []string
}

// OK indique un statut 2xx.
func (r *UpstreamResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSONBody décode le corps en objet JSON. En cas d'échec de parsing le corps
// brut est conservé sous raw_response, comme le fait la route de chat.
func (r *UpstreamResult) JSONBody() map[string]any {
	var data map[string]any
	if err := json.Unmarshal(r.Body, &data); err != nil || data == nil {
		return map[string]any{"raw_response": string(r.Body)}
	}
	return data
}

// CallUpstream envoie une requête JSON à l'API de tutorat externe.
// Le cookie du navigateur est retransmis tel quel s'il existe ; on n'en
// fabrique jamais un. payload nil = requête sans corps.
func CallUpstream(ctx context.Context, method, path, cookie string, payload any) (*UpstreamResult, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encodage du corps de requête: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, config.UpstreamBaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("création de la requête externe: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("appel de l'API externe: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lecture de la réponse externe: %w", err)
	}

	utils.Logger.Debugw("réponse externe",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"cookies", len(resp.Header.Values("Set-Cookie")),
	)

	return &UpstreamResult{
		StatusCode: resp.StatusCode,
		Body:       data,
		SetCookies: resp.Header.Values("Set-Cookie"),
	}, nil
}

// FieldString lit le premier champ texte non vide parmi keys.
func FieldString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
