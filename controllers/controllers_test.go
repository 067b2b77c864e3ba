package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rochardEloi/genai-front-end/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withUpstream remplace l'API externe par un serveur de test.
func withUpstream(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	oldURL, oldClient := config.UpstreamBaseURL, config.HTTPClient
	config.UpstreamBaseURL = srv.URL
	config.HTTPClient = srv.Client()
	t.Cleanup(func() {
		config.UpstreamBaseURL = oldURL
		config.HTTPClient = oldClient
	})
}

// perform exécute une requête sur un routeur n'exposant que le handler testé.
func perform(method, path string, handler gin.HandlerFunc, body, cookie string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, routePattern(path), handler)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// routePattern transforme un chemin concret en motif gin, le dernier segment
// devenant :id pour les routes paramétrées connues.
func routePattern(path string) string {
	for _, prefix := range []string{"/api/conversations/load/", "/api/flash-test/", "/api/flash-tests/"} {
		if strings.HasPrefix(path, prefix) && !strings.ContainsAny(strings.TrimPrefix(path, prefix), "/") {
			rest := strings.TrimPrefix(path, prefix)
			if rest != "create" && rest != "correct" {
				return prefix + ":id"
			}
		}
	}
	return path
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var data map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &data); err != nil {
		t.Fatalf("réponse non-JSON: %v (corps: %s)", err, w.Body.String())
	}
	return data
}
