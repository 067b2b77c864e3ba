package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rochardEloi/genai-front-end/config"
)

// withUpstream remplace l'API externe par un serveur de test le temps d'un
// test.
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

func TestCallUpstreamForwardsCookieVerbatim(t *testing.T) {
	var gotCookie string
	withUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.WriteHeader(http.StatusOK)
	})

	_, err := CallUpstream(context.Background(), http.MethodGet, "/api/users/me", "token=abc; sid=42", nil)
	if err != nil {
		t.Fatalf("CallUpstream: %v", err)
	}
	if gotCookie != "token=abc; sid=42" {
		t.Errorf("cookie transmis = %q, attendu %q", gotCookie, "token=abc; sid=42")
	}
}

func TestCallUpstreamOmitsCookieWhenAbsent(t *testing.T) {
	var hadCookie bool
	withUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadCookie = r.Header["Cookie"]
		w.WriteHeader(http.StatusOK)
	})

	if _, err := CallUpstream(context.Background(), http.MethodGet, "/api/subjects", "", nil); err != nil {
		t.Fatalf("CallUpstream: %v", err)
	}
	if hadCookie {
		t.Error("un header Cookie a été envoyé alors que le navigateur n'en avait pas")
	}
}

func TestCallUpstreamCapturesAllSetCookies(t *testing.T) {
	withUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "token=abc; Path=/; HttpOnly")
		w.Header().Add("Set-Cookie", "refresh=def; Path=/")
		w.WriteHeader(http.StatusOK)
	})

	res, err := CallUpstream(context.Background(), http.MethodPost, "/api/login", "", map[string]string{"email": "a@b.c"})
	if err != nil {
		t.Fatalf("CallUpstream: %v", err)
	}
	if len(res.SetCookies) != 2 {
		t.Fatalf("SetCookies = %d valeurs, attendu 2", len(res.SetCookies))
	}
	if res.SetCookies[0] != "token=abc; Path=/; HttpOnly" {
		t.Errorf("premier Set-Cookie = %q", res.SetCookies[0])
	}
}

func TestCallUpstreamRelaysStatusAndBody(t *testing.T) {
	withUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"non autorisé"}`))
	})

	res, err := CallUpstream(context.Background(), http.MethodGet, "/api/users/me", "", nil)
	if err != nil {
		t.Fatalf("CallUpstream: %v", err)
	}
	if res.OK() {
		t.Error("OK() = true pour un statut 401")
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, attendu 401", res.StatusCode)
	}
	if got := string(res.Body); got != `{"message":"non autorisé"}` {
		t.Errorf("Body = %q", got)
	}
}

func TestJSONBodyKeepsRawOnParseFailure(t *testing.T) {
	res := &UpstreamResult{StatusCode: 200, Body: []byte("pas du json")}
	data := res.JSONBody()
	if data["raw_response"] != "pas du json" {
		t.Errorf("raw_response = %v", data["raw_response"])
	}
}

func TestFieldString(t *testing.T) {
	m := map[string]any{"error": "", "message": "oups", "status": 500}
	if got := FieldString(m, "error", "message"); got != "oups" {
		t.Errorf("FieldString = %q, attendu %q", got, "oups")
	}
	if got := FieldString(m, "status", "absent"); got != "" {
		t.Errorf("FieldString sur des champs non-texte = %q, attendu vide", got)
	}
}
