package config

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rochardEloi/genai-front-end/utils"
)

// Adresse du serveur de tutorat externe (surchargée par UPSTREAM_API_URL).
const defaultUpstreamURL = "http://92.112.184.87:1111"

var (
	// UpstreamBaseURL est la racine de l'API externe, sans slash final.
	UpstreamBaseURL string

	// HTTPClient est le client partagé par tous les handlers de relais.
	// Pas de timeout : une génération d'examen ou de quiz peut être longue,
	// et couper l'appel au milieu perdrait la réponse.
	HTTPClient *http.Client
)

func InitUpstream() {
	base := os.Getenv("UPSTREAM_API_URL")
	if base == "" {
		base = defaultUpstreamURL
	}
	UpstreamBaseURL = strings.TrimRight(base, "/")

	// Pooling des connexions vers l'API externe
	HTTPClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	utils.Logger.Infow("relais initialisé", "upstream", UpstreamBaseURL)
}
