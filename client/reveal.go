package client

import (
	"sync"
	"time"
	"unicode/utf8"
)

// Reveal produit le texte d'une réponse par préfixes croissants, rune par
// rune, pour l'affichage progressif côté interface. Chaque Start relance la
// séquence depuis le début et annule le passage en cours.
type Reveal struct {
	runes   []rune
	cadence time.Duration

	observer func(string)
	done     func()

	mu       sync.Mutex
	cancel   chan struct{}
	doneOnce sync.Once
}

type RevealOption func(*Reveal)

// WithObserver enregistre un rappel invoqué à chaque préfixe émis.
func WithObserver(fn func(string)) RevealOption {
	return func(r *Reveal) { r.observer = fn }
}

// withDone enregistre un rappel invoqué une seule fois, quand la séquence se
// termine ou est arrêtée.
func withDone(fn func()) RevealOption {
	return func(r *Reveal) { r.done = fn }
}

func NewReveal(text string, cadence time.Duration, opts ...RevealOption) *Reveal {
	r := &Reveal{
		runes:   []rune(text),
		cadence: cadence,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len rend le nombre de préfixes que produit une séquence complète.
func (r *Reveal) Len() int { return len(r.runes) }

// Text rend le texte complet, sans attendre la séquence.
func (r *Reveal) Text() string { return string(r.runes) }

// Start lance une séquence et rend le canal des préfixes. Le canal est
// dimensionné pour la séquence entière : le producteur ne bloque jamais,
// même si personne ne lit.
func (r *Reveal) Start() <-chan string {
	r.mu.Lock()
	if r.cancel != nil {
		close(r.cancel)
	}
	cancel := make(chan struct{})
	r.cancel = cancel
	r.mu.Unlock()

	out := make(chan string, len(r.runes))

	go func() {
		defer close(out)
		defer r.finish()

		var ticker *time.Ticker
		if r.cadence > 0 {
			ticker = time.NewTicker(r.cadence)
			defer ticker.Stop()
		}

		for i := 1; i <= len(r.runes); i++ {
			if ticker != nil {
				select {
				case <-cancel:
					return
				case <-ticker.C:
				}
			} else {
				select {
				case <-cancel:
					return
				default:
				}
			}

			prefix := string(r.runes[:i])
			out <- prefix
			if r.observer != nil {
				r.observer(prefix)
			}
		}
	}()

	return out
}

// Stop annule le passage en cours, s'il y en a un.
func (r *Reveal) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		close(r.cancel)
		r.cancel = nil
	}
}

func (r *Reveal) finish() {
	if r.done != nil {
		r.doneOnce.Do(r.done)
	}
}

// RuneCount compte les runes d'un texte, la granularité des préfixes.
func RuneCount(text string) int { return utf8.RuneCountInString(text) }
