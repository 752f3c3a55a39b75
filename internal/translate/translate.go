// internal/translate/translate.go
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	conf "github.com/bartek5186/hurt2sklep/internal/config"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

type callFunc func(ctx context.Context, text string) (string, error)

// Translator tłumaczy pola tekstowe przez OpenAI. Tłumaczenie jest
// best-effort: błąd usługi nigdy nie przerywa przebiegu, wołający dostaje
// oryginalny tekst i licznik porażek.
type Translator struct {
	log     zerolog.Logger
	enabled bool
	lang    string
	model   string
	workers int
	call    callFunc
}

func New(log zerolog.Logger, cfg conf.TranslateConfig, apiKey string) *Translator {
	t := &Translator{
		log:     log,
		enabled: cfg.Enabled,
		lang:    cfg.TargetLang,
		model:   cfg.Model,
		workers: cfg.Workers,
	}
	if t.workers <= 0 {
		t.workers = 8
	}
	if t.lang == "" {
		t.lang = "pl"
	}
	if t.model == "" {
		t.model = "gpt-4o-mini"
	}

	if t.enabled && apiKey == "" {
		log.Warn().Msg("translate: brak OPENAI_API_KEY — tłumaczenie wyłączone")
		t.enabled = false
	}
	if t.enabled {
		client := openai.NewClient(apiKey)
		sys := fmt.Sprintf("Przetłumacz tekst użytkownika na język %q. Zwróć wyłącznie tłumaczenie, bez komentarzy.", t.lang)
		t.call = func(ctx context.Context, text string) (string, error) {
			resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: t.model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: sys},
					{Role: openai.ChatMessageRoleUser, Content: text},
				},
			})
			if err != nil {
				return "", err
			}
			if len(resp.Choices) == 0 {
				return "", errors.New("openai: pusta odpowiedź")
			}
			return strings.TrimSpace(resp.Choices[0].Message.Content), nil
		}
	}
	return t
}

func (t *Translator) Enabled() bool { return t.enabled }

// Text tłumaczy pojedynczy tekst. Przy wyłączonym tłumaczeniu lub pustym
// wejściu zwraca wejście bez zmian. Przy błędzie usługi zwraca wejście plus
// błąd — wołający decyduje, czy go policzyć.
func (t *Translator) Text(ctx context.Context, s string) (string, error) {
	if !t.enabled || strings.TrimSpace(s) == "" {
		return s, nil
	}
	out, err := t.call(ctx, s)
	if err != nil {
		t.log.Debug().Err(err).Msg("translate: fallback na oryginał")
		return s, err
	}
	return out, nil
}
