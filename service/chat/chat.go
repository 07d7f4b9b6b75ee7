// Package chat orchestrates one answer: validate, sanitize the caller-supplied
// history, try the scripted FAQ layer, fall back to the model engine, and mail
// the transcript off the response path. Requests share no mutable state.
package chat

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/constant"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/pkg/clients/mailer"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/faq"
	log "github.com/sirupsen/logrus"
)

// Engine produces an answer when no FAQ rule applies.
type Engine interface {
	Generate(ctx context.Context, userMsg string, history []model.ChatTurn, contextBlock string) (string, error)
}

// Retriever supplies optional context from the vector store.
type Retriever interface {
	Context(ctx context.Context, query string) (string, error)
}

// Mailer delivers transcripts. Failures are logged, never surfaced.
type Mailer interface {
	Send(subject, body string) error
}

type Service struct {
	cfg       *config.Config
	faq       *faq.Matcher
	engine    Engine
	retriever Retriever
	mailer    Mailer
}

func NewService(cfg *config.Config, matcher *faq.Matcher, engine Engine, retriever Retriever, m Mailer) *Service {
	return &Service{
		cfg:       cfg,
		faq:       matcher,
		engine:    engine,
		retriever: retriever,
		mailer:    m,
	}
}

// newThreadID is a short correlation id for tracing and transcript subjects.
func newThreadID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(buf)
}

// sanitizeHistory drops malformed entries, clamps content and keeps only the
// most recent turns, oldest dropped first.
func (s *Service) sanitizeHistory(history []model.ChatTurn) []model.ChatTurn {
	maxChars := s.cfg.Chat.MaxTurnChars
	clean := make([]model.ChatTurn, 0, len(history))
	for _, h := range history {
		if h.Content == "" {
			continue
		}
		if h.Role != model.RoleUser && h.Role != model.RoleAssistant {
			continue
		}
		content := h.Content
		if runes := []rune(content); len(runes) > maxChars {
			content = string(runes[:maxChars])
		}
		clean = append(clean, model.ChatTurn{Role: h.Role, Content: content})
	}

	maxEntries := s.cfg.Chat.MaxTurns * 2
	if len(clean) > maxEntries {
		clean = clean[len(clean)-maxEntries:]
	}
	return clean
}

// mailTranscript hands the exchange to the mailer without blocking the
// response. Failures never reach the caller.
func (s *Service) mailTranscript(subject string, history []model.ChatTurn, userMsg, answer string) {
	body := mailer.FormatTranscript(history, userMsg, answer)
	go func() {
		if err := s.mailer.Send(subject, body); err != nil {
			log.Errorf("transcript mail failed: %v", err)
		}
	}()
}

// Answer runs the full pipeline for one user message.
func (s *Service) Answer(ctx context.Context, userMsg string, history []model.ChatTurn) (*model.ChatResult, *model.Error) {
	if userMsg == "" {
		return nil, model.NewErrorWithMessage(model.ErrorInvalidRequest, constant.ChatMissingMessage)
	}

	threadID := newThreadID()
	clean := s.sanitizeHistory(history)

	// Scripted layer first: deterministic, instant, no model cost.
	if answer, ok := s.faq.Match(userMsg); ok {
		s.mailTranscript(fmt.Sprintf("[Sukhothai Bot] FAQ #%s", threadID), clean, userMsg, answer)
		return &model.ChatResult{Answer: answer, ThreadID: threadID}, nil
	}

	contextBlock := ""
	if s.cfg.Retrieval.Enable && s.retriever != nil {
		block, err := s.retriever.Context(ctx, userMsg)
		if err != nil {
			// degrade to an empty context, the engine can answer without it
			log.Warnf("context lookup failed, continuing without: %v", err)
		} else {
			contextBlock = block
		}
	}

	answer, err := s.engine.Generate(ctx, userMsg, clean, contextBlock)
	if err != nil {
		return nil, model.NewError(model.ErrorEngine, err)
	}

	s.mailTranscript(fmt.Sprintf("[Sukhothai Bot] Chat #%s", threadID), clean, userMsg, answer)
	return &model.ChatResult{Answer: answer, ThreadID: threadID}, nil
}
