// Package llm_model wraps the hosted chat-completion API with the answer
// policy: bounded per-attempt timeouts, linear-backoff retries on transient
// failures, rejection of degenerate completions, one fallback-model attempt,
// and canned degradations. In the steady state callers always get text back,
// never a provider error.
package llm_model

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/constant"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

const clientNameChatModel = "chat_model"

// completionFunc performs one chat-completion call. Tests swap it out.
type completionFunc func(ctx context.Context, modelName string, messages []openai.ChatCompletionMessage, maxTokens int) (string, error)

type ClientChatModel struct {
	config   *Config
	complete completionFunc
	sleep    func(time.Duration)
}

func NewClient(cfg *config.Config) *ClientChatModel {
	conf := &Config{
		BaseURL:        cfg.Engine.BaseURL,
		Model:          cfg.Engine.Model,
		FallbackModel:  cfg.Engine.FallbackModel,
		Token:          cfg.OpenAIAPIKey,
		Temperature:    cfg.Engine.Temperature,
		MaxTokens:      cfg.Engine.MaxTokens,
		MaxAttempts:    cfg.Engine.MaxAttempts,
		AttemptTimeout: time.Duration(cfg.Engine.TimeoutSeconds) * time.Second,
		BackoffStep:    time.Duration(cfg.Engine.BackoffMillis) * time.Millisecond,
	}

	zc := &ClientChatModel{
		config: conf,
		sleep:  time.Sleep,
	}
	zc.complete = zc.postChatCompletion
	return zc
}

// postChatCompletion is the real provider call.
func (zc *ClientChatModel) postChatCompletion(ctx context.Context, modelName string, messages []openai.ChatCompletionMessage, maxTokens int) (string, error) {
	defaultConf := openai.DefaultConfig(zc.config.Token)
	if zc.config.BaseURL != "" {
		defaultConf.BaseURL = zc.config.BaseURL
	}
	client := openai.NewClientWithConfig(defaultConf)

	response, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               modelName,
		Messages:            messages,
		MaxCompletionTokens: maxTokens,
		Temperature:         zc.config.Temperature,
	})
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion response has no choices")
	}
	return response.Choices[0].Message.Content, nil
}

// systemPrompt carries the persona, business facts and answer directives.
// A non-empty context block from retrieval is appended at the end.
func systemPrompt(contextBlock string) string {
	lines := []string{
		`Du bist der Live-Agent für das Thai-Restaurant "Sukhothai".`,
		fmt.Sprintf("Sprache: Deutsch. Stil: %s.", constant.BotStyle),
		"Regeln:",
		"- Keine Zusagen, die du nicht sicher weißt.",
		"- Wenn unklar: Rückfragen stellen.",
		"- Reservierungen nie final bestätigen. Immer Kontaktdaten aufnehmen.",
		fmt.Sprintf("Öffnungszeiten: %s", constant.OpeningHours),
		fmt.Sprintf("Adresse: %s", constant.RestaurantAddress),
		"Nützliche Links (falls relevant, kurz verlinken):",
		fmt.Sprintf("- Karte: %s", constant.MenuLink),
		fmt.Sprintf("- Google Maps: %s", constant.MapsLink),
		fmt.Sprintf("- Gutschein: %s", constant.VoucherLink),
		"Wenn möglich, kurze klare Sätze. Keine Füllwörter.",
	}
	prompt := strings.Join(lines, "\n")
	if contextBlock != "" {
		prompt += "\n\nKontext:\n" + contextBlock
	}
	return prompt
}

func buildMessages(userMsg string, history []model.ChatTurn, contextBlock string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt(contextBlock),
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMsg,
	})
	return messages
}

// degenerateReplies are completions that technically succeed but answer
// nothing. They count as failures and trigger a retry.
var degenerateReplies = map[string]struct{}{
	"ok":         {},
	"okay":       {},
	"oke":        {},
	"ja":         {},
	"gerne":      {},
	"verstanden": {},
	"alles klar": {},
	"understood": {},
}

func isDegenerate(content string) bool {
	s := strings.ToLower(strings.TrimSpace(content))
	s = strings.TrimRight(s, ".!?, ")
	if s == "" {
		return true
	}
	_, trivial := degenerateReplies[s]
	return trivial
}

// isPermanent separates malformed-request-class provider errors from load
// problems. Only transient conditions are worth retrying.
func isPermanent(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 408, 429:
			return false
		}
		return apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case 408, 429:
			return false
		}
		return reqErr.HTTPStatusCode >= 400 && reqErr.HTTPStatusCode < 500
	}
	// timeouts, connection resets etc.
	return false
}

// modelUnavailableRE matches provider messages for a model the account cannot
// use at all. This is the one permanent-error class where the fallback model
// still has a chance.
var modelUnavailableRE = regexp.MustCompile(`(?i)model|unsupported|unknown|not\s+found|unavailable`)

func isModelUnavailable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusNotFound || modelUnavailableRE.MatchString(apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusNotFound
	}
	return false
}

// tryOnce runs a single bounded attempt against the given model.
func (zc *ClientChatModel) tryOnce(ctx context.Context, modelName string, messages []openai.ChatCompletionMessage) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, zc.config.AttemptTimeout)
	defer cancel()

	content, err := zc.complete(attemptCtx, modelName, messages, zc.config.MaxTokens)
	if err != nil {
		return "", err
	}
	if isDegenerate(content) {
		return "", fmt.Errorf("degenerate completion: %q", content)
	}
	return content, nil
}

// Generate runs the full policy: primary with retries, then fallback, then a
// canned degradation. The returned error is non-nil only when the caller's own
// context is already gone.
func (zc *ClientChatModel) Generate(ctx context.Context, userMsg string, history []model.ChatTurn, contextBlock string) (string, error) {
	messages := buildMessages(userMsg, history, contextBlock)

	for attempt := 1; attempt <= zc.config.MaxAttempts; attempt++ {
		content, err := zc.tryOnce(ctx, zc.config.Model, messages)
		if err == nil {
			return content, nil
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if isPermanent(err) {
			// only model-unavailable errors get the fallback attempt
			if isModelUnavailable(err) {
				log.Warnf("%s primary (%s) unavailable, switching to fallback: %v", clientNameChatModel, zc.config.Model, err)
				break
			}
			log.Warnf("%s primary (%s) permanent error, not retrying: %v", clientNameChatModel, zc.config.Model, err)
			return constant.UnsureAnswer, nil
		}

		log.Warnf("%s primary (%s) attempt %d/%d failed: %v", clientNameChatModel, zc.config.Model, attempt, zc.config.MaxAttempts, err)
		if attempt < zc.config.MaxAttempts {
			zc.sleep(time.Duration(attempt) * zc.config.BackoffStep)
		}
	}

	content, err := zc.tryOnce(ctx, zc.config.FallbackModel, messages)
	if err == nil {
		return content, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	log.Errorf("%s fallback (%s) failed: %v", clientNameChatModel, zc.config.FallbackModel, err)
	return constant.DegradedAnswer, nil
}

// Ping sends a trivial prompt to the primary model; GET /status uses it to
// confirm reachability.
func (zc *ClientChatModel) Ping(ctx context.Context) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, zc.config.AttemptTimeout)
	defer cancel()

	return zc.complete(attemptCtx, zc.config.Model, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: constant.StatusProbePrompt},
	}, 16)
}

// Model exposes the primary model name for diagnostics.
func (zc *ClientChatModel) Model() string {
	return zc.config.Model
}
