package llm_model

import "time"

// Config is the engine tuning, resolved once from the application config.
type Config struct {
	BaseURL       string
	Model         string
	FallbackModel string
	Token         string
	Temperature   float32
	MaxTokens     int

	// MaxAttempts bounds primary-model attempts; the fallback model gets
	// exactly one more on top.
	MaxAttempts    int
	AttemptTimeout time.Duration
	// BackoffStep scales linearly with the attempt number.
	BackoffStep time.Duration
}
