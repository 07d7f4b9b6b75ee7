//nolint:typecheck
package config

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	OSConfigPath      = "CONFIG_PATH"
	DefaultConfigName = "config.yaml"
	TypeYaml          = "yaml"

	AppHost            = "app.host"
	AppLogLevel        = "app.log.level"
	AppLogReportcaller = "app.log.reportcaller"
	AppAllowedOrigins  = "app.allowed_origins"

	// Chat model tuning.
	ClientChatModelAddr           = "clients.llmModel.addr"
	ClientChatModelModel          = "clients.llmModel.model"
	ClientChatModelFallbackModel  = "clients.llmModel.fallbackModel"
	ClientChatModelTemperature    = "clients.llmModel.temperature"
	ClientChatModelMaxTokens      = "clients.llmModel.maxTokens"
	ClientChatModelMaxAttempts    = "clients.llmModel.maxAttempts"
	ClientChatModelTimeoutSeconds = "clients.llmModel.timeoutSeconds"
	ClientChatModelBackoffMillis  = "clients.llmModel.backoffMillis"

	// Embedding client.
	EmbeddingConfigKeyModelName = "clients.embedding.model_name"
	EmbeddingConfigKeyBaseURL   = "clients.embedding.base_url"

	// Transcript mail.
	MailSMTPHost = "mail.smtp.host"
	MailSMTPPort = "mail.smtp.port"
	MailSMTPUser = "mail.smtp.user"
	MailSMTPPass = "mail.smtp.pass"
	MailFrom     = "mail.from"
	MailTo       = "mail.to"

	// Retrieval (dormant by default).
	RetrievalEnable    = "retrieval.enable"
	RetrievalTopK      = "retrieval.top_k"
	RetrievalStorePath = "retrieval.store_path"

	// Offline ingestion.
	IngestSeedFile     = "ingest.seed_file"
	IngestSeedURLs     = "ingest.seed_urls"
	IngestChunkSize    = "ingest.chunk_size"
	IngestChunkOverlap = "ingest.chunk_overlap"

	// History sanitization.
	ChatMaxTurns     = "chat.max_turns"
	ChatMaxTurnChars = "chat.max_turn_chars"

	// The model credential is env-only, never written to the yaml file.
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// Config is assembled once at startup and passed by reference to every
// component that needs it. Business logic never reads the environment.
type Config struct {
	Host           string
	LogLevel       int
	ReportCaller   bool
	AllowedOrigins []string

	OpenAIAPIKey string

	Chat      ChatConfig
	Engine    EngineConfig
	Embedding EmbeddingConfig
	Mail      MailConfig
	Retrieval RetrievalConfig
	Ingest    IngestConfig
}

type ChatConfig struct {
	MaxTurns     int // one turn = user+assistant pair
	MaxTurnChars int // per-entry content cap, in runes
}

type EngineConfig struct {
	BaseURL        string
	Model          string
	FallbackModel  string
	Temperature    float32
	MaxTokens      int
	MaxAttempts    int
	TimeoutSeconds int
	BackoffMillis  int
}

type EmbeddingConfig struct {
	ModelName string
	BaseURL   string
}

type MailConfig struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
	To       string
}

type RetrievalConfig struct {
	Enable    bool
	TopK      int
	StorePath string
}

type IngestConfig struct {
	SeedFile     string
	SeedURLs     []string
	ChunkSize    int
	ChunkOverlap int
}

// Load reads config.yaml (path from CONFIG_PATH, falling back to the working
// directory) plus environment overrides and builds the typed Config. A missing
// yaml file is fine; a malformed one is not. A missing OPENAI_API_KEY does not
// prevent startup, it just makes all model calls fail later.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType(TypeYaml)

	configPath := fmt.Sprintf("./%v", DefaultConfigName)
	if envConfigPath := os.Getenv(OSConfigPath); !strings.EqualFold(envConfigPath, "") {
		configPath = fmt.Sprintf("%v/%v", envConfigPath, DefaultConfigName)
	}
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
		log.Infof("config loaded from %s", configPath)
	} else {
		log.Infof("no config file at %s, using defaults and environment", configPath)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Host:           getStringOrDefault(v, AppHost, ":3000"),
		LogLevel:       getIntOrDefault(v, AppLogLevel, int(log.InfoLevel)),
		ReportCaller:   v.GetBool(AppLogReportcaller),
		AllowedOrigins: splitList(getStringOrDefault(v, AppAllowedOrigins, "*")),

		OpenAIAPIKey: os.Getenv(EnvOpenAIAPIKey),

		Chat: ChatConfig{
			MaxTurns:     getIntOrDefault(v, ChatMaxTurns, 10),
			MaxTurnChars: getIntOrDefault(v, ChatMaxTurnChars, 1200),
		},
		Engine: EngineConfig{
			BaseURL:        v.GetString(ClientChatModelAddr),
			Model:          getStringOrDefault(v, ClientChatModelModel, "gpt-5-mini"),
			FallbackModel:  getStringOrDefault(v, ClientChatModelFallbackModel, "gpt-4o-mini"),
			Temperature:    cast.ToFloat32(getFloatOrDefault(v, ClientChatModelTemperature, 0)),
			MaxTokens:      getIntOrDefault(v, ClientChatModelMaxTokens, 250),
			MaxAttempts:    getIntOrDefault(v, ClientChatModelMaxAttempts, 3),
			TimeoutSeconds: getIntOrDefault(v, ClientChatModelTimeoutSeconds, 20),
			BackoffMillis:  getIntOrDefault(v, ClientChatModelBackoffMillis, 500),
		},
		Embedding: EmbeddingConfig{
			ModelName: getStringOrDefault(v, EmbeddingConfigKeyModelName, "text-embedding-3-small"),
			BaseURL:   v.GetString(EmbeddingConfigKeyBaseURL),
		},
		Mail: MailConfig{
			SMTPHost: v.GetString(MailSMTPHost),
			SMTPPort: getIntOrDefault(v, MailSMTPPort, 587),
			SMTPUser: v.GetString(MailSMTPUser),
			SMTPPass: v.GetString(MailSMTPPass),
			From:     v.GetString(MailFrom),
			To:       v.GetString(MailTo),
		},
		Retrieval: RetrievalConfig{
			Enable:    v.GetBool(RetrievalEnable),
			TopK:      getIntOrDefault(v, RetrievalTopK, 3),
			StorePath: getStringOrDefault(v, RetrievalStorePath, "data/embeddings.json"),
		},
		Ingest: IngestConfig{
			SeedFile:     getStringOrDefault(v, IngestSeedFile, "data/seed_faqs.md"),
			SeedURLs:     splitList(v.GetString(IngestSeedURLs)),
			ChunkSize:    getIntOrDefault(v, IngestChunkSize, 1200),
			ChunkOverlap: getIntOrDefault(v, IngestChunkOverlap, 150),
		},
	}

	return cfg, nil
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return defaultValue
}

func getIntOrDefault(v *viper.Viper, key string, defaultValue int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return defaultValue
}

func getFloatOrDefault(v *viper.Viper, key string, defaultValue float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return defaultValue
}

// splitList parses a comma separated value, trimming blanks.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
