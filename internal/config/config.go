package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderGemini LLMProvider = "gemini"
	ProviderOpenAI LLMProvider = "openai"
)

type NetworkMode string

const (
	NetworkAuto    NetworkMode = "auto"
	NetworkOnline  NetworkMode = "online"
	NetworkOffline NetworkMode = "offline"
)

type SettingsBackend string

const (
	SettingsFile  SettingsBackend = "file"
	SettingsRedis SettingsBackend = "redis"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Generation API. The credential is never compiled in; it is read from
	// the environment here or, failing that, from the settings store.
	LLMProvider   LLMProvider `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey  string      `env:"GEMINI_API_KEY"`
	GeminiBaseURL string      `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel   string      `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash-latest"`
	OpenAIAPIKey  string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string      `env:"OPENAI_BASE_URL"`
	OpenAIModel   string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Secondary open-data API credential, stored opaquely alongside settings.
	OpenDataAPIKey string `env:"GOV_HEALTH_DATASET_API_KEY"`

	// Connectivity signal. "auto" probes ProbeURL, the other two pin the state.
	NetworkMode NetworkMode `env:"NETWORK_MODE" envDefault:"auto"`
	ProbeURL    string      `env:"NETWORK_PROBE_URL" envDefault:"https://generativelanguage.googleapis.com/"`

	// Settings persistence
	SettingsBackend  SettingsBackend `env:"SETTINGS_BACKEND" envDefault:"file"`
	SettingsFilePath string          `env:"SETTINGS_FILE_PATH" envDefault:"data/settings.json"`
	RedisAddr        string          `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string          `env:"REDIS_PASSWORD"`

	// Speech-to-text service (optional; speech endpoints report unsupported when unset)
	SpeechServiceURL string `env:"SPEECH_SERVICE_URL"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
