package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"intellispell-go/internal/game"
	"intellispell-go/internal/game/modes"
)

type Config struct {
	Environment string `mapstructure:"ENVIRONMENT" validate:"required"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Server
	Port            int           `mapstructure:"PORT" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Rules
	GameMode       string `mapstructure:"GAME_MODE"`
	RevealPolicy   string `mapstructure:"REVEAL_POLICY"`
	HintStyle      string `mapstructure:"HINT_STYLE"`
	LivesPerWord   int    `mapstructure:"LIVES_PER_WORD"`
	MaxFailedWords int    `mapstructure:"MAX_FAILED_WORDS"`
	CorrectReward  int    `mapstructure:"CORRECT_REWARD"`

	// Words
	WordList            []string `mapstructure:"WORD_LIST"`
	AutoGenerate        bool     `mapstructure:"AUTO_GENERATE_WHEN_EMPTY"`
	GeneratedWordsCount int      `mapstructure:"GENERATED_WORDS_COUNT"`
	GeneratedMinLength  int      `mapstructure:"GENERATED_MIN_LENGTH"`
	GeneratedMaxLength  int      `mapstructure:"GENERATED_MAX_LENGTH"`

	// Pacing
	ShowCorrectDuration time.Duration `mapstructure:"SHOW_CORRECT_DURATION"`
	ShowAnswerDuration  time.Duration `mapstructure:"SHOW_ANSWER_DURATION"`
	MaxNameLength       int           `mapstructure:"MAX_NAME_LENGTH"`
	TickInterval        time.Duration `mapstructure:"TICK_INTERVAL"`

	// Hints
	AsyncHints   bool          `mapstructure:"ASYNC_HINTS"`
	HintTimeout  time.Duration `mapstructure:"HINT_TIMEOUT"`
	HintProvider string        `mapstructure:"HINT_PROVIDER" validate:"oneof=openai lambda static none"`

	// OpenAI
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL" validate:"omitempty,url"`

	// AWS
	AWSRegion          string `mapstructure:"AWS_REGION"`
	HintLambdaFunction string `mapstructure:"HINT_LAMBDA_FUNCTION" validate:"required_if=HintProvider lambda"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_TIMEOUT", time.Second*30)

	v.SetDefault("GAME_MODE", string(modes.ModeClassic))
	v.SetDefault("REVEAL_POLICY", "")
	v.SetDefault("HINT_STYLE", "")
	v.SetDefault("LIVES_PER_WORD", modes.DefaultLivesPerWord)
	v.SetDefault("MAX_FAILED_WORDS", modes.DefaultMaxFailedWords)
	v.SetDefault("CORRECT_REWARD", modes.DefaultCorrectReward)

	v.SetDefault("WORD_LIST", game.DefaultWords)
	v.SetDefault("AUTO_GENERATE_WHEN_EMPTY", true)
	v.SetDefault("GENERATED_WORDS_COUNT", game.DefaultGeneratedBatch)
	v.SetDefault("GENERATED_MIN_LENGTH", game.DefaultGeneratedMinLen)
	v.SetDefault("GENERATED_MAX_LENGTH", game.DefaultGeneratedMaxLen)

	v.SetDefault("SHOW_CORRECT_DURATION", game.DefaultShowDuration)
	v.SetDefault("SHOW_ANSWER_DURATION", game.DefaultShowDuration)
	v.SetDefault("MAX_NAME_LENGTH", game.DefaultMaxNameLength)
	v.SetDefault("TICK_INTERVAL", game.DefaultTickInterval)

	v.SetDefault("ASYNC_HINTS", true)
	v.SetDefault("HINT_TIMEOUT", game.DefaultHintTimeout)
	v.SetDefault("HINT_PROVIDER", "openai")

	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", game.DefaultOpenAIModel)
	v.SetDefault("OPENAI_BASE_URL", game.DefaultOpenAIBaseURL)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("HINT_LAMBDA_FUNCTION", "")
}

// Load reads config.yaml from . or ./config if present; environment
// variables take precedence over the file
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.HintProvider = strings.ToLower(strings.TrimSpace(config.HintProvider))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GameSettings builds validated session settings: the mode preset first,
// then any explicit overrides
func (c *Config) GameSettings() (game.Settings, error) {
	mode, err := modes.ParseMode(strings.ToLower(c.GameMode))
	if err != nil {
		return game.Settings{}, &game.ConfigurationError{Field: "GAME_MODE", Reason: err.Error()}
	}

	rules := modes.DefaultRules(mode)
	if c.RevealPolicy != "" {
		rules.Reveal = modes.RevealPolicy(strings.ToLower(c.RevealPolicy))
	}
	if c.HintStyle != "" {
		rules.Hints = modes.HintStyle(strings.ToLower(c.HintStyle))
	}
	rules.LivesPerWord = c.LivesPerWord
	rules.MaxFailedWords = c.MaxFailedWords
	rules.CorrectReward = c.CorrectReward

	settings := game.Settings{
		Rules:           rules,
		Words:           c.WordList,
		AutoGenerate:    c.AutoGenerate,
		GeneratedBatch:  c.GeneratedWordsCount,
		GeneratedMinLen: c.GeneratedMinLength,
		GeneratedMaxLen: c.GeneratedMaxLength,
		ShowCorrectFor:  c.ShowCorrectDuration,
		ShowAnswerFor:   c.ShowAnswerDuration,
		MaxNameLength:   c.MaxNameLength,
		TickInterval:    c.TickInterval,
		AsyncHints:      c.AsyncHints,
		HintTimeout:     c.HintTimeout,
	}
	if err := settings.Validate(); err != nil {
		return game.Settings{}, err
	}

	return settings, nil
}
