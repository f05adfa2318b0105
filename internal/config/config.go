package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wb-go/wbf/zlog"
)

// DefaultPath is where Must looks for the configuration file.
const DefaultPath = "./config/config.yaml"

// Config holds the main configuration for the application.
type Config struct {
	Email    Email    `mapstructure:"email"`
	Delivery Delivery `mapstructure:"delivery"`
	Template Template `mapstructure:"template"`
	Decision Decision `mapstructure:"decision"`
	Files    Files    `mapstructure:"files"`
}

// Email holds SMTP configuration and the fixed envelope of the message.
type Email struct {
	SMTPHost       string        `mapstructure:"smtp_host" validate:"required"`
	SMTPPort       int           `mapstructure:"smtp_port" validate:"required,min=1,max=65535"`
	Username       string        `mapstructure:"username" validate:"required"`
	From           string        `mapstructure:"from" validate:"required"`
	Recipients     []string      `mapstructure:"recipients" validate:"required,min=1,dive,email"`
	Subject        string        `mapstructure:"subject"`
	Timeout        time.Duration `mapstructure:"timeout" validate:"min=0"`
	PasswordSource string        `mapstructure:"password_source" validate:"oneof=prompt env file"`
	PasswordEnv    string        `mapstructure:"password_env" validate:"required_if=PasswordSource env"`
	PasswordFile   string        `mapstructure:"password_file" validate:"required_if=PasswordSource file"`
}

// Delivery selects how the composed message leaves the process.
type Delivery struct {
	Channel   string `mapstructure:"channel" validate:"oneof=email file"`
	OutputDir string `mapstructure:"output_dir" validate:"required_if=Channel file"`
}

// Template controls placeholder substitution.
type Template struct {
	Marker          string `mapstructure:"marker" validate:"len=1"`
	Fallback        string `mapstructure:"fallback"`
	TrimPunctuation bool   `mapstructure:"trim_punctuation"`
	PersonalityKey  string `mapstructure:"personality_key" validate:"required"`
}

// Decision names the token the chosen venue is published under.
type Decision struct {
	Token string `mapstructure:"token" validate:"required"`
}

// Files holds paths to the data files read on every run.
type Files struct {
	Venues   string `mapstructure:"venues" validate:"required"`
	Settings string `mapstructure:"settings" validate:"required"`
	Template string `mapstructure:"template" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.subject", "Happy Hour")
	v.SetDefault("email.timeout", 30*time.Second)
	v.SetDefault("email.password_source", "prompt")
	v.SetDefault("email.password_env", "SMTP_PASS")

	v.SetDefault("delivery.channel", "email")
	v.SetDefault("delivery.output_dir", "./outbox")

	v.SetDefault("template.marker", "$")
	v.SetDefault("template.fallback", "DERP")
	v.SetDefault("template.trim_punctuation", false)
	v.SetDefault("template.personality_key", "personality")

	v.SetDefault("decision.token", "location")

	v.SetDefault("files.venues", "./data/places.csv")
	v.SetDefault("files.settings", "./data/settings.yaml")
	v.SetDefault("files.template", "./data/email_location.txt")
}

// bindEnv binds environment variables to viper keys.
func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"email.smtp_host":       "SMTP_HOST",
		"email.smtp_port":       "SMTP_PORT",
		"email.username":        "SMTP_USER",
		"email.from":            "SMTP_FROM",
		"email.password_source": "SMTP_PASSWORD_SOURCE",
		"email.password_env":    "SMTP_PASSWORD_ENV",
		"email.password_file":   "SMTP_PASSWORD_FILE",

		"delivery.channel":    "MAILER_CHANNEL",
		"delivery.output_dir": "MAILER_OUTPUT_DIR",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	return nil
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. A missing file is not an error: defaults and
// environment variables may be enough.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Must loads .env (if present) and the configuration at DefaultPath.
//
// It exits the process if configuration cannot be read or is invalid.
func Must() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		zlog.Logger.Warn().Err(err).Msg("failed to load .env")
	}

	cfg, err := Load(DefaultPath)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load config")
	}

	return cfg
}
