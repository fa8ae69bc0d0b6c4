// Package config loads the application configuration from YAML via viper and
// validates it with go-playground/validator.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Mission    MissionConfig    `mapstructure:"mission"`
	Reports    ReportsConfig    `mapstructure:"reports"`
}

type CatalogConfig struct {
	Directory string `mapstructure:"directory"`
}

// StorageConfig selects where learner progress lives. The file backend is the
// default; the mysql backend requires the database section.
type StorageConfig struct {
	Backend   string `mapstructure:"backend" validate:"oneof=file mysql"`
	Directory string `mapstructure:"directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type DictionaryConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	CacheDirectory string `mapstructure:"cache_directory"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
}

type MissionConfig struct {
	TargetQuestions int `mapstructure:"target_questions" validate:"min=1"`
	XPPerQuestion   int `mapstructure:"xp_per_question" validate:"min=1"`
}

type ReportsConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocamind")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("catalog.directory", filepath.Join("catalog", "levels"))
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.directory", filepath.Join("data", "progress"))
	v.SetDefault("dictionary.base_url", "https://api.dictionaryapi.dev")
	v.SetDefault("dictionary.cache_directory", filepath.Join("data", "dictionary"))
	v.SetDefault("dictionary.retry_attempts", 2)
	v.SetDefault("mission.target_questions", 5)
	v.SetDefault("mission.xp_per_question", 10)
	v.SetDefault("reports.output_directory", filepath.Join("data", "reports"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "vocamind")
	v.SetDefault("database.username", "user")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
