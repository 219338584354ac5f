package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client and the development stub
// server. The values are read by Viper from a config file or environment
// variables.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Session SessionConfig `mapstructure:"session"`
	Stub    StubConfig    `mapstructure:"stub"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UploadConfig selects and configures the object-storage upload provider.
// Provider is "media" (unsigned multipart endpoint) or "s3".
type UploadConfig struct {
	Provider string      `mapstructure:"provider"`
	Media    MediaConfig `mapstructure:"media"`
	S3       S3Config    `mapstructure:"s3"`
}

type MediaConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Preset   string `mapstructure:"preset"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// StubConfig configures the local development API server.
type StubConfig struct {
	Address       string        `mapstructure:"address"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	JWTExpiration time.Duration `mapstructure:"jwt_expiration"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., api.base_url -> API_BASE_URL
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("api.base_url", "http://localhost:8080/api")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("upload.provider", "media")
	viper.SetDefault("upload.media.preset", "ml_default")
	viper.SetDefault("upload.s3.use_ssl", true)
	viper.SetDefault("session.path", "")
	viper.SetDefault("stub.address", ":8080")
	viper.SetDefault("stub.jwt_secret", "traintrack-dev-secret")
	viper.SetDefault("stub.jwt_expiration", "24h")

	// --- Read Config File ---
	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; defaults and env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
