package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type RefreshConfig struct {
	TTL string `yaml:"ttl"`
}

type VerificationConfig struct {
	TTL          string `yaml:"ttl"`
	ConfirmTTL   string `yaml:"confirm_ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type CareerConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Refresh      RefreshConfig      `yaml:"refresh"`
	Verification VerificationConfig `yaml:"verification"`
	Career       CareerConfig       `yaml:"career"`
	Casbin       CasbinConfig       `yaml:"casbin"`
}

type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTIssuer string
	AccessTTL time.Duration

	RefreshTTL time.Duration

	VerificationTTL          time.Duration
	VerificationConfirmTTL   time.Duration
	VerificationLength       int
	VerificationMaxAttempts  int
	VerificationResendWindow time.Duration

	CareerBaseURL string
	CareerAPIKey  string
	CareerTimeout time.Duration

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, with CONFIG_PATH overriding the location.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.Refresh.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh TTL: %w", err)
	}

	verTTL, err := time.ParseDuration(configFile.Verification.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification TTL: %w", err)
	}

	confTTL, err := time.ParseDuration(configFile.Verification.ConfirmTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification confirm TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.Verification.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid verification resend window: %w", err)
	}

	careerTimeout, err := time.ParseDuration(configFile.Career.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid career timeout: %w", err)
	}

	return &Config{
		Port:    fmt.Sprintf("%d", configFile.App.Port),
		GinMode: configFile.App.GinMode,

		DSN: env("DATABASE_DSN", configFile.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		JWTSecret: env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer: configFile.JWT.Issuer,
		AccessTTL: accTTL,

		RefreshTTL: refTTL,

		VerificationTTL:          verTTL,
		VerificationConfirmTTL:   confTTL,
		VerificationLength:       configFile.Verification.Length,
		VerificationMaxAttempts:  configFile.Verification.MaxAttempts,
		VerificationResendWindow: resWnd,

		CareerBaseURL: env("CAREER_API_URL", configFile.Career.BaseURL),
		CareerAPIKey:  env("CAREER_API_KEY", configFile.Career.APIKey),
		CareerTimeout: careerTimeout,

		CasbinModelPath: configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
