package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const StageProd = "prod"

type Config struct {
	LogLevel      string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort      string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	Stage         string `yaml:"stage" env:"STAGE" env-default:"dev"`
	ResumeOnStart bool   `yaml:"resume-on-start" env:"RESUME_ON_START" env-default:"false"`
	// empty means a fresh id on every start, which makes resume a no-op
	SessionID  string     `yaml:"session-id" env:"SESSION_ID"`
	GameServer GameServer `yaml:"game-server"`
	Redis      Redis      `yaml:"redis"`
}

type GameServer struct {
	BaseURL string `yaml:"base-url" env:"GAME_SERVER_URL" env-default:"http://localhost:8081"`
	// zero means requests wait for the server indefinitely
	RequestTimeout time.Duration `yaml:"request-timeout" env:"GAME_SERVER_TIMEOUT" env-default:"0s"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Config) IsProd() bool {
	return that.Stage == StageProd
}
