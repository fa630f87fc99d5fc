package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidBotDelay = errors.New("bot max-delay must not be less than min-delay")

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string   `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	Bot       Bot      `yaml:"bot"`
	Random    Random   `yaml:"random"`
	Terminal  Terminal `yaml:"terminal"`
}

// Bot bounds the pause before the bot plays.
type Bot struct {
	MinDelay time.Duration `yaml:"min-delay" env:"TICTACTOE_BOT_MIN_DELAY" env-default:"1s"`
	MaxDelay time.Duration `yaml:"max-delay" env:"TICTACTOE_BOT_MAX_DELAY" env-default:"3s"`
}

type Random struct {
	// Seed 0 seeds from the clock.
	Seed uint64 `yaml:"seed" env:"TICTACTOE_RANDOM_SEED" env-default:"0"`
}

// Booleans stay without env-default, cleanenv reapplies defaults over false.
type Terminal struct {
	NoColor bool `yaml:"no-color" env:"TICTACTOE_TERMINAL_NO_COLOR"`
}

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) validate() error {
	if that.Bot.MinDelay < 0 || that.Bot.MaxDelay < that.Bot.MinDelay {
		return fmt.Errorf("%w: min %s, max %s", ErrInvalidBotDelay, that.Bot.MinDelay, that.Bot.MaxDelay)
	}

	return nil
}
