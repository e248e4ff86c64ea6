package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	ModeServer  = "server"
	ModeConsole = "console"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string `yaml:"mode" env:"MODE" env-default:"server"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	HumanMark  string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"O"`
	Bot        Bot    `yaml:"bot"`
}

type Bot struct {
	// Seed - 0 selects the process-wide random source.
	Seed int64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// GetHumanMark - the mark played by the human; the computer plays the other one.
func (that *Config) GetHumanMark() entity.Mark {
	mark, err := entity.ParseMark(that.HumanMark)
	if err != nil {
		return entity.Circle
	}

	return mark
}

func (that *Config) validate() error {
	if that.Mode != ModeServer && that.Mode != ModeConsole {
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if _, err := entity.ParseMark(that.HumanMark); err != nil {
		return fmt.Errorf("invalid human-mark: %w", err)
	}

	return nil
}
