package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile     string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	ClearScreen string  `yaml:"clear-screen" env:"TICTACTOE_CLEAR_SCREEN" env-default:"auto"`
	Players     Players `yaml:"players"`
}

type Players struct {
	First  FirstPlayer  `yaml:"first"`
	Second SecondPlayer `yaml:"second"`
}

type FirstPlayer struct {
	Name string `yaml:"name" env:"TICTACTOE_FIRST_NAME" env-default:"Player 1"`
	Mark string `yaml:"mark" env:"TICTACTOE_FIRST_MARK" env-default:"O"`
}

type SecondPlayer struct {
	Name string `yaml:"name" env:"TICTACTOE_SECOND_NAME" env-default:"Player 2"`
	Mark string `yaml:"mark" env:"TICTACTOE_SECOND_MARK" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file. A missing file falls back to defaults and environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	return config, nil
}
