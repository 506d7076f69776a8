package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

func Load(logger *log.Logger) *Config {
	path := getEnv(logger, "CONFIG_FILE", "config.yaml", parseString)

	cfg, err := LoadFile(path)
	if err != nil {
		logger.Fatal(err)
	}

	cfg.OutputsDir = getEnv(logger, "OUTPUTS_DIR", cfg.OutputsDir, parseString)
	cfg.ImagesDir = getEnv(logger, "IMAGES_DIR", cfg.ImagesDir, parseString)
	cfg.FontsDir = getEnv(logger, "FONTS_DIR", cfg.FontsDir, parseString)
	cfg.FontExt = getEnv(logger, "FONT_EXT", cfg.FontExt, parseString)

	cfg.Telegram.BotToken = getEnv(logger, "TOKEN", cfg.Telegram.BotToken, parseString)
	cfg.Telegram.ChatID = getEnv(logger, "CHAT_ID", cfg.Telegram.ChatID, parseInt)
	cfg.Telegram.MaxFileSize = getEnv(logger, "MAX_FILE_SIZE", cfg.Telegram.MaxFileSize, parseInt)

	return cfg
}

// LoadFile reads a YAML config over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	for _, fc := range cfg.Fonts {
		if fc.Size <= 0 || fc.LineHeight <= 0 {
			return nil, fmt.Errorf("config %s: font size and line height must be positive, got %+v", path, fc)
		}
	}
	return cfg, nil
}

func getEnv[T any](logger *log.Logger, key string, defaultValue T, parser func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := parser(val)
	if err != nil {
		logger.Printf("[WARN]: invalid value for %s (%s). Using default: %v\n", key, val, defaultValue)
		return defaultValue
	}

	return parsed
}

func parseString(val string) (string, error) {
	return val, nil
}

func parseInt(val string) (int64, error) {
	return strconv.ParseInt(val, 10, 64)
}
