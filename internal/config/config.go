package config

import "fmt"

type Config struct {
	OutputsDir     string         `yaml:"outputs_dir"`
	ImagesDir      string         `yaml:"images_dir"`
	FontsDir       string         `yaml:"fonts_dir"`
	FontExt        string         `yaml:"font_ext"`
	BannerFontSize int            `yaml:"banner_font_size"`
	Fonts          []FontConfig   `yaml:"fonts"`
	Telegram       TelegramConfig `yaml:"telegram"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"`
	ChatID      int64  `yaml:"chat_id"`
	MaxFileSize int64  `yaml:"max_file_size"`
}

// Enabled reports whether results should be published after rendering.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

type FontConfig struct {
	Size       int `yaml:"size"`
	LineHeight int `yaml:"line_height"`
}

func (fc FontConfig) FontFileName(widthMode, languageFlavor, ext string) string {
	return fmt.Sprintf("ark-pixel-%dpx-%s-%s.%s", fc.Size, widthMode, languageFlavor, ext)
}

func (fc FontConfig) AlphabetFileName(widthMode string) string {
	return fmt.Sprintf("alphabet-%dpx-%s.txt", fc.Size, widthMode)
}

func (fc FontConfig) PreviewImageFileName() string {
	return fmt.Sprintf("preview-%dpx.png", fc.Size)
}

func (c *Config) FontConfig(size int) (FontConfig, bool) {
	for _, fc := range c.Fonts {
		if fc.Size == size {
			return fc, true
		}
	}
	return FontConfig{}, false
}

// BannerFont is the font config every banner and cover is drawn with.
func (c *Config) BannerFont() (FontConfig, error) {
	fc, ok := c.FontConfig(c.BannerFontSize)
	if !ok {
		return FontConfig{}, fmt.Errorf("no font config for banner size %dpx", c.BannerFontSize)
	}
	return fc, nil
}

func defaultConfig() *Config {
	return &Config{
		OutputsDir:     "build/outputs",
		ImagesDir:      "assets/images",
		FontsDir:       "build/outputs",
		FontExt:        "otf",
		BannerFontSize: 12,
		Fonts: []FontConfig{
			{Size: 10, LineHeight: 12},
			{Size: 12, LineHeight: 14},
			{Size: 16, LineHeight: 20},
		},
		Telegram: TelegramConfig{
			MaxFileSize: 50 * 1024 * 1024,
		},
	}
}
