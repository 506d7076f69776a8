package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BannerFontSize != 12 {
		t.Errorf("banner font size = %d, want 12", cfg.BannerFontSize)
	}
	if len(cfg.Fonts) != 3 {
		t.Errorf("fonts = %d, want 3", len(cfg.Fonts))
	}
	if cfg.Telegram.Enabled() {
		t.Error("publishing enabled without a token")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
outputs_dir: out
font_ext: ttf
fonts:
  - size: 12
    line_height: 12
telegram:
  bot_token: abc
  chat_id: -100123
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.OutputsDir != "out" || cfg.FontExt != "ttf" {
		t.Errorf("outputs_dir/font_ext = %q/%q", cfg.OutputsDir, cfg.FontExt)
	}
	if cfg.ImagesDir != "assets/images" {
		t.Errorf("images_dir = %q, want default", cfg.ImagesDir)
	}
	if len(cfg.Fonts) != 1 || cfg.Fonts[0].LineHeight != 12 {
		t.Errorf("fonts = %+v", cfg.Fonts)
	}
	if !cfg.Telegram.Enabled() || cfg.Telegram.ChatID != -100123 {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
	if cfg.Telegram.MaxFileSize != 50*1024*1024 {
		t.Errorf("max file size = %d, want default", cfg.Telegram.MaxFileSize)
	}
}

func TestLoadFileRejectsBadFonts(t *testing.T) {
	path := writeConfig(t, "fonts:\n  - size: 12\n    line_height: 0\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for zero line height")
	}

	path = writeConfig(t, "fonts: [")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("OUTPUTS_DIR", "dist")
	t.Setenv("CHAT_ID", "42")
	t.Setenv("MAX_FILE_SIZE", "lots")

	cfg := Load(logger)
	if cfg.OutputsDir != "dist" {
		t.Errorf("outputs dir = %q, want dist", cfg.OutputsDir)
	}
	if cfg.Telegram.ChatID != 42 {
		t.Errorf("chat id = %d, want 42", cfg.Telegram.ChatID)
	}
	if cfg.Telegram.MaxFileSize != 50*1024*1024 {
		t.Errorf("max file size = %d, want default", cfg.Telegram.MaxFileSize)
	}
	if !strings.Contains(buf.String(), "[WARN]: invalid value for MAX_FILE_SIZE") {
		t.Errorf("missing warning, log: %q", buf.String())
	}
}

func TestFontConfigFileNames(t *testing.T) {
	fc := FontConfig{Size: 12, LineHeight: 14}

	if got := fc.FontFileName("proportional", "zh_cn", "otf"); got != "ark-pixel-12px-proportional-zh_cn.otf" {
		t.Errorf("font file = %q", got)
	}
	if got := fc.AlphabetFileName("proportional"); got != "alphabet-12px-proportional.txt" {
		t.Errorf("alphabet file = %q", got)
	}
	if got := fc.PreviewImageFileName(); got != "preview-12px.png" {
		t.Errorf("preview file = %q", got)
	}

	cfg := defaultConfig()
	if _, ok := cfg.FontConfig(11); ok {
		t.Error("found config for 11px")
	}
	banner, err := cfg.BannerFont()
	if err != nil || banner.Size != 12 {
		t.Errorf("banner font = %+v, %v", banner, err)
	}
}
