package config

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/shared/errors"
)

func TestLoadFromYAMLFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("MAIN_ADMIN_ID", "")

	yaml := `telegram_bot_token: "123:abc"
main_admin_id: 42
storage_file: "data.json"
app_env: "development"
`
	if err := os.WriteFile("config.yaml", []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TelegramBotToken != "123:abc" {
		t.Errorf("TelegramBotToken = %q, want %q", cfg.TelegramBotToken, "123:abc")
	}
	if cfg.MainAdminID != 42 {
		t.Errorf("MainAdminID = %d, want 42", cfg.MainAdminID)
	}
	if cfg.StorageFile != "data.json" {
		t.Errorf("StorageFile = %q, want %q", cfg.StorageFile, "data.json")
	}
	if cfg.AppEnv != domain.AppEnvDevelopment {
		t.Errorf("AppEnv = %v, want development", cfg.AppEnv)
	}

	// Unset fields fall back to defaults.
	if cfg.TempDir != "temp_media" {
		t.Errorf("TempDir = %q, want %q", cfg.TempDir, "temp_media")
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want %q", cfg.HTTPPort, "8080")
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %q, want %q", cfg.FFmpegPath, "ffmpeg")
	}
	if cfg.MaxDownloadMB != 20 {
		t.Errorf("MaxDownloadMB = %d, want 20", cfg.MaxDownloadMB)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("MAIN_ADMIN_ID", "7")
	t.Setenv("HTTP_PORT", "9090")

	yaml := `telegram_bot_token: "file-token"
main_admin_id: 1
http_port: "8080"
`
	if err := os.WriteFile("config.yaml", []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TelegramBotToken != "env-token" {
		t.Errorf("TelegramBotToken = %q, want env value", cfg.TelegramBotToken)
	}
	if cfg.MainAdminID != 7 {
		t.Errorf("MainAdminID = %d, want 7", cfg.MainAdminID)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want %q", cfg.HTTPPort, "9090")
	}
}

func TestLoadEmptyEnvDoesNotOverrideFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("MAIN_ADMIN_ID", "")
	t.Setenv("HTTP_PORT", "")

	yaml := `telegram_bot_token: "file-token"
main_admin_id: 9
http_port: "3000"
`
	if err := os.WriteFile("config.yaml", []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TelegramBotToken != "file-token" {
		t.Errorf("TelegramBotToken = %q, empty env must not override the file", cfg.TelegramBotToken)
	}
	if cfg.MainAdminID != 9 {
		t.Errorf("MainAdminID = %d, want 9", cfg.MainAdminID)
	}
	if cfg.HTTPPort != "3000" {
		t.Errorf("HTTPPort = %q, want %q", cfg.HTTPPort, "3000")
	}
}

func TestLoadMissingBotToken(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("MAIN_ADMIN_ID", "42")

	if _, err := Load(); !stderrors.Is(err, errors.ErrMissingBotToken) {
		t.Errorf("Load() error = %v, want ErrMissingBotToken", err)
	}
}

func TestLoadMissingAdminID(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("MAIN_ADMIN_ID", "")

	if _, err := Load(); !stderrors.Is(err, errors.ErrMissingAdminID) {
		t.Errorf("Load() error = %v, want ErrMissingAdminID", err)
	}
}

func TestLoadInvalidAppEnvFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("MAIN_ADMIN_ID", "42")
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AppEnv != domain.AppEnvProduction {
		t.Errorf("AppEnv = %v, want production fallback", cfg.AppEnv)
	}
}

func TestMaxDownloadBytes(t *testing.T) {
	cfg := &Config{MaxDownloadMB: 20}
	if got := cfg.MaxDownloadBytes(); got != 20*1024*1024 {
		t.Errorf("MaxDownloadBytes() = %d, want %d", got, 20*1024*1024)
	}
}
