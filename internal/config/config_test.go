package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.APIURL != "http://localhost:3000" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Currency != "PHP" {
		t.Errorf("Currency = %q", cfg.Currency)
	}
	if cfg.StageToken != StageTokenTarget {
		t.Errorf("StageToken = %q", cfg.StageToken)
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api_url: https://api.example.test\ntimeout: 5s\nstage_token: current\ncurrency: USD\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("ATELIER_CURRENCY", "EUR")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.APIURL != "https://api.example.test" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.StageToken != StageTokenCurrent {
		t.Errorf("StageToken = %q", cfg.StageToken)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("env override lost: Currency = %q", cfg.Currency)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfig_InvalidStageToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ATELIER_STAGE_TOKEN", "next")

	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected validation error for bad stage_token")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{
		APIURL:     "https://api.example.test",
		Timeout:    10 * time.Second,
		Currency:   "PHP",
		StageToken: StageTokenCurrent,
		Color:      false,
	}

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.APIURL != want.APIURL || got.Timeout != want.Timeout || got.StageToken != want.StageToken || got.Color != want.Color {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestResolveDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{}
	path, err := cfg.ResolveDBPath()
	if err != nil {
		t.Fatalf("ResolveDBPath failed: %v", err)
	}
	if path != filepath.Join(home, ".atelier", "atelier.db") {
		t.Errorf("path = %q", path)
	}

	cfg.DBPath = "/tmp/custom.db"
	if path, _ := cfg.ResolveDBPath(); path != "/tmp/custom.db" {
		t.Errorf("explicit path ignored: %q", path)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ATELIER_TEST_DOTENV=loaded\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ATELIER_TEST_DOTENV") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("ATELIER_TEST_DOTENV"); got != "loaded" {
		t.Errorf("ATELIER_TEST_DOTENV = %q", got)
	}
}
