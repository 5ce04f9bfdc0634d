package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	def := Default()
	if cfg.Board != def.Board {
		t.Errorf("embedded board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Game != def.Game {
		t.Errorf("embedded game = %+v, expected %+v", cfg.Game, def.Game)
	}
	if cfg.AI != def.AI {
		t.Errorf("embedded ai = %+v, expected %+v", cfg.AI, def.AI)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
board:
  width: 30
  height: 15
game:
  tick_ms: 100
ai:
  endpoint: http://localhost:8080/v1/chat/completions
  model: test-model
  api_key_env: TEST_KEY
  timeout_ms: 2000
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Board.Width != 30 || cfg.Board.Height != 15 {
		t.Errorf("board = %+v", cfg.Board)
	}
	if cfg.Game.TickMS != 100 {
		t.Errorf("tick_ms = %d, expected 100", cfg.Game.TickMS)
	}
	if cfg.AI.Model != "test-model" || cfg.AI.TimeoutMS != 2000 {
		t.Errorf("ai = %+v", cfg.AI)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil for missing explicit path")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for malformed explicit file")
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("SNAKECOACH_TEST_KEY", "sk-test")

	c := AIConfig{APIKeyEnv: "SNAKECOACH_TEST_KEY"}
	if got := c.APIKey(); got != "sk-test" {
		t.Errorf("APIKey() = %q, expected sk-test", got)
	}

	c.APIKeyEnv = ""
	if got := c.APIKey(); got != "" {
		t.Errorf("APIKey() with no env name = %q, expected empty", got)
	}
}
