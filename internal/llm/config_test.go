package llm

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("EXAMLY_LLM_PROVIDER", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("expected openai default, got %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("EXAMLY_LLM_PROVIDER", "anthropic")
	t.Setenv("EXAMLY_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("EXAMLY_ANTHROPIC_MODEL", "claude-custom")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("expected API key from env, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-custom" {
		t.Errorf("expected model override, got %q", cfg.Anthropic.Model)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing OpenAI key")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "nonsense"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Errorf("expected openai to win discovery, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("unexpected key: %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_FallsBackToAnthropic(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}
