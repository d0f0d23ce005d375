package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CorpusDir != "corpus" {
		t.Fatalf("CorpusDir = %q, want corpus", cfg.CorpusDir)
	}
	if cfg.OutDir != "out" {
		t.Fatalf("OutDir = %q, want out", cfg.OutDir)
	}
	if cfg.Live || cfg.Debug {
		t.Fatalf("Live=%v Debug=%v, want false", cfg.Live, cfg.Debug)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("Log = %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RSTFEAT_CORPUS_DIR", "/data/rst")
	t.Setenv("RSTFEAT_LIVE", "true")
	t.Setenv("RSTFEAT_LOG_LEVEL", "debug")
	t.Setenv("RSTFEAT_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CorpusDir != "/data/rst" {
		t.Fatalf("CorpusDir = %q", cfg.CorpusDir)
	}
	if !cfg.Live {
		t.Fatal("Live not overridden")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("Log = %+v", cfg.Log)
	}
	// Untouched keys keep their defaults.
	if cfg.OutDir != "out" {
		t.Fatalf("OutDir = %q, want out", cfg.OutDir)
	}
}

func TestTransformEnv(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"RSTFEAT_CORPUS_DIR", "corpus_dir"},
		{"RSTFEAT_OUT_DIR", "out_dir"},
		{"RSTFEAT_LIVE", "live"},
		{"RSTFEAT_LOG_LEVEL", "log.level"},
		{"RSTFEAT_LOG_FORMAT", "log.format"},
	}
	for _, tt := range tests {
		if got := transformEnv(tt.in); got != tt.want {
			t.Errorf("transformEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
