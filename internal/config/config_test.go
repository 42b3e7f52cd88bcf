package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

func mustLogger(t *testing.T) *apperrors.Logger {
	t.Helper()
	logger, err := apperrors.New("info")
	if err != nil {
		t.Fatal(err)
	}
	return logger
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.App.DefaultFormat != "json" {
		t.Errorf("App.DefaultFormat = %s, want json", cfg.App.DefaultFormat)
	}
	if cfg.Engine.Bands.Good != 80 || cfg.Engine.Bands.Warning != 50 {
		t.Errorf("Bands = %d/%d, want 80/50", cfg.Engine.Bands.Good, cfg.Engine.Bands.Warning)
	}
	if cfg.Engine.Extractor.Timeout != 10*time.Second {
		t.Errorf("Extractor.Timeout = %v, want 10s", cfg.Engine.Extractor.Timeout)
	}
	if cfg.Engine.Gaps.ThresholdMonths != 6 {
		t.Errorf("Gaps.ThresholdMonths = %d, want 6", cfg.Engine.Gaps.ThresholdMonths)
	}

	for _, dim := range types.Dimensions {
		if cfg.Engine.Weight(dim) != 1 {
			t.Errorf("default weight for %s = %v, want 1", dim, cfg.Engine.Weight(dim))
		}
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	os.Setenv("RESUMELENS_ENGINE_GAPS_THRESHOLDMONTHS", "3")
	defer os.Unsetenv("RESUMELENS_ENGINE_GAPS_THRESHOLDMONTHS")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Engine.Gaps.ThresholdMonths != 3 {
		t.Errorf("Gaps.ThresholdMonths = %d, want 3", cfg.Engine.Gaps.ThresholdMonths)
	}
}

func TestEngineConfigValidate(t *testing.T) {
	valid := func() EngineConfig {
		return EngineConfig{
			Weights:         map[string]float64{"structure": 1, "skills": 2},
			Bands:           BandsConfig{Good: 80, Warning: 50},
			Extractor:       ExtractorConfig{MaxBytes: 1024, MaxLines: 100, Timeout: time.Second},
			Gaps:            GapsConfig{ThresholdMonths: 6},
			Recommendations: RecommendationsConfig{MaxItems: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*EngineConfig)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *EngineConfig) {},
			wantErr: false,
		},
		{
			name: "unknown dimension in weights",
			mutate: func(c *EngineConfig) {
				c.Weights["charisma"] = 1
			},
			wantErr: true,
		},
		{
			name: "negative weight",
			mutate: func(c *EngineConfig) {
				c.Weights["structure"] = -1
			},
			wantErr: true,
		},
		{
			name: "all-zero weights",
			mutate: func(c *EngineConfig) {
				c.Weights = map[string]float64{"structure": 0, "skills": 0}
			},
			wantErr: true,
		},
		{
			name: "inverted bands",
			mutate: func(c *EngineConfig) {
				c.Bands = BandsConfig{Good: 40, Warning: 60}
			},
			wantErr: true,
		},
		{
			name: "zero extractor timeout",
			mutate: func(c *EngineConfig) {
				c.Extractor.Timeout = 0
			},
			wantErr: true,
		},
		{
			name: "zero gap threshold",
			mutate: func(c *EngineConfig) {
				c.Gaps.ThresholdMonths = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfigBand(t *testing.T) {
	cfg := EngineConfig{Bands: BandsConfig{Good: 80, Warning: 50}}

	tests := []struct {
		score int
		want  types.Band
	}{
		{100, types.BandGood},
		{80, types.BandGood},
		{79, types.BandWarning},
		{50, types.BandWarning},
		{49, types.BandCritical},
		{0, types.BandCritical},
	}

	for _, tt := range tests {
		if got := cfg.Band(tt.score); got != tt.want {
			t.Errorf("Band(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr bool
	}{
		{
			name:    "disabled mode",
			tls:     TLSConfig{Mode: "disabled"},
			wantErr: false,
		},
		{
			name:    "server mode with files",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem", MinVersion: "1.3"},
			wantErr: false,
		},
		{
			name:    "server mode missing key",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem"},
			wantErr: true,
		},
		{
			name:    "invalid mode",
			tls:     TLSConfig{Mode: "mutual"},
			wantErr: true,
		},
		{
			name:    "invalid min version",
			tls:     TLSConfig{Mode: "server", CertFile: "c", KeyFile: "k", MinVersion: "1.0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{TLS: tt.tls}}
			err := cfg.ValidateTLSConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTLSConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()

	if len(vocab.Skills) == 0 || len(vocab.ActionVerbs) == 0 || len(vocab.WeakOpeners) == 0 {
		t.Fatal("default vocabulary has empty lists")
	}

	for _, section := range []string{"contact", "summary", "experience", "education", "skills", "projects", "certifications"} {
		if len(vocab.SectionSynonyms[section]) == 0 {
			t.Errorf("no synonyms for section %s", section)
		}
	}
}

func TestLoadVocabularyOverrides(t *testing.T) {
	dir := t.TempDir()
	skillsFile := filepath.Join(dir, "skills.txt")
	content := "# custom skills\nrust\nZig\n\nerlang\n"
	if err := os.WriteFile(skillsFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	vocab, err := LoadVocabulary(VocabularyFilesConfig{SkillsFile: skillsFile})
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}

	want := []string{"rust", "zig", "erlang"}
	if len(vocab.Skills) != len(want) {
		t.Fatalf("Skills = %v, want %v", vocab.Skills, want)
	}
	for i, term := range want {
		if vocab.Skills[i] != term {
			t.Errorf("Skills[%d] = %s, want %s", i, vocab.Skills[i], term)
		}
	}

	// Lists without overrides keep their defaults
	if len(vocab.ActionVerbs) == 0 {
		t.Error("ActionVerbs should keep defaults when not overridden")
	}
}

func TestLoadVocabularyEmptyFile(t *testing.T) {
	dir := t.TempDir()
	emptyFile := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(emptyFile, []byte("# only a comment\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadVocabulary(VocabularyFilesConfig{ActionVerbsFile: emptyFile}); err == nil {
		t.Error("expected error for vocabulary file with no terms")
	}
}

func TestVocabularyWatcherReload(t *testing.T) {
	dir := t.TempDir()
	skillsFile := filepath.Join(dir, "skills.txt")
	if err := os.WriteFile(skillsFile, []byte("python\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := mustLogger(t)
	watcher, err := NewVocabularyWatcher(VocabularyFilesConfig{SkillsFile: skillsFile}, logger)
	if err != nil {
		t.Fatalf("NewVocabularyWatcher() error = %v", err)
	}
	defer watcher.Close()

	if got := watcher.Current().Skills; len(got) != 1 || got[0] != "python" {
		t.Fatalf("initial Skills = %v, want [python]", got)
	}
	before := watcher.Current()

	if err := os.WriteFile(skillsFile, []byte("python\ngo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(watcher.Current().Skills) == 2 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	after := watcher.Current()
	if len(after.Skills) != 2 {
		t.Fatalf("Skills after reload = %v, want [python go]", after.Skills)
	}
	if before == after {
		t.Error("reload should produce a new snapshot, not mutate the old one")
	}
	if len(before.Skills) != 1 {
		t.Errorf("previous snapshot was mutated: %v", before.Skills)
	}
}

func TestVocabularyWatcherReloadHook(t *testing.T) {
	dir := t.TempDir()
	skillsFile := filepath.Join(dir, "skills.txt")
	if err := os.WriteFile(skillsFile, []byte("python\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := mustLogger(t)
	watcher, err := NewVocabularyWatcher(VocabularyFilesConfig{SkillsFile: skillsFile}, logger)
	if err != nil {
		t.Fatalf("NewVocabularyWatcher() error = %v", err)
	}
	defer watcher.Close()

	outcomes := make(chan bool, 4)
	watcher.SetReloadHook(func(success bool) {
		outcomes <- success
	})

	// A valid rewrite reports a successful reload
	if err := os.WriteFile(skillsFile, []byte("python\ngo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case success := <-outcomes:
		if !success {
			t.Error("valid rewrite should report a successful reload")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reload hook was not invoked after a valid rewrite")
	}

	// An empty file fails to load and reports failure, keeping the snapshot
	if err := os.WriteFile(skillsFile, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case success := <-outcomes:
		if success {
			t.Error("empty file should report a failed reload")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reload hook was not invoked after a broken rewrite")
	}

	if got := watcher.Current().Skills; len(got) != 2 {
		t.Errorf("failed reload should keep the previous snapshot, got %v", got)
	}
}
