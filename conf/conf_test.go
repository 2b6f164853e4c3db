package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Data.Delimiter != "," {
		t.Errorf("expected default delimiter ',', got %q", cfg.Data.Delimiter)
	}
	if cfg.Tree.MaxDepth != 3 {
		t.Errorf("expected default max depth 3, got %d", cfg.Tree.MaxDepth)
	}
	if cfg.Tree.RefererPageSize != 10 {
		t.Errorf("expected default referer page size 10, got %d", cfg.Tree.RefererPageSize)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Data: DataConfig{Delimiter: ","},
		Tree: TreeConfig{MaxDepth: 3, RefererPageSize: 10},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "tab delimiter is valid",
			mutate: func(c *Config) { c.Data.Delimiter = "\t" },
		},
		{
			name:   "empty delimiter falls back to comma",
			mutate: func(c *Config) { c.Data.Delimiter = "" },
		},
		{
			name:    "two-rune delimiter is invalid",
			mutate:  func(c *Config) { c.Data.Delimiter = ",;" },
			wantErr: true,
		},
		{
			name:    "zero max depth is invalid",
			mutate:  func(c *Config) { c.Tree.MaxDepth = 0 },
			wantErr: true,
		},
		{
			name:    "negative page size is invalid",
			mutate:  func(c *Config) { c.Tree.RefererPageSize = -1 },
			wantErr: true,
		},
		{
			name:   "single-character override is valid",
			mutate: func(c *Config) { c.Resolver.Overrides = map[string]string{"elbow": "厶"} },
		},
		{
			name:    "multi-character override is invalid",
			mutate:  func(c *Config) { c.Resolver.Overrides = map[string]string{"elbow": "厶厶"} },
			wantErr: true,
		},
		{
			name:    "multi-character exclusion is invalid",
			mutate:  func(c *Config) { c.Resolver.Excluded = []string{"口口"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestDelimiterRune(t *testing.T) {
	cfg := Config{Data: DataConfig{Delimiter: "\t"}}
	if got := cfg.Delimiter(); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}

	cfg.Data.Delimiter = ""
	if got := cfg.Delimiter(); got != ',' {
		t.Errorf("expected comma fallback, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `
[data]
kanji_source = "kanji.csv"
delimiter = "\t"

[tree]
max_depth = 5

[resolver.overrides]
elbow = "厶"
`
	if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Data.KanjiSource != "kanji.csv" {
		t.Errorf("expected kanji source 'kanji.csv', got %q", cfg.Data.KanjiSource)
	}
	if cfg.Delimiter() != '\t' {
		t.Errorf("expected tab delimiter, got %q", cfg.Delimiter())
	}
	if cfg.Tree.MaxDepth != 5 {
		t.Errorf("expected max depth 5, got %d", cfg.Tree.MaxDepth)
	}
	// unset values keep their defaults
	if cfg.Tree.RefererPageSize != 10 {
		t.Errorf("expected default page size 10, got %d", cfg.Tree.RefererPageSize)
	}
}

func TestResolverTablesMergeOverDefaults(t *testing.T) {
	r := ResolverConfig{
		Overrides:   map[string]string{"drop": "口"},
		PreferKanji: []string{"custom"},
		Excluded:    []string{"東"},
	}
	tables := r.Tables()

	// user override shadows the built-in one
	char, ok := tables.Resolve("drop")
	if !ok || char != "口" {
		t.Errorf("expected user override for 'drop', got %q (found=%v)", char, ok)
	}
	// built-in rules survive the merge
	if char, _ := tables.Resolve("elbow"); char != "厶" {
		t.Errorf("expected built-in override for 'elbow', got %q", char)
	}
	if !tables.PrefersKanji("one") || !tables.PrefersKanji("custom") {
		t.Error("expected both built-in and user kanji preferences")
	}
	if !tables.IsExcluded("口") || !tables.IsExcluded("東") {
		t.Error("expected both built-in and user exclusions")
	}
}

func TestCreateBackupRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	write := func(content string) {
		if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}

	// No file yet: backup is a no-op
	if err := createBackup(path); err != nil {
		t.Fatalf("createBackup() on missing file failed: %v", err)
	}

	write("v1")
	if err := createBackup(path); err != nil {
		t.Fatalf("createBackup() failed: %v", err)
	}
	write("v2")
	if err := createBackup(path); err != nil {
		t.Fatalf("createBackup() failed: %v", err)
	}

	back1, err := os.ReadFile(path + ".back1")
	if err != nil {
		t.Fatalf("missing .back1: %v", err)
	}
	if string(back1) != "v2" {
		t.Errorf("expected .back1 to hold 'v2', got %q", back1)
	}

	back2, err := os.ReadFile(path + ".back2")
	if err != nil {
		t.Fatalf("missing .back2: %v", err)
	}
	if string(back2) != "v1" {
		t.Errorf("expected .back2 to hold 'v1', got %q", back2)
	}
}

func TestIsBackupFile(t *testing.T) {
	if !isBackupFile("/home/u/.rtkgraph/" + ConfigFileName + ".back1") {
		t.Error("expected .back1 to be recognized as a backup")
	}
	if isBackupFile("/home/u/.rtkgraph/" + ConfigFileName) {
		t.Error("expected the config file itself not to be a backup")
	}
}
