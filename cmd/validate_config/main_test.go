package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"Trail", "density: 3\nshape: circle\n", "拖尾配置", false},
		{"Palette", "name: duo\nhues:\n  - {name: a, hue: 10, weight: 0.5}\n  - {name: b, hue: 20, weight: 0.5}\n", "调色板", false},
		{"PaletteOverflow", "name: bad\nhues:\n  - {name: a, hue: 10, weight: 0.6}\n  - {name: b, hue: 20, weight: 0.6}\n", "", true},
		{"BadShape", "shape: star\n", "", true},
		{"NegativeWane", "waneSpeed: -1\n", "", true},
		{"Broken", "density: [", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name+".yaml", tt.content)
			summary, err := validateFile(path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got summary %q", summary)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(summary, tt.want) {
				t.Errorf("summary %q should mention %q", summary, tt.want)
			}
		})
	}
}

func TestValidateFile_Missing(t *testing.T) {
	if _, err := validateFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
