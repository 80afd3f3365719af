package sheetimport

import (
	"strings"
	"testing"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

func TestLoadConfig(t *testing.T) {
	src := `
expected_headers: [Statement, Type]
required_columns: [Statement]
max_rows: 100
max_file_size_bytes: 1000000
column_types:
  Points: integer
unique_columns: [Statement]
trim_whitespace: true
language: es
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.ExpectedHeaders) != 2 || cfg.RequiredColumns[0] != "Statement" {
		t.Errorf("Unexpected headers %+v", cfg)
	}
	if cfg.MaxRows == nil || *cfg.MaxRows != 100 || *cfg.MaxFileSizeBytes != 1000000 {
		t.Errorf("Unexpected limits %+v", cfg)
	}
	if cfg.ColumnTypes["Points"] != models.TypeInteger || !cfg.TrimWhitespace || cfg.Language != "es" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "expected_header: [A]"},
		{"unknown type", "column_types:\n  A: money"},
		{"negative rows", "max_rows: -1"},
		{"bad yaml", "expected_headers: [A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(strings.NewReader(tt.src)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MaxRows != nil || len(cfg.ExpectedHeaders) != 0 {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}
