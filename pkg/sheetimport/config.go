package sheetimport

import (
	"fmt"
	"io"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads an ImportConfiguration from YAML.
// Unknown keys and unknown column types are rejected.
func LoadConfig(r io.Reader) (models.ImportConfiguration, error) {
	var cfg models.ImportConfiguration
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return models.ImportConfiguration{}, fmt.Errorf("decode config: %w", err)
	}
	for col, t := range cfg.ColumnTypes {
		if !t.Valid() {
			return models.ImportConfiguration{}, fmt.Errorf("config: column %q: unknown type %q", col, t)
		}
	}
	if cfg.MaxRows != nil && *cfg.MaxRows < 0 {
		return models.ImportConfiguration{}, fmt.Errorf("config: max_rows must not be negative")
	}
	if cfg.MaxFileSizeBytes != nil && *cfg.MaxFileSizeBytes < 0 {
		return models.ImportConfiguration{}, fmt.Errorf("config: max_file_size_bytes must not be negative")
	}
	return cfg, nil
}
