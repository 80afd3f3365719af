package models

import "strings"

// ImportConfiguration declares the rules an import is validated against.
// It is passed by value and never modified during a run.
type ImportConfiguration struct {
	// ExpectedHeaders must be present on every validated sheet.
	ExpectedHeaders []string `yaml:"expected_headers" json:"expected_headers,omitempty"`
	// RequiredColumns must be present and hold at least one value.
	RequiredColumns []string `yaml:"required_columns" json:"required_columns,omitempty"`
	// MaxRows caps the data rows per sheet (nil for no limit).
	MaxRows *int `yaml:"max_rows" json:"max_rows,omitempty"`
	// MaxFileSizeBytes caps the raw input size (nil for no limit).
	MaxFileSizeBytes *int64 `yaml:"max_file_size_bytes" json:"max_file_size_bytes,omitempty"`
	// AllowedSheetNames restricts which sheets are validated (empty for all).
	AllowedSheetNames []string `yaml:"allowed_sheet_names" json:"allowed_sheet_names,omitempty"`

	// ColumnTypes maps a header to the type its values must infer to.
	ColumnTypes map[string]DataType `yaml:"column_types" json:"column_types,omitempty"`
	// MaxTextLength flags longer text cells with a warning (nil to disable).
	MaxTextLength *int `yaml:"max_text_length" json:"max_text_length,omitempty"`
	// WarnSpecialCharacters flags cells holding control characters.
	WarnSpecialCharacters bool `yaml:"warn_special_characters" json:"warn_special_characters,omitempty"`
	// UniqueColumns must not repeat a value within a sheet.
	UniqueColumns []string `yaml:"unique_columns" json:"unique_columns,omitempty"`
	// DetectDuplicateRows flags rows identical to an earlier row.
	DetectDuplicateRows bool `yaml:"detect_duplicate_rows" json:"detect_duplicate_rows,omitempty"`

	// TrimWhitespace trims text cells on export.
	TrimWhitespace bool `yaml:"trim_whitespace" json:"trim_whitespace,omitempty"`
	// CollapseSpaces folds inner whitespace runs into one space on export.
	CollapseSpaces bool `yaml:"collapse_spaces" json:"collapse_spaces,omitempty"`
	// NormalizeUnicode applies NFC normalization to text cells on export.
	NormalizeUnicode bool `yaml:"normalize_unicode" json:"normalize_unicode,omitempty"`

	// Language is the BCP 47 tag used for messages (default "en").
	Language string `yaml:"language" json:"language,omitempty"`
}

// SheetAllowed reports whether per-sheet rules apply to the named sheet.
func (c ImportConfiguration) SheetAllowed(name string) bool {
	if len(c.AllowedSheetNames) == 0 {
		return true
	}
	for _, n := range c.AllowedSheetNames {
		if n == name {
			return true
		}
	}
	return false
}

// HeaderKey folds a header for comparison: surrounding space and case are ignored.
func HeaderKey(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// Int64Ptr returns a pointer to n.
func Int64Ptr(n int64) *int64 { return &n }
