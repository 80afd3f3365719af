package models

// Severity classifies an issue as blocking or not.
type Severity string

const (
	// SeverityError blocks the import.
	SeverityError Severity = "error"
	// SeverityWarning is informational.
	SeverityWarning Severity = "warning"
)

// IssueKind identifies the rule that produced an issue.
type IssueKind string

// Error kinds.
const (
	KindMissingHeader       IssueKind = "missing_header"
	KindInvalidType         IssueKind = "invalid_type"
	KindEmptyRequiredColumn IssueKind = "empty_required_column"
	KindInvalidFormat       IssueKind = "invalid_format"
	KindDuplicateData       IssueKind = "duplicate_data"
)

// Warning kinds.
const (
	KindEmptyCell          IssueKind = "empty_cell"
	KindLongText           IssueKind = "long_text"
	KindSpecialCharacters  IssueKind = "special_characters"
	KindPotentialDuplicate IssueKind = "potential_duplicate"
)

// Severity returns the severity bound to the kind.
func (k IssueKind) Severity() Severity {
	switch k {
	case KindEmptyCell, KindLongText, KindSpecialCharacters, KindPotentialDuplicate:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// ValidationIssue is one detected problem located in a document.
type ValidationIssue struct {
	// Kind is the rule that produced the issue.
	Kind IssueKind `json:"kind"`
	// Severity is derived from Kind.
	Severity Severity `json:"severity"`
	// Message is the localized description.
	Message string `json:"message"`
	// Sheet is the sheet name, empty for file-level issues.
	Sheet string `json:"sheet,omitempty"`
	// Row is the 1-based source row number (nil when not row-scoped).
	Row *int `json:"row,omitempty"`
	// Column is the header name (nil when not column-scoped).
	Column *string `json:"column,omitempty"`
	// Suggestion is an optional localized hint.
	Suggestion string `json:"suggestion,omitempty"`
}

// NewIssue creates an issue with the severity of its kind.
func NewIssue(kind IssueKind, sheet, message string) ValidationIssue {
	return ValidationIssue{
		Kind:     kind,
		Severity: kind.Severity(),
		Message:  message,
		Sheet:    sheet,
	}
}

// AtRow sets the row location.
func (i ValidationIssue) AtRow(row int) ValidationIssue {
	i.Row = &row
	return i
}

// AtColumn sets the column location.
func (i ValidationIssue) AtColumn(column string) ValidationIssue {
	i.Column = &column
	return i
}

// WithSuggestion sets the hint.
func (i ValidationIssue) WithSuggestion(s string) ValidationIssue {
	i.Suggestion = s
	return i
}

// IsError reports whether the issue blocks the import.
func (i ValidationIssue) IsError() bool {
	return i.Severity == SeverityError
}

// Issues is an ordered list of validation issues.
type Issues []ValidationIssue

// HasErrors reports whether at least one issue is an error.
func (is Issues) HasErrors() bool {
	for _, i := range is {
		if i.IsError() {
			return true
		}
	}
	return false
}

// Errors returns the error issues in order.
func (is Issues) Errors() Issues {
	return is.filter(SeverityError)
}

// Warnings returns the warning issues in order.
func (is Issues) Warnings() Issues {
	return is.filter(SeverityWarning)
}

func (is Issues) filter(s Severity) Issues {
	var out Issues
	for _, i := range is {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}
