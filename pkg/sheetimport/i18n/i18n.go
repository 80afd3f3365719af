// Package i18n holds the message catalog for validation issues and reports.
//
// Message keys are the English format strings; other languages register
// translations of the same keys.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	MsgMissingHeader           = "Missing required header %q"
	SugMissingHeader           = "Add a column named %q to the first row"
	MsgEmptyColumn             = "Column %q has no values"
	SugEmptyColumn             = "Fill in at least one value in column %q"
	MsgTooManyRows             = "Sheet has %d data rows, more than the limit of %d"
	SugTooManyRows             = "Split the data into files of at most %d rows"
	MsgFileTooLarge            = "File size %d bytes exceeds the limit of %d bytes"
	SugFileTooLarge            = "Reduce the file size or split it into several files"
	MsgNoData                  = "The file contains no data rows"
	SugNoData                  = "Add at least one row below the header row"
	MsgNoAllowedSheet          = "None of the expected sheets was found: %s"
	SugNoAllowedSheet          = "Rename the sheet to one of: %s"
	MsgInvalidType             = "Value %q in column %q is %s, expected %s"
	MsgLongText                = "Text in column %q has %d characters, more than %d"
	MsgSpecialCharacters       = "Column %q contains control characters"
	SugSpecialCharacters       = "Remove non-printable characters from the cell"
	MsgDuplicateValue          = "Value %q in column %q already appears in row %d"
	MsgDuplicateRow            = "Row repeats an earlier row"
	SugDuplicateRow            = "Remove the repeated row if it was entered twice"
	ReportTitle                = "Import report"
	ReportFile                 = "File: %s"
	ReportSize                 = "Size: %s"
	ReportSheets               = "Sheets: %d"
	ReportRows                 = "Total rows: %d"
	ReportFillRate             = "Fill rate: %.1f%%"
	ReportSheetLine            = "- %s: %d rows, %d columns"
	ReportErrors               = "Errors (%d)"
	ReportWarnings             = "Warnings (%d)"
	ReportSuggestion           = "Suggestion: %s"
	ReportNoIssues             = "No issues found"
	ReportLocationSheet        = "sheet %q"
	ReportLocationRow          = "row %d"
	ReportLocationColumn       = "column %q"
	ReportHiddenSheet          = "(hidden)"
	ReportTruncatedSheet       = "(preview only)"
	ReportTypeDistributionHead = "Types:"
)

// DefaultLanguage is used when a tag is empty or unsupported.
var DefaultLanguage = language.English

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

var cat = catalog.NewBuilder(catalog.Fallback(DefaultLanguage))

func init() {
	for key, msg := range spanish {
		if err := cat.SetString(language.Spanish, key, msg); err != nil {
			panic(err)
		}
	}
}

// Tag resolves a BCP 47 string to a supported language.
func Tag(lang string) language.Tag {
	if lang == "" {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(language.Make(lang))
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}

// Printer returns a printer for lang.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang), message.Catalog(cat))
}

// Supported lists the languages with a translation.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}
