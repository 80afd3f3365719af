package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestTag(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"es", language.Spanish},
		{"es-MX", language.Spanish},
		{"zz", language.English},
	}
	for _, tt := range tests {
		got := Tag(tt.in)
		base, _ := got.Base()
		wantBase, _ := tt.want.Base()
		if base != wantBase {
			t.Errorf("Tag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrinter(t *testing.T) {
	if got := Printer("en").Sprintf(MsgMissingHeader, "Email"); got != `Missing required header "Email"` {
		t.Errorf("Unexpected English message %q", got)
	}
	if got := Printer("es").Sprintf(MsgMissingHeader, "Email"); got != `Falta la cabecera obligatoria "Email"` {
		t.Errorf("Unexpected Spanish message %q", got)
	}
}

func TestSpanishComplete(t *testing.T) {
	keys := []string{
		MsgMissingHeader, SugMissingHeader, MsgEmptyColumn, SugEmptyColumn,
		MsgTooManyRows, SugTooManyRows, MsgFileTooLarge, SugFileTooLarge,
		MsgNoData, SugNoData, MsgNoAllowedSheet, SugNoAllowedSheet,
		MsgInvalidType, MsgLongText, MsgSpecialCharacters, SugSpecialCharacters,
		MsgDuplicateValue, MsgDuplicateRow, SugDuplicateRow,
		ReportTitle, ReportFile, ReportSize, ReportSheets, ReportRows,
		ReportFillRate, ReportSheetLine, ReportErrors, ReportWarnings,
		ReportSuggestion, ReportNoIssues, ReportLocationSheet, ReportLocationRow,
		ReportLocationColumn, ReportHiddenSheet, ReportTruncatedSheet,
		ReportTypeDistributionHead,
	}
	for _, k := range keys {
		if _, ok := spanish[k]; !ok {
			t.Errorf("Missing Spanish translation for %q", k)
		}
	}
}
