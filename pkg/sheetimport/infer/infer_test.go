package infer

import (
	"testing"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    models.Value
		expected models.DataType
	}{
		{models.Empty(), models.TypeEmpty},
		{models.Text(""), models.TypeEmpty},
		{models.Number(42), models.TypeInteger},
		{models.Number(-3), models.TypeInteger},
		{models.Number(2.5), models.TypeDecimal},
		{models.Bool(true), models.TypeBoolean},
		{models.Date("2024-01-15"), models.TypeDate},
		{models.Text("ana@school.org"), models.TypeEmail},
		{models.Text("a@b.c"), models.TypeText},
		{models.Text(" 12.5 "), models.TypeNumberAsText},
		{models.Text("1e3"), models.TypeNumberAsText},
		{models.Text("NaN"), models.TypeText},
		{models.Text("2024-01-15"), models.TypeDateAsText},
		{models.Text("15.01.2024"), models.TypeDateAsText},
		{models.Text("Jan 5, 2024"), models.TypeDateAsText},
		{models.Text("What is 2+2?"), models.TypeText},
		{models.Text("   "), models.TypeText},
		{models.Value{Kind: models.ValueKind(99)}, models.TypeUnknown},
	}

	for _, tt := range tests {
		result := Classify(tt.input)
		if result != tt.expected {
			t.Errorf("Classify(%#v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestClassifyEmailWinsOverDate(t *testing.T) {
	// overlaps: an address that also contains digits and dots
	if got := Classify(models.Text("2024.01@x.com")); got != models.TypeEmail {
		t.Errorf("Expected email, got %q", got)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		expected models.DataType
		got      models.DataType
		ok       bool
	}{
		{models.TypeInteger, models.TypeInteger, true},
		{models.TypeInteger, models.TypeNumberAsText, true},
		{models.TypeInteger, models.TypeDecimal, false},
		{models.TypeDecimal, models.TypeInteger, true},
		{models.TypeDate, models.TypeDateAsText, true},
		{models.TypeDate, models.TypeText, false},
		{models.TypeEmail, models.TypeText, false},
		{models.TypeEmail, models.TypeEmpty, true},
		{models.TypeText, models.TypeInteger, true},
	}

	for _, tt := range tests {
		if result := Matches(tt.expected, tt.got); result != tt.ok {
			t.Errorf("Matches(%q, %q) = %v, expected %v", tt.expected, tt.got, result, tt.ok)
		}
	}
}
