package parser

import (
	"testing"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/infer"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeFormulaCachedResult(t *testing.T) {
	v := Normalize(RawCell{Formula: "40+2", Value: "42"})
	if v.Kind != models.KindNumber || v.Num != 42 {
		t.Fatalf("Expected number 42, got %v (kind %v)", v, v.Kind)
	}
	if got := infer.Classify(v); got != models.TypeInteger {
		t.Errorf("Expected integer, got %s", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		cell RawCell
		want models.Value
	}{
		{"empty", RawCell{}, models.Empty()},
		{"formula without cache", RawCell{Formula: "A1&B1", Display: "ab"}, models.Text("ab")},
		{"number", RawCell{Type: excelize.CellTypeNumber, Value: "12.5"}, models.Number(12.5)},
		{"unset integer", RawCell{Value: "-100"}, models.Number(-100)},
		{"bool true", RawCell{Type: excelize.CellTypeBool, Value: "1"}, models.Bool(true)},
		{"bool false", RawCell{Type: excelize.CellTypeBool, Value: "FALSE"}, models.Bool(false)},
		{"shared string", RawCell{Type: excelize.CellTypeSharedString, Value: "42"}, models.Text("42")},
		{"iso date cell", RawCell{Type: excelize.CellTypeDate, Value: "2024-03-05T13:45:00Z"}, models.Date("2024-03-05")},
		{"builtin date format", RawCell{Value: "45292", NumFmtID: 14}, models.Date("2024-01-01")},
		{"custom date format", RawCell{Value: "45292.75", NumFmtCode: "dd/mm/yyyy hh:mm"}, models.Date("2024-01-01")},
		{"time only format", RawCell{Value: "0.5", NumFmtCode: "hh:mm"}, models.Number(0.5)},
		{"rich text", RawCell{
			Type:     excelize.CellTypeSharedString,
			Value:    "ignored",
			RichText: []excelize.RichTextRun{{Text: "Hello "}, {Text: "World"}},
		}, models.Text("Hello World")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.cell)
			if got != tt.want {
				t.Errorf("Normalize(%+v) = %#v, want %#v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"hello", models.Text("hello")},
		{"", models.Empty()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		id   int
		code string
		want bool
	}{
		{0, "", false},
		{14, "", true},
		{22, "", true},
		{2, "", false},
		{0, "yyyy-mm-dd", true},
		{0, "d-mmm", true},
		{0, "h:mm:ss", false},
		{0, "0.00%", false},
		{0, "#,##0", false},
	}
	for _, tt := range tests {
		if got := IsDateFormat(tt.id, tt.code); got != tt.want {
			t.Errorf("IsDateFormat(%d, %q) = %v, want %v", tt.id, tt.code, got, tt.want)
		}
	}
}
