package sheetimport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/parser"
	"github.com/xuri/excelize/v2"
)

func rosterBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "Students")
	f.SetSheetRow("Students", "A1", &[]any{"Name", "Email"})
	f.SetSheetRow("Students", "A2", &[]any{"Ana", "a@x.com"})
	f.SetSheetRow("Students", "A3", &[]any{"", ""})
	f.SetSheetRow("Students", "A4", &[]any{" Bo ", "bo@x.com"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestImportRoster(t *testing.T) {
	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := models.ImportConfiguration{RequiredColumns: []string{"Name", "Email"}}
	res, err := Import(context.Background(), "uploads/roster.xlsx", bytes.NewReader(rosterBytes(t)), cfg, opts)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if res.Document.FileName != "roster.xlsx" {
		t.Errorf("Expected base file name, got %q", res.Document.FileName)
	}
	s := res.Document.Sheets[0]
	if s.RowCount != 2 {
		t.Errorf("Expected rowCount 2, got %d", s.RowCount)
	}
	if res.HasErrors || len(res.Issues) != 0 {
		t.Errorf("Expected no issues, got %+v", res.Issues)
	}
	if res.Statistics.FilledCells > res.Statistics.TotalCells || res.Statistics.FillRate < 0 || res.Statistics.FillRate > 1 {
		t.Errorf("Inconsistent statistics %+v", res.Statistics)
	}
	if res.ID.String() == "" {
		t.Error("Expected a run id")
	}
	if !strings.Contains(logs.String(), res.ID.String()) || !strings.Contains(logs.String(), "import finished") {
		t.Errorf("Expected summary log with run id, got %s", logs.String())
	}
	if !strings.Contains(res.Report(), "File: roster.xlsx") {
		t.Errorf("Unexpected report:\n%s", res.Report())
	}
}

func TestImportErrorsBlock(t *testing.T) {
	res, err := ImportBytes(context.Background(), "roster.xlsx", rosterBytes(t), QuestionImport(), DefaultOptions())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !res.HasErrors {
		t.Error("Expected missing question headers to block the import")
	}
	var missing []string
	for _, is := range res.Issues.Errors() {
		if is.Kind == models.KindMissingHeader {
			missing = append(missing, *is.Column)
		}
	}
	if strings.Join(missing, ",") != "Statement,Type,Options" {
		t.Errorf("Unexpected missing headers %v", missing)
	}
}

func TestImportExportCleaned(t *testing.T) {
	res, err := ImportBytes(context.Background(), "roster.xlsx", rosterBytes(t), StudentRosterImport(), DefaultOptions())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if res.HasErrors {
		t.Fatalf("Unexpected errors %+v", res.Issues)
	}
	data, err := res.ExportCleaned()
	if err != nil {
		t.Fatalf("ExportCleaned failed: %v", err)
	}
	doc, err := parser.Parse("clean.xlsx", data, parser.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse of export failed: %v", err)
	}
	if got := doc.Sheets[0].Rows[1][0].String(); got != "Bo" {
		t.Errorf("Expected trimmed name, got %q", got)
	}
	if res.Document.Sheets[0].Rows[1][0].String() != " Bo " {
		t.Error("Export modified the imported document")
	}
}

func TestImportTooLarge(t *testing.T) {
	cfg := models.ImportConfiguration{MaxFileSizeBytes: models.Int64Ptr(10)}
	_, err := Import(context.Background(), "big.csv", strings.NewReader(strings.Repeat("a,b\n", 100)), cfg, DefaultOptions())
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("Expected ErrFileTooLarge, got %v", err)
	}
	var fe *FileTooLargeError
	if !errors.As(err, &fe) || fe.Limit != 10 || fe.Size <= 10 {
		t.Errorf("Unexpected error details %+v", fe)
	}
}

func TestImportParseFailures(t *testing.T) {
	ctx := context.Background()
	cfg := models.ImportConfiguration{}

	_, err := ImportBytes(ctx, "bad.xlsx", []byte{0x00, 0xFF, 0x00}, cfg, DefaultOptions())
	if !errors.Is(err, ErrCorruptFile) {
		t.Errorf("Expected ErrCorruptFile, got %v", err)
	}
	var ce *CorruptFileError
	if !errors.As(err, &ce) {
		t.Errorf("Expected *CorruptFileError, got %T", err)
	}
}

func TestImportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Import(ctx, "a.csv", strings.NewReader("a,b\n1,2\n"), models.ImportConfiguration{}, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(path, []byte("Name,Email\nAna,a@x.com\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	res, err := ImportFile(context.Background(), path, StudentRosterImport(), DefaultOptions())
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if res.Document.Format != "csv" || res.Document.Sheets[0].Name != "people" {
		t.Errorf("Unexpected document %+v", res.Document)
	}
	if res.HasErrors {
		t.Errorf("Unexpected errors %+v", res.Issues)
	}

	_, err = ImportFile(context.Background(), filepath.Join(dir, "missing.xlsx"), models.ImportConfiguration{}, DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	cfg := models.ImportConfiguration{MaxFileSizeBytes: models.Int64Ptr(5)}
	if _, err := ImportFile(context.Background(), path, cfg, DefaultOptions()); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Expected ErrFileTooLarge, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	q := QuestionImport()
	if strings.Join(q.ExpectedHeaders, ",") != "Statement,Type,Options" ||
		strings.Join(q.RequiredColumns, ",") != "Statement,Type" ||
		*q.MaxRows != 1000 || *q.MaxFileSizeBytes != 5_000_000 {
		t.Errorf("Unexpected question preset %+v", q)
	}

	a, b := QuestionImport(), QuestionImport()
	a.ExpectedHeaders[0] = "changed"
	if b.ExpectedHeaders[0] != "Statement" {
		t.Error("Presets must return independent values")
	}

	for _, name := range []string{"questions", "roster", "users"} {
		if _, ok := Preset(name); !ok {
			t.Errorf("Preset %q not found", name)
		}
	}
	if _, ok := Preset("nope"); ok {
		t.Error("Unexpected preset")
	}
}
