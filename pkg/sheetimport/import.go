package sheetimport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/export"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/parser"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/report"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/stats"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/validate"
)

// Result is the outcome of one import run.
type Result struct {
	// ID identifies the run in logs.
	ID uuid.UUID `json:"id"`
	// Document is the parsed file.
	Document *models.PreviewDocument `json:"document"`
	// Issues lists validation errors and warnings in order.
	Issues models.Issues `json:"issues"`
	// Statistics summarizes fill rates and types.
	Statistics models.DataStatistics `json:"statistics"`
	// HasErrors is true when at least one issue is an error; the import must not proceed.
	HasErrors bool `json:"has_errors"`

	config models.ImportConfiguration
}

// Report renders the plain-text report in the configured language.
func (r *Result) Report() string {
	return report.Generate(r.Document, r.Statistics, r.Issues, r.config.Language)
}

// ExportCleaned writes the cleaned workbook using the run's configuration.
func (r *Result) ExportCleaned() ([]byte, error) {
	return export.ExportCleaned(r.Document, r.config)
}

// Import reads the upload from r and runs parsing, validation and statistics.
// Reading honors ctx and stops after cfg.MaxFileSizeBytes+1 bytes.
// Parse failures are returned as errors; validation problems are returned as issues.
func Import(ctx context.Context, fileName string, r io.Reader, cfg models.ImportConfiguration, opts Options) (*Result, error) {
	data, err := readAll(ctx, fileName, r, cfg.MaxFileSizeBytes)
	if err != nil {
		return nil, err
	}
	return ImportBytes(ctx, fileName, data, cfg, opts)
}

// ImportBytes runs an import over data already in memory.
func ImportBytes(ctx context.Context, fileName string, data []byte, cfg models.ImportConfiguration, opts Options) (*Result, error) {
	log := opts.logger()
	id := uuid.New()
	log = log.With("import", id.String(), "file", fileName)

	if max := cfg.MaxFileSizeBytes; max != nil && int64(len(data)) > *max {
		return nil, &FileTooLargeError{FileName: fileName, Size: int64(len(data)), Limit: *max}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	popts := opts.Parser
	if cfg.DetectDuplicateRows {
		popts.DetectDuplicateRows = true
	}
	doc, err := parser.Parse(filepath.Base(fileName), data, popts)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return nil, err
	}
	for i := range doc.Sheets {
		s := &doc.Sheets[i]
		log.Debug("sheet parsed", "sheet", s.Name, "rows", s.RowCount, "columns", s.ColumnCount, "empty_rows", len(s.EmptyRows))
	}

	res := &Result{
		ID:         id,
		Document:   doc,
		Issues:     validate.Validate(doc, cfg),
		Statistics: stats.Compute(doc),
		config:     cfg,
	}
	res.HasErrors = res.Issues.HasErrors()

	log.Info("import finished",
		"format", doc.Format,
		"sheets", len(doc.Sheets),
		"rows", doc.TotalRows(),
		"errors", len(res.Issues.Errors()),
		"warnings", len(res.Issues.Warnings()),
	)
	return res, nil
}

// ImportFile imports a local file.
func ImportFile(ctx context.Context, path string, cfg models.ImportConfiguration, opts Options) (*Result, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer fh.Close()

	if max := cfg.MaxFileSizeBytes; max != nil {
		if fi, err := fh.Stat(); err == nil && fi.Mode().IsRegular() && fi.Size() > *max {
			return nil, &FileTooLargeError{FileName: filepath.Base(path), Size: fi.Size(), Limit: *max}
		}
	}
	return Import(ctx, filepath.Base(path), fh, cfg, opts)
}

// readAll reads r in chunks, checking ctx between reads.
func readAll(ctx context.Context, fileName string, r io.Reader, limit *int64) ([]byte, error) {
	if limit != nil {
		r = io.LimitReader(r, *limit+1)
	}
	var buf bytes.Buffer
	chunk := make([]byte, 64<<10)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if limit != nil && int64(buf.Len()) > *limit {
			return nil, &FileTooLargeError{FileName: fileName, Size: int64(buf.Len()), Limit: *limit}
		}
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fileName, err)
		}
	}
}
