// Package sheetimport parses, validates and summarizes spreadsheet uploads.
package sheetimport

import (
	"io"
	"log/slog"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/parser"
)

// Options configures an import run.
type Options struct {
	// Logger receives debug and summary records. If nil, nothing is logged.
	Logger *slog.Logger
	// Parser tunes parsing (preview size, CSV charset, ...).
	Parser parser.Options
}

// DefaultOptions returns default import options.
func DefaultOptions() Options {
	return Options{
		Parser: parser.DefaultOptions(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
