// Package validate checks a parsed document against an import configuration.
package validate

import (
	"sort"
	"strings"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/i18n"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"golang.org/x/text/message"
)

// Validate returns the issues of doc under cfg in a deterministic order:
// sheets in document order, rules in declaration order, then row order,
// followed by file-level issues. It never modifies doc.
func Validate(doc *models.PreviewDocument, cfg models.ImportConfiguration) models.Issues {
	v := &validator{cfg: cfg, p: i18n.Printer(cfg.Language)}
	if doc == nil {
		return v.issues
	}
	for i := range doc.Sheets {
		s := &doc.Sheets[i]
		if !cfg.SheetAllowed(s.Name) {
			continue
		}
		v.sheet(s)
	}
	v.file(doc)
	return v.issues
}

type validator struct {
	cfg    models.ImportConfiguration
	p      *message.Printer
	issues models.Issues
}

func (v *validator) add(issue models.ValidationIssue) {
	v.issues = append(v.issues, issue)
}

func (v *validator) sheet(s *models.SheetPreview) {
	v.headers(s)
	v.rowLimit(s)
	v.cells(s)
}

// headers checks expected headers, then required columns.
// A header reported missing once is not reported again for the same sheet.
func (v *validator) headers(s *models.SheetPreview) {
	missing := make(map[string]bool)
	for _, h := range v.cfg.ExpectedHeaders {
		key := models.HeaderKey(h)
		if missing[key] || s.HeaderIndex(h) >= 0 {
			continue
		}
		missing[key] = true
		v.add(v.missingHeader(s.Name, h))
	}

	for _, col := range v.cfg.RequiredColumns {
		key := models.HeaderKey(col)
		idx := s.HeaderIndex(col)
		if idx < 0 {
			if !missing[key] {
				missing[key] = true
				v.add(v.missingHeader(s.Name, col))
			}
			continue
		}
		if columnEmpty(s, idx) {
			v.add(models.NewIssue(models.KindEmptyCell, s.Name, v.p.Sprintf(i18n.MsgEmptyColumn, col)).
				AtColumn(col).
				WithSuggestion(v.p.Sprintf(i18n.SugEmptyColumn, col)))
		}
	}
}

func (v *validator) missingHeader(sheet, header string) models.ValidationIssue {
	return models.NewIssue(models.KindMissingHeader, sheet, v.p.Sprintf(i18n.MsgMissingHeader, header)).
		AtColumn(header).
		WithSuggestion(v.p.Sprintf(i18n.SugMissingHeader, header))
}

func (v *validator) rowLimit(s *models.SheetPreview) {
	if v.cfg.MaxRows == nil || s.RowCount <= *v.cfg.MaxRows {
		return
	}
	max := *v.cfg.MaxRows
	v.add(models.NewIssue(models.KindInvalidFormat, s.Name, v.p.Sprintf(i18n.MsgTooManyRows, s.RowCount, max)).
		WithSuggestion(v.p.Sprintf(i18n.SugTooManyRows, max)))
}

// columnEmpty reports whether no data row holds a value at idx.
func columnEmpty(s *models.SheetPreview, idx int) bool {
	if s.Stats != nil && idx < len(s.Stats.ColumnFilled) {
		return s.Stats.ColumnFilled[idx] == 0
	}
	for _, row := range s.AllRows() {
		if idx < len(row) && !row[idx].IsEmpty() {
			return false
		}
	}
	return true
}

// file applies the rules that run once per document.
func (v *validator) file(doc *models.PreviewDocument) {
	if max := v.cfg.MaxFileSizeBytes; max != nil && doc.FileSizeBytes > *max {
		v.add(models.NewIssue(models.KindInvalidFormat, "", v.p.Sprintf(i18n.MsgFileTooLarge, doc.FileSizeBytes, *max)).
			WithSuggestion(v.p.Sprintf(i18n.SugFileTooLarge)))
	}

	if !doc.HasData() {
		v.add(models.NewIssue(models.KindEmptyRequiredColumn, "", v.p.Sprintf(i18n.MsgNoData)).
			WithSuggestion(v.p.Sprintf(i18n.SugNoData)))
	}

	if len(v.cfg.AllowedSheetNames) > 0 && !anyAllowed(doc, v.cfg) {
		names := strings.Join(v.cfg.AllowedSheetNames, ", ")
		v.add(models.NewIssue(models.KindInvalidFormat, "", v.p.Sprintf(i18n.MsgNoAllowedSheet, names)).
			WithSuggestion(v.p.Sprintf(i18n.SugNoAllowedSheet, names)))
	}
}

func anyAllowed(doc *models.PreviewDocument, cfg models.ImportConfiguration) bool {
	for i := range doc.Sheets {
		if cfg.SheetAllowed(doc.Sheets[i].Name) {
			return true
		}
	}
	return false
}

// typedColumn is a configured column resolved against a sheet's headers.
type typedColumn struct {
	idx  int
	name string
	typ  models.DataType
}

// resolveTypes returns the configured column types present in s, by column index.
func resolveTypes(s *models.SheetPreview, types map[string]models.DataType) []typedColumn {
	var cols []typedColumn
	for name, typ := range types {
		if idx := s.HeaderIndex(name); idx >= 0 {
			cols = append(cols, typedColumn{idx: idx, name: s.Headers[idx], typ: typ})
		}
	}
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].idx != cols[j].idx {
			return cols[i].idx < cols[j].idx
		}
		return cols[i].name < cols[j].name
	})
	return cols
}
